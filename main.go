package main

import (
	"context"

	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/shutdown"
	"view-counter-service/assembly"
	"view-counter-service/conf"
)

var (
	version = "1.0.0"
)

func main() {
	logger, err := log.New(log.WithLevel(log.InfoLevel))
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	config := conf.LoadLocal()
	assembly := assembly.New(logger, config)

	shutdown.On(func() {
		logger.Info(ctx, "starting shutdown")
		assembly.Close()
		logger.Info(ctx, "shutdown completed")
	})

	logger.Info(ctx, "view counter is listening",
		log.String("version", version),
		log.String("address", config.BindAddress),
	)
	err = assembly.ListenAndServe()
	if err != nil {
		logger.Fatal(ctx, err)
	}
}
