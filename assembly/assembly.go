package assembly

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/http"
	"github.com/txix-open/isp-kit/log"
	"view-counter-service/conf"
	"view-counter-service/kv"
)

type Assembly struct {
	config   conf.Local
	server   *http.Server
	logger   *log.Adapter
	redisCli redis.UniversalClient
}

func New(logger *log.Adapter, config conf.Local) *Assembly {
	redisCli := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Address,
		Username: config.Redis.Username,
		Password: config.Redis.Password,
	})

	locator := NewLocator(logger)
	handler := locator.Handler(config, kv.NewRedis(redisCli))

	server := http.NewServer(logger)
	server.Upgrade(handler)

	return &Assembly{
		config:   config,
		server:   server,
		logger:   logger,
		redisCli: redisCli,
	}
}

func (a *Assembly) ListenAndServe() error {
	return a.server.ListenAndServe(a.config.BindAddress)
}

func (a *Assembly) Close() {
	err := a.server.Shutdown(context.Background())
	if err != nil {
		a.logger.Error(context.Background(), err)
	}
	err = a.redisCli.Close()
	if err != nil {
		a.logger.Error(context.Background(), err)
	}
}
