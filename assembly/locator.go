package assembly

import (
	"net/http"

	"github.com/txix-open/isp-kit/log"
	"view-counter-service/conf"
	"view-counter-service/handler"
	"view-counter-service/kv"
	"view-counter-service/middleware"
	"view-counter-service/repository"
	"view-counter-service/service"
)

type Locator struct {
	logger log.Logger
}

func NewLocator(logger log.Logger) Locator {
	return Locator{
		logger: logger,
	}
}

// Handler wires the store-backed repositories and services into the
// request middleware chain. Check order is part of the public
// contract: origin gate, method dispatch, path and slug validation,
// configuration checks, authorization, rate limit, then counting.
func (l Locator) Handler(config conf.Local, store kv.Store) http.Handler {
	viewsRepo := repository.NewViews(store)
	dedupRepo := repository.NewDedup(store, config.DedupSalt)
	rateLimitRepo := repository.NewRateLimit(store)

	viewsService := service.NewViews(viewsRepo, dedupRepo)
	rateLimitService := service.NewRateLimit(rateLimitRepo, config.RateLimit.MaxRequests)

	viewsHandler := handler.NewViews(viewsService)

	chain := middleware.Chain(
		viewsHandler,
		middleware.RequestId(),
		middleware.Logger(l.logger, config.Logging.RequestLogEnable),
		middleware.ErrorHandler(l.logger),
		middleware.Cors(config.AllowedOrigins),
		middleware.Slug(),
		middleware.DedupSecret(config.DedupSalt),
		middleware.ClientIdentity(),
		middleware.ApiKey(config.ApiKey),
		middleware.RateLimit(rateLimitService),
	)
	// No mux in front: ServeMux canonicalizes paths with a redirect,
	// which would rewrite slugs containing consecutive slashes before
	// the chain ever sees them. The chain owns all routing.
	return middleware.Entrypoint(chain, l.logger)
}
