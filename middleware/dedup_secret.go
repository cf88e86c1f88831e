package middleware

import (
	"net/http"

	"github.com/pkg/errors"
	"view-counter-service/httperrors"
	"view-counter-service/request"
)

// DedupSecret fails the request when the dedup salt is not
// provisioned. The user message is the same generic one the origin
// gate uses, so the response never reveals which configuration is
// missing.
func DedupSecret(salt string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if salt == "" {
				return httperrors.New(
					http.StatusInternalServerError,
					"View counter misconfigured",
					errors.New("dedup: salt is not configured"),
				)
			}
			return next.Handle(ctx)
		})
	}
}
