package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/pkg/errors"
	"view-counter-service/httperrors"
	"view-counter-service/request"
)

const apiKeyHeader = "X-Worker-Api-Key"

// ApiKey authorizes mutating requests. When no key is configured,
// writes are open by design. Enforcement happens before any store
// access.
func ApiKey(expectedKey string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if expectedKey == "" || ctx.Request().Method != http.MethodPost {
				return next.Handle(ctx)
			}

			providedKey := ctx.Request().Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(expectedKey)) != 1 {
				return httperrors.New(
					http.StatusUnauthorized,
					"Unauthorized",
					errors.New("api key: key mismatch"),
				)
			}

			return next.Handle(ctx)
		})
	}
}
