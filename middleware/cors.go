package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"view-counter-service/httperrors"
	"view-counter-service/request"
)

const (
	allowOriginHeader  = "Access-Control-Allow-Origin"
	allowMethodsHeader = "Access-Control-Allow-Methods"
	allowHeadersHeader = "Access-Control-Allow-Headers"

	allowedMethods = "GET, POST, OPTIONS"
)

// Cors gates every request on its Origin header before any business
// logic runs. A request without an Origin header is allowed
// (server-to-server and same-origin calls); a request with an origin
// outside the allow-list is rejected with the first allowed origin in
// the response headers, so even the rejection is a valid,
// non-reflective CORS response. Preflight requests short-circuit here.
func Cors(allowedOrigins []string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if len(allowedOrigins) == 0 {
				return httperrors.New(
					http.StatusInternalServerError,
					"View counter misconfigured",
					errors.New("cors: allowed origins are not configured"),
				)
			}

			origin := ctx.Origin()
			originAllowed := origin != "" && slices.Contains(allowedOrigins, origin)

			headerOrigin := allowedOrigins[0]
			if originAllowed {
				headerOrigin = origin
			}
			header := ctx.ResponseWriter().Header()
			header.Set(allowOriginHeader, headerOrigin)
			header.Set(allowMethodsHeader, allowedMethods)
			header.Set(allowHeadersHeader, strings.Join([]string{"Content-Type", apiKeyHeader}, ", "))

			if origin != "" && !originAllowed {
				return httperrors.New(
					http.StatusForbidden,
					"Origin not allowed",
					errors.Errorf("cors: origin '%s' is not in the allow-list", origin),
				)
			}

			switch ctx.Request().Method {
			case http.MethodOptions:
				ctx.ResponseWriter().WriteHeader(http.StatusOK)
				return nil
			case http.MethodGet, http.MethodPost:
				return next.Handle(ctx)
			default:
				return httperrors.New(
					http.StatusMethodNotAllowed,
					"Method not allowed",
					errors.Errorf("cors: method '%s' is not allowed", ctx.Request().Method),
				)
			}
		})
	}
}
