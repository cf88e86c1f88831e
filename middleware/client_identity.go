package middleware

import (
	"strings"

	"view-counter-service/domain"
	"view-counter-service/request"
)

const (
	realIpHeader       = "X-Real-IP"
	forwardedForHeader = "X-Forwarded-For"
)

// ClientIdentity resolves a best-effort client ip from trusted proxy
// headers: the reverse proxy's real-ip header first, then the first
// entry of X-Forwarded-For. When neither is present the identity stays
// nil and the rate limiter and dedup engine skip the request; a client
// is never rejected just because it cannot be identified.
func ClientIdentity() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			ip := strings.TrimSpace(ctx.Request().Header.Get(realIpHeader))
			if ip == "" {
				forwardedFor := ctx.Request().Header.Get(forwardedForHeader)
				if forwardedFor != "" {
					ip = strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
				}
			}
			if ip != "" {
				ctx.SetIdentity(&domain.Identity{Ip: ip})
			}
			return next.Handle(ctx)
		})
	}
}
