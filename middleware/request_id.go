package middleware

import (
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/requestid"
	"view-counter-service/request"
)

func RequestId() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			requestId := requestid.Next()

			context := requestid.ToContext(ctx.Context(), requestId)
			context = log.ToContext(context, log.String("requestId", requestId))

			ctx.SetContext(context)
			return next.Handle(ctx)
		})
	}
}
