package middleware

import (
	"net/http"

	"github.com/txix-open/isp-kit/log"
	"view-counter-service/httperrors"
	"view-counter-service/request"
)

type HttpError interface {
	WriteError(w http.ResponseWriter) error
}

// ErrorHandler turns errors from the chain below into JSON responses.
// It sits above the CORS gate, so by the time it writes anything the
// CORS headers for this request are already on the writer; an error
// response without them would break browser-side error handling.
func ErrorHandler(logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err == nil {
				return nil
			}

			logger.Error(ctx.Context(), err)

			httpErr, ok := err.(HttpError)
			if ok {
				return httpErr.WriteError(ctx.ResponseWriter())
			}

			return httperrors.
				New(http.StatusInternalServerError, "Internal server error", err).
				WriteError(ctx.ResponseWriter())
		})
	}
}
