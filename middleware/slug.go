package middleware

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"view-counter-service/domain"
	"view-counter-service/httperrors"
	"view-counter-service/request"
)

const viewsPathPrefix = "/views/"

// Slug extracts the article identifier from the /views/{slug} path and
// validates it before it becomes part of any storage key.
func Slug() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			path := ctx.Request().URL.Path
			slug := strings.TrimPrefix(path, viewsPathPrefix)
			if slug == path || slug == "" {
				return httperrors.New(
					http.StatusBadRequest,
					"Invalid path. Use /views/{slug}",
					errors.Errorf("slug: path '%s' does not match /views/{slug}", path),
				)
			}

			err := domain.ValidateSlug(slug)
			if err != nil {
				return httperrors.New(
					http.StatusBadRequest,
					err.Error(),
					errors.WithMessagef(err, "slug: validate '%s'", slug),
				)
			}

			ctx.SetSlug(slug)
			return next.Handle(ctx)
		})
	}
}
