package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"view-counter-service/domain"
	"view-counter-service/request"
)

type ViewsService interface {
	Count(ctx context.Context, slug string) (int64, error)
	Record(ctx context.Context, slug string, identity *domain.Identity) (int64, error)
}

type Views struct {
	service ViewsService
}

func NewViews(service ViewsService) Views {
	return Views{
		service: service,
	}
}

func (h Views) Handle(ctx *request.Context) error {
	switch ctx.Request().Method {
	case http.MethodGet:
		count, err := h.service.Count(ctx.Context(), ctx.Slug())
		if err != nil {
			return errors.WithMessage(err, "count views")
		}
		return h.respond(ctx, count)
	case http.MethodPost:
		count, err := h.service.Record(ctx.Context(), ctx.Slug(), ctx.Identity())
		if err != nil {
			return errors.WithMessage(err, "record view")
		}
		return h.respond(ctx, count)
	default:
		return errors.Errorf("views: unexpected method '%s' passed the method gate", ctx.Request().Method)
	}
}

func (h Views) respond(ctx *request.Context, count int64) error {
	writer := ctx.ResponseWriter()
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	err := json.NewEncoder(writer).Encode(domain.ViewsResponse{
		Slug:  ctx.Slug(),
		Views: count,
	})
	if err != nil {
		return errors.WithMessage(err, "encode response")
	}
	return nil
}
