package service

import (
	"context"

	"github.com/pkg/errors"
	"view-counter-service/domain"
)

type ViewsRepo interface {
	Get(ctx context.Context, slug string) (int64, error)
	Increment(ctx context.Context, slug string) (int64, error)
}

type DedupRepo interface {
	IsDuplicate(ctx context.Context, slug string, clientIp string) (bool, error)
	Mark(ctx context.Context, slug string, clientIp string) error
}

type Views struct {
	views ViewsRepo
	dedup DedupRepo
}

func NewViews(views ViewsRepo, dedup DedupRepo) Views {
	return Views{
		views: views,
		dedup: dedup,
	}
}

func (s Views) Count(ctx context.Context, slug string) (int64, error) {
	count, err := s.views.Get(ctx, slug)
	if err != nil {
		return 0, errors.WithMessage(err, "get views")
	}
	return count, nil
}

// Record counts a view for slug. A repeated view from the same client
// within the dedup window returns the current total unchanged. An
// unidentified client always counts and leaves no marker: the service
// prefers occasional overcounting to failing the request.
func (s Views) Record(ctx context.Context, slug string, identity *domain.Identity) (int64, error) {
	if identity == nil {
		count, err := s.views.Increment(ctx, slug)
		if err != nil {
			return 0, errors.WithMessage(err, "increment views")
		}
		return count, nil
	}

	duplicate, err := s.dedup.IsDuplicate(ctx, slug, identity.Ip)
	if err != nil {
		return 0, errors.WithMessage(err, "check duplicate")
	}
	if duplicate {
		count, err := s.views.Get(ctx, slug)
		if err != nil {
			return 0, errors.WithMessage(err, "get views")
		}
		return count, nil
	}

	count, err := s.views.Increment(ctx, slug)
	if err != nil {
		return 0, errors.WithMessage(err, "increment views")
	}

	// the marker lands strictly after the increment is committed: a
	// failure in between may overcount on retry, never undercount
	err = s.dedup.Mark(ctx, slug, identity.Ip)
	if err != nil {
		return 0, errors.WithMessage(err, "mark viewed")
	}

	return count, nil
}
