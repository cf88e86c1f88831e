package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"view-counter-service/kv"
)

const (
	dedupWindow   = 24 * time.Hour
	dedupSentinel = "1"
)

// Dedup stores expiring markers for (client, slug) pairs that already
// counted a view. The marker key carries a salted one-way digest of the
// client ip, so the raw identity is never persisted and an attacker
// with read access to the store cannot rebuild keys for arbitrary ips
// without the salt.
type Dedup struct {
	store kv.Store
	salt  string
}

func NewDedup(store kv.Store, salt string) Dedup {
	return Dedup{
		store: store,
		salt:  salt,
	}
}

func (r Dedup) IsDuplicate(ctx context.Context, slug string, clientIp string) (bool, error) {
	_, ok, err := r.store.Get(ctx, r.key(slug, clientIp))
	if err != nil {
		return false, errors.WithMessage(err, "get marker")
	}
	return ok, nil
}

func (r Dedup) Mark(ctx context.Context, slug string, clientIp string) error {
	err := r.store.Set(ctx, r.key(slug, clientIp), dedupSentinel, dedupWindow)
	if err != nil {
		return errors.WithMessage(err, "set marker")
	}
	return nil
}

func (r Dedup) key(slug string, clientIp string) string {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", clientIp, slug, r.salt)))
	return fmt.Sprintf("dedup:%s:%s", slug, hex.EncodeToString(digest[:]))
}
