package domain

import (
	"github.com/pkg/errors"
)

const slugMaxLength = 256

var (
	ErrSlugEmpty        = errors.New("Missing slug")
	ErrSlugTooLong      = errors.New("Slug too long")
	ErrSlugInvalidChars = errors.New("Slug contains invalid characters")
)

// ValidateSlug bounds the article identifier before it is used as a
// storage key discriminator: length is capped and the charset is
// restricted to [A-Za-z0-9_/-] to keep control characters and key
// delimiters out of the store namespace.
func ValidateSlug(slug string) error {
	if slug == "" {
		return ErrSlugEmpty
	}
	if len(slug) > slugMaxLength {
		return ErrSlugTooLong
	}
	for i := 0; i < len(slug); i++ {
		if !isSlugChar(slug[i]) {
			return ErrSlugInvalidChars
		}
	}
	return nil
}

func isSlugChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z':
		return true
	case 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '/':
		return true
	default:
		return false
	}
}
