// Package identifier computes the human-legible business identifier for a
// registration: a prefix from city and category plus a 7-digit ordinal.
package identifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// SequenceDigits is the zero-padded width of the ordinal suffix.
const SequenceDigits = 7

// prefixRunes is how many leading characters each of city and category
// contribute to the prefix. Shorter values are used as-is, unpadded, so
// distinct short names bucket separately from their truncated longer peers.
const prefixRunes = 3

// Counter is the slice of the registration store the generator needs: the
// number of existing records whose identifier starts with a prefix.
type Counter interface {
	CountByIDPrefix(ctx context.Context, prefix string) (int64, error)
}

// Prefix derives the identifier prefix from city and category. Both are
// trimmed and upper-cased first, so casing and stray whitespace in the
// submission never change the bucket.
func Prefix(city, category string) string {
	return code(city) + code(category)
}

// Format builds the full identifier for the (count+1)-th record of a prefix.
func Format(prefix string, count int64) string {
	return fmt.Sprintf("%s%0*d", prefix, SequenceDigits, count+1)
}

// Next computes the next identifier for (city, category) from the store's
// current count. The result is only a proposal: the caller must insert under
// a uniqueness constraint and recompute on conflict, since a concurrent
// registration may claim the same ordinal.
func Next(ctx context.Context, counter Counter, city, category string) (string, error) {
	prefix := Prefix(city, category)

	count, err := counter.CountByIDPrefix(ctx, prefix)
	if err != nil {
		return "", errors.Wrapf(err, "failed to count registrations for prefix %s", prefix)
	}

	return Format(prefix, count), nil
}

func code(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > prefixRunes {
		runes = runes[:prefixRunes]
	}

	return strings.ToUpper(string(runes))
}
