package site

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/dgallion1/docnav/internal/pathstore"
)

// IsRetryable checks if a page source error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *pathstore.RetryableError
	return errors.As(err, &retryErr)
}

// Reload backoff bounds. A page source is usually back within seconds, and
// a longer wait only delays the next scheduled reload.
const (
	backoffBase = 250 * time.Millisecond
	backoffMax  = 5 * time.Second
)

// Backoff returns the wait before retry attempt n (0-indexed): base doubled
// per attempt up to backoffMax, spread by up to a quarter either way so
// replicas reloading together do not retry in lockstep.
func Backoff(attempt int) time.Duration {
	d := backoffMax
	if attempt < 5 {
		d = min(backoffBase<<attempt, backoffMax)
	}
	spread := int64(d) / 4
	return d - time.Duration(spread) + time.Duration(rand.Int64N(2*spread+1))
}

// MaxRetries is how many times a retryable fetch is retried per reload.
const MaxRetries = 3
