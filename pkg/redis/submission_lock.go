package redis

import (
	"context"
	"time"
)

const submissionLockPrefix = "signup:lock:"

// SubmissionLock serializes signup attempts for the same email across
// server instances. The TTL bounds how long a crashed holder blocks others.
type SubmissionLock struct {
	ttl time.Duration
}

// NewSubmissionLock creates a lock backed by the package Redis client
func NewSubmissionLock(ttl time.Duration) *SubmissionLock {
	return &SubmissionLock{ttl: ttl}
}

// Acquire returns false when another submission holds the key
func (l *SubmissionLock) Acquire(ctx context.Context, key string) (bool, error) {
	return SetNX(ctx, submissionLockPrefix+key, "1", l.ttl)
}

// Release drops the key
func (l *SubmissionLock) Release(ctx context.Context, key string) error {
	return Del(ctx, submissionLockPrefix+key)
}
