// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"folio/internal/store"
)

// RetryPolicy retries a remote read with a constant delay. The zero value
// makes a single attempt.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// BlogRetry is the policy of the blog read paths: three attempts, one
// second apart.
var BlogRetry = RetryPolicy{Attempts: 3, Delay: time.Second}

// do runs fn until it succeeds or the attempts are used up, and returns the
// last error. ErrNotFound is returned at once.
func (p RetryPolicy) do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	if p.Attempts <= 1 {
		return fn(ctx, 1)
	}
	delay := p.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}

	attempt := 0
	backoff := retry.WithMaxRetries(uint64(p.Attempts-1), retry.NewConstant(delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx, attempt)
		if err == nil || errors.Is(err, store.ErrNotFound) {
			return err
		}
		return retry.RetryableError(err)
	})
}
