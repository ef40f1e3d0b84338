package main

import (
	"context"
	"time"
)

// submitContext bounds how long an edit may take before its submit is
// abandoned. timeout <= 0 means no deadline.
func submitContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}
