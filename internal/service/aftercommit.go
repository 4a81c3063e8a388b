package service

import (
	"context"
	"sync"
)

type afterCommitKey struct{}

// afterCommit collects side effects raised inside an outer transaction.
type afterCommit struct {
	mu  sync.Mutex
	fns []func()
}

func withAfterCommit(ctx context.Context) (context.Context, *afterCommit) {
	ac := &afterCommit{}
	return context.WithValue(ctx, afterCommitKey{}, ac), ac
}

// runOrDefer runs fn now, or queues it when ctx belongs to a withAfterCommit scope.
func runOrDefer(ctx context.Context, fn func()) {
	ac, ok := ctx.Value(afterCommitKey{}).(*afterCommit)
	if !ok {
		fn()
		return
	}

	ac.mu.Lock()
	ac.fns = append(ac.fns, fn)
	ac.mu.Unlock()
}

func (ac *afterCommit) run() {
	ac.mu.Lock()
	fns := ac.fns
	ac.fns = nil
	ac.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
