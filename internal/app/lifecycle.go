package app

import (
	"context"
	"sync"

	"cat-encyclopedia/internal/logger"
)

// Lifecycle owns the context of background work such as the splash timer.
type Lifecycle struct {
	logger     logger.Logger
	mu         sync.Mutex
	cancel     context.CancelFunc
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{logger: log}
}

// Start derives the context background work runs under.
func (l *Lifecycle) Start(parent context.Context) context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	if l.isShutdown {
		cancel()
		return ctx
	}
	l.cancel = cancel
	return ctx
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.cancel != nil {
		l.cancel()
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
