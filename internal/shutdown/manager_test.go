package shutdown

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"cat-encyclopedia/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOp{}, time.Second)

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register("first", record("first"))
	m.Register("second", record("second"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Context().Done():
	default:
		t.Fatal("context not cancelled after Shutdown")
	}
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(logger.NewZerolog(&buf, zerolog.DebugLevel), 10*time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", Func(func() { <-release }))

	m.Shutdown()
	assert.Contains(t, buf.String(), "component shutdown timeout")
	assert.Contains(t, buf.String(), "stuck")
}
