package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer for the logger goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, out *syncBuffer, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), msg) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no %q record logged; got %q", msg, out.String())
}

func TestLoggersEmitAndStop(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	ctx, cancel := context.WithCancel(context.Background())

	g := StartGoroutineLogger(ctx, 10*time.Millisecond, logger)
	m := StartMemLogger(ctx, 10*time.Millisecond, logger)
	waitFor(t, out, `"msg":"goroutine-stacks"`)
	waitFor(t, out, `"msg":"memstats"`)
	waitFor(t, out, `"heap_alloc_h":"`)

	cancel()
	for _, done := range []<-chan struct{}{g, m} {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("logger did not stop after cancel")
		}
	}
}
