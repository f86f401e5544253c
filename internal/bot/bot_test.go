package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/edgard/creaturebot/internal/config"
)

type blockingListener struct{ started chan struct{} }

func (l blockingListener) Start(ctx context.Context) {
	close(l.started)
	<-ctx.Done()
}

type returningListener struct{}

func (returningListener) Start(context.Context) {}

func newTestBot(l Listener) *Bot {
	return NewBot(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{}, l)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	l := blockingListener{started: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- newTestBot(l).Run(ctx) }()

	<-l.started
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil on cancellation", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestRunReportsUnexpectedStop(t *testing.T) {
	t.Parallel()

	if err := newTestBot(returningListener{}).Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want error when the listener stops by itself")
	}
}
