package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"spellsheet/internal/adapters/memory"
	"spellsheet/internal/application"
)

type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

func newSession(t *testing.T, words ...string) *application.Session {
	t.Helper()
	n := 0
	s := application.Open(context.Background(), memory.New(),
		application.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		application.WithClock(func() time.Time { return time.UnixMilli(1_700_000_000_000) }),
		application.WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s%d", prefix, n)
		}),
		application.WithRand(firstRand{}),
	)
	if len(words) > 0 {
		if _, err := s.Library.AddWords(words); err != nil {
			t.Fatalf("seed words: %v", err)
		}
	}
	return s
}
