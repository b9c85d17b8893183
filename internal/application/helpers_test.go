package application

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"spellsheet/internal/adapters/memory"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// seqIDs returns an id generator yielding prefix1, prefix2, ...
func seqIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// firstRand always picks index 0
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

func testOptions(buf *bytes.Buffer) []Option {
	return []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(seqIDs()),
		WithRand(firstRand{}),
		WithLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	}
}

func newTestStore() *memory.Store {
	return memory.New()
}
