package suite

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// scriptedSource replays values in a loop. rand.Rand.Intn(2) takes bit 32 of Int63,
// so each value selects the starting player directly: 0 picks X, 1 picks O.
type scriptedSource struct {
	values []int
	next   int
}

// ScriptedSource - returns a rand.Source that yields the given values in order, forever.
func ScriptedSource(values ...int) rand.Source {
	if len(values) == 0 {
		values = []int{0}
	}

	return &scriptedSource{values: values}
}

func (that *scriptedSource) Int63() int64 {
	v := that.values[that.next%len(that.values)]
	that.next++

	return int64(v) << 32
}

func (that *scriptedSource) Seed(int64) {
	that.next = 0
}
