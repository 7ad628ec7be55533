package logstrategy

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dizzycode.xyz/logstrategy/level"
	"dizzycode.xyz/logstrategy/strategies"
)

var fixedTime = time.Date(2024, 10, 1, 12, 30, 45, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// recorder is a strategy that keeps every entry
type recorder struct {
	mu      sync.Mutex
	entries []strategies.Entry
	err     error
	closed  bool
}

func (r *recorder) Log(entry strategies.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recorder) Sync() error  { return nil }
func (r *recorder) Kind() string { return "recorder" }

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Message)
	}
	return out
}

func TestNew_NilStrategy(t *testing.T) {
	l, err := New(nil)

	assert.Nil(t, l)
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "strategy", argErr.Argument)
	assert.ErrorIs(t, err, ErrNilStrategy)
}

func TestNilStrategy_TypedNil(t *testing.T) {
	tests := []struct {
		name     string
		strategy strategies.Strategy
	}{
		{name: "untyped", strategy: nil},
		{name: "file", strategy: (*strategies.File)(nil)},
		{name: "console", strategy: (*strategies.Console)(nil)},
		{name: "recorder", strategy: (*recorder)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.strategy)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrNilStrategy)

			rec := &recorder{}
			existing := MustNew(rec)
			assert.ErrorIs(t, existing.SetStrategy(tt.strategy), ErrNilStrategy)
			assert.Same(t, rec, existing.Strategy())
		})
	}
}

func TestMustNew_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { MustNew(nil) })
}

func TestLogger_LevelMethods(t *testing.T) {
	rec := &recorder{}
	l := MustNew(rec, WithClock(fixedClock))

	require.NoError(t, l.Debug("d"))
	require.NoError(t, l.Info("i"))
	require.NoError(t, l.Warn("w"))
	require.NoError(t, l.Error("e"))

	require.Len(t, rec.entries, 4)
	want := []level.Level{level.Debug, level.Info, level.Warn, level.Error}
	for i, e := range rec.entries {
		assert.Equal(t, want[i], e.Level)
		assert.Equal(t, fixedTime, e.Time)
	}
	assert.Equal(t, []string{"d", "i", "w", "e"}, rec.messages())
}

func TestLogger_SetStrategy_RoutesToNewStrategy(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	l := MustNew(first)

	require.NoError(t, l.Info("before"))
	require.NoError(t, l.SetStrategy(second))
	require.NoError(t, l.Info("after"))

	assert.Equal(t, []string{"before"}, first.messages())
	assert.Equal(t, []string{"after"}, second.messages())
	assert.Same(t, second, l.Strategy())
	assert.False(t, first.closed)
}

func TestLogger_SetStrategy_Nil(t *testing.T) {
	rec := &recorder{}
	l := MustNew(rec)

	assert.ErrorIs(t, l.SetStrategy(nil), ErrNilStrategy)
	assert.Same(t, rec, l.Strategy())
}

func TestLogger_PropagatesSinkErrors(t *testing.T) {
	cause := &strategies.SinkWriteError{Kind: "recorder", Err: errors.New("disk full")}
	l := MustNew(&recorder{err: cause})

	err := l.Error("lost")

	assert.Same(t, cause, err)
	assert.True(t, IsSinkWriteError(err))
}

func TestLogger_Log_RejectsUnknownLevel(t *testing.T) {
	tests := []struct {
		name string
		lvl  level.Level
	}{
		{name: "below debug", lvl: level.Debug - 1},
		{name: "above error", lvl: level.Error + 1},
		{name: "far out", lvl: level.Level(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			l := MustNew(rec)

			err := l.Log(tt.lvl, "lost")

			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, "level", argErr.Argument)
			assert.Empty(t, rec.entries)
		})
	}
}

func TestLogger_MinLevel(t *testing.T) {
	rec := &recorder{}
	l := MustNew(rec, WithMinLevel(level.Warn))

	require.NoError(t, l.Debug("no"))
	require.NoError(t, l.Info("no"))
	require.NoError(t, l.Warn("yes"))

	assert.Equal(t, []string{"yes"}, rec.messages())
}

func TestLogger_Close(t *testing.T) {
	rec := &recorder{}
	l := MustNew(rec)

	require.NoError(t, l.Sync())
	require.NoError(t, l.Close())
	assert.True(t, rec.closed)

	assert.NoError(t, NewNopLogger().Close())
}

func TestLogger_ConcurrentCallsAndSwaps(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	l := MustNew(a)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = l.Info("msg")
				if j%10 == 0 {
					if i%2 == 0 {
						_ = l.SetStrategy(a)
					} else {
						_ = l.SetStrategy(b)
					}
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, len(a.messages())+len(b.messages()))
}

func TestLogger_ConsoleToFile(t *testing.T) {
	var buf bytes.Buffer
	console := strategies.NewConsole(strategies.ConsoleOptions{Writer: &buf})
	path := filepath.Join(t.TempDir(), "app.log")
	file := strategies.NewFile(path)
	l := MustNew(console, WithClock(fixedClock))

	require.NoError(t, l.Info("App started"))
	require.NoError(t, l.SetStrategy(file))
	require.NoError(t, l.Info("Now logging to file"))
	require.NoError(t, l.Close())

	assert.Equal(t, "[2024-10-01T12:30:45Z] INFO: App started\n", buf.String())
	assert.False(t, strings.Contains(buf.String(), "Now logging to file"))
}
