package strategies

import (
	"io"
	"os"
	"sync"

	"dizzycode.xyz/logstrategy/level"

	"github.com/rs/zerolog"
)

// Zerolog implements the Strategy interface with a zerolog JSON logger.
// A failing destination writer is reported from Log as *SinkWriteError.
type Zerolog struct {
	mu     sync.Mutex
	out    *captureWriter
	logger zerolog.Logger
}

// ZerologOptions configures the Zerolog strategy
type ZerologOptions struct {
	// Writer defaults to os.Stdout.
	Writer io.Writer
	// Level sets the minimum log level.
	Level level.Level
	// Pretty switches to zerolog's human-readable console writer.
	Pretty bool
}

// NewZerolog creates a new Zerolog strategy
func NewZerolog(opts ZerologOptions) *Zerolog {
	out := &captureWriter{out: opts.Writer}
	if out.out == nil {
		out.out = os.Stdout
	}

	var w io.Writer = out
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}

	return &Zerolog{
		out:    out,
		logger: zerolog.New(w).Level(opts.Level.ToZerologLevel()),
	}
}

// Log implements the Strategy interface
func (z *Zerolog) Log(entry Entry) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	z.logger.WithLevel(entry.Level.ToZerologLevel()).
		Time(zerolog.TimestampFieldName, entry.Time).
		Msg(entry.Message)
	return sinkError(KindZerolog, z.out.take())
}

// Sync implements the Strategy interface
func (z *Zerolog) Sync() error {
	return nil
}

// Kind implements the Strategy interface
func (z *Zerolog) Kind() string {
	return KindZerolog
}
