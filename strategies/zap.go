package strategies

import (
	"sync"

	"dizzycode.xyz/logstrategy/level"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap implements the Strategy interface using Uber's Zap logger.
// Core write failures, which zap reports on its ErrorOutput, are returned from Log.
type Zap struct {
	mu     sync.Mutex
	errs   *errorOutput
	logger *zap.Logger
}

// ZapOptions configures the Zap strategy
type ZapOptions struct {
	// IsPretty enables human-readable console output (for development)
	// If false, outputs JSON format (for production)
	IsPretty bool

	// Level sets the minimum log level
	Level level.Level

	// Logger, when set, is used as is and the other options are ignored.
	Logger *zap.Logger
}

// NewZap creates a new Zap strategy with the given options
func NewZap(opts ZapOptions) (*Zap, error) {
	if opts.Logger != nil {
		return newZap(opts.Logger), nil
	}

	var config zap.Config
	if opts.IsPretty {
		// Development mode: pretty console output
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// Production mode: JSON output
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
	}
	config.Level = zap.NewAtomicLevelAt(opts.Level.ToZapLevel())
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableCaller = true

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return newZap(zapLogger), nil
}

func newZap(logger *zap.Logger) *Zap {
	errs := &errorOutput{}
	return &Zap{
		errs:   errs,
		logger: logger.WithOptions(zap.ErrorOutput(errs)),
	}
}

// NewZapMust creates a new Zap strategy and panics on error
// This is useful for initialization in main() where errors should be fatal
func NewZapMust(opts ZapOptions) *Zap {
	strategy, err := NewZap(opts)
	if err != nil {
		panic(err)
	}
	return strategy
}

// Log implements the Strategy interface. The entry time replaces zap's own clock.
func (z *Zap) Log(entry Entry) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	ce := z.logger.Check(entry.Level.ToZapLevel(), entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time
	ce.Write()
	return sinkError(KindZap, z.errs.take())
}

// Sync implements the Strategy interface
func (z *Zap) Sync() error {
	return sinkError(KindZap, z.logger.Sync())
}

// Kind implements the Strategy interface
func (z *Zap) Kind() string {
	return KindZap
}

// GetZapLogger returns the underlying zap logger
// This is useful if you need direct access to zap's features
func (z *Zap) GetZapLogger() *zap.Logger {
	return z.logger
}
