package logger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"dizzycode.xyz/logstrategy"
	"dizzycode.xyz/logstrategy/cmd/logdemo/internal/config"
	"dizzycode.xyz/logstrategy/level"
	"dizzycode.xyz/logstrategy/store"
	"dizzycode.xyz/logstrategy/strategies"
)

// Builder creates strategies from configuration and owns the connections they need
type Builder struct {
	cfg     *config.Config
	metrics *strategies.Metrics
	closers []func() error
}

// NewBuilder creates a Builder. Strategies it creates are counted in reg.
func NewBuilder(cfg *config.Config, reg prometheus.Registerer) (*Builder, error) {
	metrics, err := strategies.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return &Builder{cfg: cfg, metrics: metrics}, nil
}

// Strategy creates the named strategy with parameters taken from configuration
func (b *Builder) Strategy(ctx context.Context, kind string) (strategies.Strategy, error) {
	params := logstrategy.Params{}

	switch kind {
	case strategies.KindFile:
		params["path"] = b.cfg.File.Path
	case strategies.KindJSON:
		params["path"] = b.cfg.File.JSONPath
	case strategies.KindZap:
		params["pretty"] = b.cfg.Environment != "production"
		params["level"] = b.cfg.LogLevel
	case strategies.KindZerolog:
		params["pretty"] = b.cfg.Environment != "production"
		params["level"] = b.cfg.LogLevel
	case strategies.KindDatabase:
		conn, err := b.connection(ctx)
		if err != nil {
			return nil, err
		}
		params["connection"] = conn
		params["table"] = b.cfg.Database.Table
	case strategies.KindMulti:
		// everything on the console, warnings and errors also kept in the file
		var inner []strategies.Strategy
		for _, k := range []string{strategies.KindConsole, strategies.KindFile} {
			s, err := b.Strategy(ctx, k)
			if err != nil {
				return nil, err
			}
			inner = append(inner, s)
		}
		params["strategies"] = inner
		params["levels"] = []level.Level{level.Debug, level.Warn}
	}

	s, err := logstrategy.CreateStrategy(kind, params)
	if err != nil {
		return nil, err
	}
	return b.metrics.Wrap(s), nil
}

// connection picks postgres, then redis, then an in-memory store
func (b *Builder) connection(ctx context.Context) (strategies.Store, error) {
	if b.cfg.Database.URL != "" {
		conn, err := pgx.Connect(ctx, b.cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		b.closers = append(b.closers, func() error { return conn.Close(context.Background()) })

		pg := store.NewPostgres(conn)
		if err := pg.EnsureTable(ctx, b.cfg.Database.Table); err != nil {
			return nil, err
		}
		return pg, nil
	}

	if b.cfg.Redis.Addr != "" {
		client, err := store.Dial(ctx, store.RedisConfig{
			Addr:     b.cfg.Redis.Addr,
			Password: b.cfg.Redis.Password,
			DB:       b.cfg.Redis.DB,
			PoolSize: b.cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Close)

		return store.NewRedis(client, store.RedisOptions{
			KeyPrefix: b.cfg.Redis.KeyPrefix,
			MaxLength: int64(b.cfg.Redis.MaxLength),
		}), nil
	}

	return store.NewMemory(), nil
}

// Logger creates a Logger on the configured strategy
func (b *Builder) Logger(ctx context.Context) (*logstrategy.Logger, error) {
	s, err := b.Strategy(ctx, b.cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return logstrategy.New(s, logstrategy.WithMinLevel(level.Parse(b.cfg.LogLevel)))
}

// Close releases every connection opened by the builder
func (b *Builder) Close() error {
	var err error
	for i := len(b.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, b.closers[i]())
	}
	b.closers = nil
	return err
}
