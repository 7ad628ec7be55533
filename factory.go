package logstrategy

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"

	"dizzycode.xyz/logstrategy/level"
	"dizzycode.xyz/logstrategy/store"
	"dizzycode.xyz/logstrategy/strategies"
)

// Constructor builds a strategy from its parameters
type Constructor func(params Params) (strategies.Strategy, error)

// Factory maps kind names to strategy constructors
type Factory struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewFactory creates a factory with every built-in kind registered
func NewFactory() *Factory {
	f := &Factory{constructors: make(map[string]Constructor)}

	f.Register(strategies.KindConsole, newConsole)
	f.Register(strategies.KindFile, newFile)
	f.Register(strategies.KindDatabase, newDatabase)
	f.Register(strategies.KindJSON, newJSON)
	f.Register(strategies.KindNop, func(Params) (strategies.Strategy, error) {
		return strategies.NewNop(), nil
	})
	f.Register(strategies.KindZap, newZap)
	f.Register(strategies.KindZerolog, newZerolog)
	f.Register(strategies.KindMulti, newMulti)

	return f
}

// Register adds or replaces the constructor for kind
func (f *Factory) Register(kind string, ctor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[kind] = ctor
}

// Kinds lists the registered kind names in sorted order
func (f *Factory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]string, 0, len(f.constructors))
	for k := range f.constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Create builds the strategy registered under kind.
// An unregistered kind fails with *UnknownStrategyError, a missing or malformed
// parameter with *InvalidConfigurationError.
func (f *Factory) Create(kind string, params Params) (strategies.Strategy, error) {
	f.mu.RLock()
	ctor, ok := f.constructors[kind]
	f.mu.RUnlock()

	if !ok {
		return nil, &UnknownStrategyError{Kind: kind}
	}
	if params == nil {
		params = Params{}
	}
	return ctor(params)
}

var defaultFactory = NewFactory()

// CreateStrategy builds a strategy with the package default factory
func CreateStrategy(kind string, params Params) (strategies.Strategy, error) {
	return defaultFactory.Create(kind, params)
}

// Register adds a custom kind to the package default factory
func Register(kind string, ctor Constructor) {
	defaultFactory.Register(kind, ctor)
}

func newConsole(params Params) (strategies.Strategy, error) {
	colored, err := params.optionalBool(strategies.KindConsole, "colored")
	if err != nil {
		return nil, err
	}
	maxLength, err := params.optionalInt(strategies.KindConsole, "max_length")
	if err != nil {
		return nil, err
	}

	opts := strategies.ConsoleOptions{Colored: colored, MaxMessageLength: maxLength}
	if v, ok := params["writer"]; ok && v != nil {
		w, ok := v.(io.Writer)
		if !ok {
			return nil, wrongType(strategies.KindConsole, "writer", "io.Writer", v)
		}
		opts.Writer = w
	}

	return strategies.NewConsole(opts), nil
}

func newFile(params Params) (strategies.Strategy, error) {
	path, err := params.requireString(strategies.KindFile, "path")
	if err != nil {
		return nil, err
	}
	return strategies.NewFile(path), nil
}

func newJSON(params Params) (strategies.Strategy, error) {
	path, err := params.requireString(strategies.KindJSON, "path")
	if err != nil {
		return nil, err
	}
	return strategies.NewJSON(path), nil
}

func newDatabase(params Params) (strategies.Strategy, error) {
	const kind = strategies.KindDatabase

	conn, ok := params["connection"]
	if !ok || conn == nil {
		return nil, &InvalidConfigurationError{Kind: kind, Field: "connection"}
	}

	var st strategies.Store
	switch c := conn.(type) {
	case strategies.Store:
		st = c
	case redis.Cmdable:
		st = store.NewRedis(c)
	case store.Execer:
		st = store.NewPostgres(c)
	default:
		return nil, wrongType(kind, "connection", "store, pgx connection or redis client", conn)
	}

	table, _, err := params.optionalString(kind, "table")
	if err != nil {
		return nil, err
	}
	timeout, err := params.optionalDuration(kind, "timeout")
	if err != nil {
		return nil, err
	}

	return strategies.NewDatabase(st, strategies.DatabaseOptions{
		Table:   table,
		Timeout: timeout,
	}), nil
}

func newZap(params Params) (strategies.Strategy, error) {
	pretty, err := params.optionalBool(strategies.KindZap, "pretty")
	if err != nil {
		return nil, err
	}
	lvl, _, err := params.optionalString(strategies.KindZap, "level")
	if err != nil {
		return nil, err
	}

	z, err := strategies.NewZap(strategies.ZapOptions{
		IsPretty: pretty,
		Level:    level.Parse(lvl),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return z, nil
}

func newZerolog(params Params) (strategies.Strategy, error) {
	pretty, err := params.optionalBool(strategies.KindZerolog, "pretty")
	if err != nil {
		return nil, err
	}
	lvl, _, err := params.optionalString(strategies.KindZerolog, "level")
	if err != nil {
		return nil, err
	}

	opts := strategies.ZerologOptions{Pretty: pretty, Level: level.Parse(lvl)}
	if v, ok := params["writer"]; ok && v != nil {
		w, ok := v.(io.Writer)
		if !ok {
			return nil, wrongType(strategies.KindZerolog, "writer", "io.Writer", v)
		}
		opts.Writer = w
	}
	return strategies.NewZerolog(opts), nil
}

// newMulti fans out to params["strategies"]. Each entry of params["levels"], when
// given, is the minimum level for the strategy at the same index.
func newMulti(params Params) (strategies.Strategy, error) {
	const kind = strategies.KindMulti

	v, ok := params["strategies"]
	if !ok || v == nil {
		return nil, &InvalidConfigurationError{Kind: kind, Field: "strategies"}
	}
	strats, ok := v.([]strategies.Strategy)
	if !ok {
		return nil, wrongType(kind, "strategies", "[]strategies.Strategy", v)
	}
	if len(strats) == 0 {
		return nil, &InvalidConfigurationError{Kind: kind, Field: "strategies"}
	}

	var levels []level.Level
	if v, ok := params["levels"]; ok && v != nil {
		levels, ok = v.([]level.Level)
		if !ok {
			return nil, wrongType(kind, "levels", "[]level.Level", v)
		}
		if len(levels) != len(strats) {
			return nil, &InvalidConfigurationError{Kind: kind, Field: "levels", Reason: "must have one level per strategy"}
		}
	}

	inner := make([]strategies.Strategy, len(strats))
	for i, s := range strats {
		if s == nil {
			return nil, &InvalidConfigurationError{Kind: kind, Field: "strategies", Reason: fmt.Sprintf("entry %d is nil", i)}
		}
		if levels != nil {
			s = strategies.NewLevelFilter(s, levels[i])
		}
		inner[i] = s
	}
	return strategies.NewMulti(inner...), nil
}
