package strategies

// Names the built-in strategies report from Kind and are registered under by the factory.
const (
	KindConsole  = "console"
	KindFile     = "file"
	KindDatabase = "database"
	KindJSON     = "json"
	KindNop      = "nop"
	KindZap      = "zap"
	KindZerolog  = "zerolog"
	KindMulti    = "multi"
)
