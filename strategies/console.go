package strategies

import (
	"fmt"
	"io"
	"os"

	"dizzycode.xyz/logstrategy/level"
)

// Console implements the Strategy interface using standard output.
// It is best effort: write errors from the underlying stream are ignored and Log never fails.
type Console struct {
	out       io.Writer
	colored   bool
	maxLength int
}

// ConsoleOptions configures the Console strategy
type ConsoleOptions struct {
	// Colored wraps the level name in ANSI color codes.
	Colored bool
	// MaxMessageLength truncates messages longer than this many runes and appends "...".
	// Zero means no truncation.
	MaxMessageLength int
	// Writer replaces os.Stdout as destination.
	Writer io.Writer
}

// NewConsole creates a new Console strategy
func NewConsole(opts ...ConsoleOptions) *Console {
	c := &Console{out: os.Stdout}

	if len(opts) > 0 {
		c.colored = opts[0].Colored
		if opts[0].MaxMessageLength > 0 {
			c.maxLength = opts[0].MaxMessageLength
		}
		if opts[0].Writer != nil {
			c.out = opts[0].Writer
		}
	}

	return c
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func (c *Console) levelColor(lvl level.Level) string {
	switch lvl {
	case level.Debug:
		return colorGray
	case level.Info:
		return colorBlue
	case level.Warn:
		return colorYellow
	case level.Error:
		return colorRed
	default:
		return ""
	}
}

func (c *Console) levelString(lvl level.Level) string {
	s := lvl.String()
	if c.colored {
		return c.levelColor(lvl) + s + colorReset
	}
	return s
}

func (c *Console) truncate(message string) string {
	if c.maxLength == 0 {
		return message
	}
	runes := []rune(message)
	if len(runes) <= c.maxLength {
		return message
	}
	return string(runes[:c.maxLength]) + "..."
}

// Log implements the Strategy interface
func (c *Console) Log(entry Entry) error {
	line := formatLine(
		entry.Time.Format(TimeFormat),
		c.levelString(entry.Level),
		c.truncate(entry.Message),
	)

	_, _ = fmt.Fprintln(c.out, line)
	return nil
}

// Sync implements the Strategy interface
func (c *Console) Sync() error {
	// os.Stdout doesn't need explicit syncing
	return nil
}

// Kind implements the Strategy interface
func (c *Console) Kind() string {
	return KindConsole
}
