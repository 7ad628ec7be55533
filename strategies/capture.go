package strategies

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// captureWriter remembers the last error returned by the wrapped writer
type captureWriter struct {
	out io.Writer
	err error
}

func (c *captureWriter) Write(p []byte) (int, error) {
	n, err := c.out.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}

// take returns the remembered error and clears it
func (c *captureWriter) take() error {
	err := c.err
	c.err = nil
	return err
}

// errorOutput collects the write failures zap reports on its ErrorOutput
type errorOutput struct {
	mu  sync.Mutex
	err error
}

func (e *errorOutput) Write(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = errors.New(strings.TrimSpace(string(p)))
	return len(p), nil
}

func (e *errorOutput) Sync() error {
	return nil
}

func (e *errorOutput) take() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.err
	e.err = nil
	return err
}
