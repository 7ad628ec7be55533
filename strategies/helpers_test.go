package strategies

import (
	"errors"
	"sync"
)

func isSinkError(err error, kind string) bool {
	var sinkErr *SinkWriteError
	return errors.As(err, &sinkErr) && sinkErr.Kind == kind
}

// recorder keeps every entry it receives and can be told to fail
type recorder struct {
	mu      sync.Mutex
	kind    string
	entries []Entry
	err     error
	syncs   int
	closed  bool
}

func (r *recorder) Log(entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return &SinkWriteError{Kind: r.Kind(), Err: r.err}
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recorder) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncs++
	return nil
}

func (r *recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recorder) Kind() string {
	if r.kind == "" {
		return "recorder"
	}
	return r.kind
}

// flakyWriter fails while fail is set and buffers otherwise
type flakyWriter struct {
	fail bool
	buf  []byte
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, errors.New("disk full")
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}
