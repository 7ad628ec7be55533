package strategies

import "fmt"

// SinkWriteError is returned when the sink behind a strategy fails to accept an entry
type SinkWriteError struct {
	Kind string
	Err  error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("%s sink write failed: %v", e.Kind, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

func sinkError(kind string, err error) error {
	if err == nil {
		return nil
	}
	return &SinkWriteError{Kind: kind, Err: err}
}
