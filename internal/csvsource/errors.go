package csvsource

import "fmt"

// LoadError reports a roster source that could not be loaded. Per-field
// parse problems never produce a LoadError; only a missing, unreadable
// or structurally broken file does.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load roster %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
