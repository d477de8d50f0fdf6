package clinic

import "fmt"

// FormatError reports a malformed input file. The file that produced it
// contributes no records; other files keep loading.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("clinic: malformed data file %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports a bad field value in a record or in query
// criteria. It is propagated to the caller, never silently ignored.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("clinic: invalid %s %q", e.Field, e.Value)
}
