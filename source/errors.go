package source

import "fmt"

// EvaluationError reports a source that could not be parsed or executed.
type EvaluationError struct {
	Engine string
	Path   string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("source: %s evaluation of %q failed: %v", e.Engine, e.Path, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func wrapEvaluationError(engine, path string, err error) error {
	if err == nil {
		return nil
	}
	return &EvaluationError{Engine: engine, Path: path, Err: err}
}
