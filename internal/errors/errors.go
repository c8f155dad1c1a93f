package errors

import "fmt"

type Kind string

const (
	NotFound         Kind = "not_found"
	NotReady         Kind = "not_ready"
	InvalidSelection Kind = "invalid_selection"
	Structural       Kind = "structural"
	IOFailure        Kind = "io_failure"
	Internal         Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func UserMessage(err error) string {
	appErr, ok := err.(*AppError)
	if !ok {
		return err.Error()
	}
	switch appErr.Kind {
	case NotFound:
		return fmt.Sprintf("No installation found at: %s", appErr.Path)
	case NotReady:
		return "Operation not ready: pick a version and character for both sides first"
	case InvalidSelection:
		return fmt.Sprintf("Invalid selection: %v", appErr.Err)
	case Structural:
		return fmt.Sprintf("Copy aborted: %v", appErr.Err)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s", appErr.Path)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
