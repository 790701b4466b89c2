package pdfsurface

import (
	"errors"
	"fmt"
)

// Sentinel errors for surface failures
var (
	ErrUnknownPaper = errors.New("pdfsurface: unknown paper size")
	ErrRender       = errors.New("pdfsurface: document is in an error state")
	ErrSave         = errors.New("pdfsurface: cannot write document")
)

// SurfaceError wraps a failure with the operation that produced it
type SurfaceError struct {
	Op  string // operation name, e.g. "New", "Save"
	Err error  // underlying error
}

func (e *SurfaceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfsurface.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pdfsurface.%s: unknown error", e.Op)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

func newSurfaceError(op string, err error) *SurfaceError {
	return &SurfaceError{Op: op, Err: err}
}
