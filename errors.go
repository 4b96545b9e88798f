package medial

import (
	"errors"
	"fmt"
)

var (
	ErrDisconnected    = errors.New("medial axis graph is empty or disconnected")
	ErrNoVertices      = errors.New("no skeleton vertices")
	ErrNoPrimitives    = errors.New("no primitives to reconstruct")
	ErrIndexOutOfRange = errors.New("subpath index out of range")
	ErrInvalidOptions  = errors.New("invalid options")
	ErrEmptyPath       = errors.New("path encloses no area")
)

// PipelineError reports the failure of one pipeline stage. Kind is one of the
// package's sentinel errors and is what errors.Is matches against.
type PipelineError struct {
	Stage string
	Kind  error
	Msg   string
}

func (e *PipelineError) Error() string {
	if e == nil {
		return ""
	}
	s := e.Kind.Error()
	if e.Msg != "" {
		s = fmt.Sprintf("%s: %s", s, e.Msg)
	}
	if e.Stage != "" {
		s = e.Stage + ": " + s
	}
	return s
}

func (e *PipelineError) Unwrap() error { return e.Kind }

func stageErrorf(stage string, kind error, format string, args ...any) error {
	return &PipelineError{Stage: stage, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
