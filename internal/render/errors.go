package render

import (
	"errors"
	"fmt"
)

var (
	ErrShaderCompile   = errors.New("render: shader compile failed")
	ErrProgramLink     = errors.New("render: program link failed")
	ErrMissingLocation = errors.New("render: missing shader location")
	ErrNoContext       = errors.New("render: no rendering context")
	ErrInvalidImage    = errors.New("render: invalid image")
)

// ShaderError carries the compiler or linker log for a failed program.
type ShaderError struct {
	Program string
	Stage   string
	Log     string
	Err     error
}

func (e *ShaderError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("%v: %s program: %s", e.Err, e.Program, e.Log)
	}
	return fmt.Sprintf("%v: %s %s shader: %s", e.Err, e.Program, e.Stage, e.Log)
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}
