package errors

import "fmt"

type PipelineError struct {
	Code    string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

var (
	ErrValidation = func(msg string) *PipelineError {
		return &PipelineError{Code: "validation_error", Message: msg}
	}
	ErrFetch = func(msg string, err error) *PipelineError {
		return &PipelineError{Code: "fetch_error", Message: msg, Err: err}
	}
	ErrDecode = func(err error) *PipelineError {
		return &PipelineError{Code: "decode_error", Message: "Source is not a readable image", Err: err}
	}
	ErrEncode = func(msg string, err error) *PipelineError {
		return &PipelineError{Code: "encode_error", Message: msg, Err: err}
	}
	ErrStorage = func(err error) *PipelineError {
		return &PipelineError{Code: "storage_error", Message: "Could not persist file", Err: err}
	}
	ErrDerivation = func(err error) *PipelineError {
		return &PipelineError{Code: "derivation_error", Message: "Thumbnail derivation failed", Err: err}
	}
	ErrNotFound = func(err error) *PipelineError {
		return &PipelineError{Code: "not_found", Message: "Record not found", Err: err}
	}
	ErrInternal = func(err error) *PipelineError {
		return &PipelineError{Code: "internal_error", Message: "Internal server error", Err: err}
	}
)
