package manifest

import "fmt"

// Error codes shared with the command line output.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeReadFailed    = "E002" // Manifest could not be read
	ErrCodeUnknownFormat = "E003" // Unsupported file extension
	ErrCodeParseFailed   = "E004" // Document is not a valid manifest
	ErrCodeNotFound      = "E005" // Manifest file not found
	ErrCodeWriteFailed   = "E007" // Manifest could not be written
	ErrCodeInvalidPath   = "E010" // A list element does not decode to a path
)

// LoadError describes a manifest failure. Index is the position of the
// offending list element, or -1 when the whole document is at fault.
type LoadError struct {
	Code    string
	Index   int
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: paths[%d]: %s", e.Code, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func documentError(code string, err error) *LoadError {
	return &LoadError{Code: code, Index: -1, Message: err.Error(), Err: err}
}

func elementError(index int, err error) *LoadError {
	return &LoadError{Code: ErrCodeInvalidPath, Index: index, Message: err.Error(), Err: err}
}
