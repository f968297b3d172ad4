package extraction

import "fmt"

// UnsupportedFormatError indicates the upload's media type is not one of
// the supported document formats.
type UnsupportedFormatError struct {
	MediaType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.MediaType)
}

// CorruptDocumentError indicates the document parser rejected the bytes.
type CorruptDocumentError struct {
	MediaType string
	Cause     error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt %s document: %v", e.MediaType, e.Cause)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Cause
}

// IOError indicates the document bytes could not be read.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("document read failed: %v", e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
