package errors

import "fmt"

/*
	Error kinds surfaced by each stage of the annotation pipeline.
	Callers tell them apart with errors.As.
*/

type ValidationError struct {
	Variant string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s does not appear to be a valid variant", e.Variant)
}

type FetchError struct {
	Variant    string
	Url        string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("error retrieving data for variant %s. URL: %s (status %d): %s", e.Variant, e.Url, e.StatusCode, msg)
	}
	return fmt.Sprintf("error retrieving data for variant %s. URL: %s: %s", e.Variant, e.Url, msg)
}

func (e *FetchError) Unwrap() error { return e.Err }

type ExtractError struct {
	Variant string
	Field   string
	Err     error
}

func (e *ExtractError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unable to parse annotation data for variant %s: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("unable to parse annotation data for variant %s: field '%s': %v", e.Variant, e.Field, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write tsv file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
