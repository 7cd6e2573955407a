package chesscom

import "fmt"

// TransportError reports a request that produced no usable response, a
// connection failure, a timeout or a non-200 status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid utf-8 text.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError reports a response body that does not match the
// published api schema, malformed json, a missing required field or an
// enum value outside the known set.
type SchemaError struct {
	URL string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.URL, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
