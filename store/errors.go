package store

import "fmt"

// ParseError reports input that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse data: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports input that parses but is not an array of posts.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid data format: %s", e.Reason)
}
