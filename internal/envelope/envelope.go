// Package envelope classifies raw (status code, body) pairs from the
// upstream API into a two-variant Result: a decoded record on 2xx, or
// a failure value carrying the upstream error detail otherwise.
// Failures are returned as data, never panicked.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// APIError is the upstream's conventional error payload. It is always
// constructible, even from an empty or malformed body, falling back to
// 400 / "Bad Request" the way the API itself documents.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api: %d %s", e.StatusCode, e.Message)
}

// ErrNoResult is the sentinel returned by composite operations whose
// intermediate step produced an empty collection. It short-circuits
// the remaining steps instead of indexing past the end.
var ErrNoResult = errors.New("no result")

// Result is the outcome of one classify operation: exactly one of a
// value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

func Success[T any](v T) Result[T] { return Result[T]{value: v} }

func Failure[T any](err error) Result[T] { return Result[T]{err: err} }

// Ok reports whether the result holds a usable value. This is the
// uniform success signal: callers branch on it instead of inspecting
// a discriminant.
func (r Result[T]) Ok() bool { return r.err == nil }

// Value returns the held value, or the zero value on failure.
func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Err() error { return r.err }

// Get unpacks the result into the conventional (value, error) pair.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// APIError returns the upstream error detail when the failure came
// from a non-2xx response, nil otherwise.
func (r Result[T]) APIError() *APIError {
	var ae *APIError
	if errors.As(r.err, &ae) {
		return ae
	}
	return nil
}

func successful(status int) bool { return status >= 200 && status < 300 }

// failure parses the conventional {"status": {"message","status_code"}}
// error body, defaulting each piece independently when absent.
func failure(body []byte) *APIError {
	apiErr := &APIError{Message: "Bad Request", StatusCode: 400}
	var wrapper struct {
		Status json.RawMessage `json:"status"`
	}
	if json.Unmarshal(body, &wrapper) != nil || wrapper.Status == nil {
		return apiErr
	}
	var parsed APIError
	if json.Unmarshal(wrapper.Status, &parsed) != nil {
		return apiErr
	}
	if parsed.Message != "" {
		apiErr.Message = parsed.Message
	}
	if parsed.StatusCode != 0 {
		apiErr.StatusCode = parsed.StatusCode
	}
	return apiErr
}

// Object classifies a response declared to return a single record.
func Object[T any](status int, body []byte) Result[*T] {
	if !successful(status) {
		return Failure[*T](failure(body))
	}
	v := new(T)
	if err := json.Unmarshal(body, v); err != nil {
		return Failure[*T](err)
	}
	return Success(v)
}

// List classifies a response declared to return an ordered collection,
// decoding one record per element and preserving payload order.
func List[T any](status int, body []byte) Result[[]*T] {
	if !successful(status) {
		return Failure[[]*T](failure(body))
	}
	var vs []*T
	if err := json.Unmarshal(body, &vs); err != nil {
		return Failure[[]*T](err)
	}
	return Success(vs)
}

// Set classifies a response whose result represents a mathematical
// set: structurally identical elements collapse to one, first
// occurrence kept.
func Set[T any](status int, body []byte) Result[[]*T] {
	res := List[T](status, body)
	if !res.Ok() {
		return res
	}
	var unique []*T
	for _, v := range res.Value() {
		dup := false
		for _, u := range unique {
			if reflect.DeepEqual(u, v) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, v)
		}
	}
	return Success(unique)
}

// Raw classifies a response with no target record type, returning the
// decoded JSON value unmodified (bare string lists, bare integers).
func Raw[T any](status int, body []byte) Result[T] {
	var v T
	if !successful(status) {
		return Failure[T](failure(body))
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
