package football

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidShape indicates an upstream record missing identity-critical
// fields. It is surfaced to callers as a generic internal error; the
// wrapped detail is for server-side logs only.
var ErrInvalidShape = errors.New("invalid upstream shape")

// shapeErr wraps ErrInvalidShape with record-specific detail.
func shapeErr(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, detail)
}

// looseNumber decodes upstream numeric fields that arrive as JSON
// numbers, numeric strings ("7.2"), or percentage strings ("60%").
// Anything else, including null, leaves the value unset.
type looseNumber struct {
	value float64
	ok    bool
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	n.ok = false

	// Unmarshalling null into a float64 is a no-op that reports
	// success, which would record the zero value as present.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var asFloat float64
	if err := json.Unmarshal(data, &asFloat); err == nil {
		n.value = asFloat
		n.ok = true
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return nil
	}

	asString = strings.TrimSuffix(strings.TrimSpace(asString), "%")
	parsed, err := strconv.ParseFloat(asString, 64)
	if err != nil {
		return nil
	}

	n.value = parsed
	n.ok = true
	return nil
}

// ptr returns the decoded value, or nil when none was present.
func (n looseNumber) ptr() *float64 {
	if !n.ok {
		return nil
	}
	v := n.value
	return &v
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
