// Package args provides precondition checks shared by the fxcss builders.
//
// Every check returns an *ArgumentError identifying the offending parameter
// and the violated constraint. Checks never mutate their inputs, so a caller
// that receives an error is guaranteed its own state is unchanged.
package args

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ArgumentError reports an invalid argument passed to a builder or
// definition operation.
type ArgumentError struct {
	// Name is the parameter name as documented on the failing operation.
	Name string
	// Constraint describes the requirement that was violated.
	Constraint string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Constraint)
}

// NotEmpty checks that s is non-empty after trimming whitespace.
func NotEmpty(s, name string) error {
	if strings.TrimSpace(s) == "" {
		return &ArgumentError{Name: name, Constraint: "must not be empty"}
	}
	return nil
}

// Matches checks that s matches the given compiled pattern.
func Matches(s string, pattern *regexp.Regexp, name string) error {
	if !pattern.MatchString(s) {
		return &ArgumentError{Name: name, Constraint: fmt.Sprintf("must match %s", pattern)}
	}
	return nil
}

// StartsWith checks that s begins with the given prefix.
func StartsWith(s, prefix, name string) error {
	if !strings.HasPrefix(s, prefix) {
		return &ArgumentError{Name: name, Constraint: fmt.Sprintf("must start with %q", prefix)}
	}
	return nil
}

// InInterval checks that v lies in the closed interval [min, max].
func InInterval(v, min, max float64, name string) error {
	if v < min || v > max || math.IsNaN(v) {
		return &ArgumentError{Name: name, Constraint: fmt.Sprintf("must be in [%g, %g]", min, max)}
	}
	return nil
}

// AtLeast checks that v >= min.
func AtLeast(v, min float64, name string) error {
	if v < min || math.IsNaN(v) {
		return &ArgumentError{Name: name, Constraint: fmt.Sprintf("must be >= %g", min)}
	}
	return nil
}

// Finite checks that v is neither NaN nor infinite.
func Finite(v float64, name string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ArgumentError{Name: name, Constraint: "must be finite"}
	}
	return nil
}

// AllFinite checks every value in vs with Finite.
func AllFinite(vs []float64, name string) error {
	for _, v := range vs {
		if err := Finite(v, name); err != nil {
			return err
		}
	}
	return nil
}
