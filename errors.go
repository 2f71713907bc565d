package injectable

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Sentinel errors. These are never returned bare: the engine wraps them
// in the typed errors below so callers can match the cause with
// errors.Is while still getting full diagnostic context.
var (
	// Resolution errors.
	ErrNoMatches        = errors.New("no matching injectable found")
	ErrNoPrimary        = errors.New("multiple matches but none marked primary")
	ErrAmbiguousPrimary = errors.New("multiple matches marked primary")

	// Registration errors.
	ErrNilFactory     = errors.New("factory cannot be nil")
	ErrEmptyQualifier = errors.New("qualifier cannot be empty")
	ErrNotAssignable  = errors.New("injectable type is not assignable to the requested binding type")

	// Load errors.
	ErrNilCatalog = errors.New("catalog cannot be nil")
)

var (
	_ error = InjectionError{}
	_ error = RegistrationError{}
	_ error = CatalogError{}
	_ error = FactoryError{}
	_ error = TypeMismatchError{}
)

// InjectionError reports a failed injection. Cause is one of
// ErrNoMatches, ErrNoPrimary, or ErrAmbiguousPrimary, or
// ErrEmptyQualifier when the key itself is malformed; Candidates holds
// the unresolved match set for diagnostics.
type InjectionError struct {
	Key        DependencyKey
	Candidates []*Injectable
	Cause      error
}

func (e InjectionError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "cannot resolve %s: %v", e.Key, e.Cause)

	if len(e.Candidates) > 0 {
		b.WriteString("\ncandidates:")

		ids := make([]string, 0, len(e.Candidates))
		for _, c := range e.Candidates {
			ids = append(ids, c.describe())
		}
		sort.Strings(ids)

		for _, id := range ids {
			b.WriteString("\n  • ")
			b.WriteString(id)
		}
	}

	return b.String()
}

func (e InjectionError) Unwrap() error {
	return e.Cause
}

// IsNoMatches reports whether err is an injection failure caused by an
// empty candidate set.
func IsNoMatches(err error) bool {
	return errors.Is(err, ErrNoMatches)
}

// IsAmbiguous reports whether err is an injection failure caused by the
// primary tie-break not producing a unique winner.
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrNoPrimary) || errors.Is(err, ErrAmbiguousPrimary)
}

// RegistrationError reports an invalid registration.
type RegistrationError struct {
	Type  reflect.Type
	As    reflect.Type // non-nil when an As binding was rejected
	Cause error
}

func (e RegistrationError) Error() string {
	if e.As != nil {
		return fmt.Sprintf("cannot register %s as %s: %v", formatType(e.Type), formatType(e.As), e.Cause)
	}

	return fmt.Sprintf("cannot register %s: %v", formatType(e.Type), e.Cause)
}

func (e RegistrationError) Unwrap() error {
	return e.Cause
}

// CatalogError wraps a registration failure inside a catalog so the
// failing catalog can be identified.
type CatalogError struct {
	Catalog string
	Cause   error
}

func (e CatalogError) Error() string {
	return fmt.Sprintf("catalog %q: %v", e.Catalog, e.Cause)
}

func (e CatalogError) Unwrap() error {
	return e.Cause
}

// FactoryError reports a factory invocation that returned an error
// while building an instance for an otherwise successful resolution.
type FactoryError struct {
	Injectable string // unique ID of the failing injectable
	Cause      error
}

func (e FactoryError) Error() string {
	return fmt.Sprintf("factory for %s failed: %v", e.Injectable, e.Cause)
}

func (e FactoryError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError reports that a resolved instance does not have the
// type the caller requested. Reachable only through qualifier keys,
// since class keys are bound at registration time.
type TypeMismatchError struct {
	Requested reflect.Type
	Actual    reflect.Type
	Key       DependencyKey
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("resolved %s to %s, which is not assignable to requested type %s",
		e.Key, formatType(e.Actual), formatType(e.Requested))
}
