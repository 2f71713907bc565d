package injectable

import (
	"fmt"
	"reflect"
)

// RegistryKind selects which of a namespace's two indices a dependency
// key addresses.
type RegistryKind int

const (
	// KindClass addresses the concrete-type index.
	KindClass RegistryKind = iota

	// KindQualifier addresses the string-qualifier index.
	KindQualifier
)

func (k RegistryKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindQualifier:
		return "qualifier"
	default:
		return fmt.Sprintf("RegistryKind(%d)", int(k))
	}
}

// DependencyKey identifies a dependency either by concrete type or by
// string qualifier. The zero value is not a valid key; construct keys
// with TypeKey, QualifierKey, or KeyOf.
type DependencyKey struct {
	kind      RegistryKind
	class     reflect.Type
	qualifier string
}

// TypeKey builds a key addressing the class index under t.
func TypeKey(t reflect.Type) DependencyKey {
	return DependencyKey{kind: KindClass, class: t}
}

// QualifierKey builds a key addressing the qualifier index under q.
func QualifierKey(q string) DependencyKey {
	return DependencyKey{kind: KindQualifier, qualifier: q}
}

// KeyOf routes an arbitrary dependency reference to the matching key:
// a string becomes a qualifier key, a reflect.Type becomes a type key,
// and any other value is keyed by its dynamic type.
func KeyOf(dependency any) DependencyKey {
	switch d := dependency.(type) {
	case string:
		return QualifierKey(d)
	case reflect.Type:
		return TypeKey(d)
	default:
		return TypeKey(reflect.TypeOf(dependency))
	}
}

// Kind reports which index this key addresses.
func (k DependencyKey) Kind() RegistryKind {
	return k.kind
}

// Class returns the type identity for class keys, nil otherwise.
func (k DependencyKey) Class() reflect.Type {
	return k.class
}

// Qualifier returns the string identity for qualifier keys, "" otherwise.
func (k DependencyKey) Qualifier() string {
	return k.qualifier
}

func (k DependencyKey) String() string {
	if k.kind == KindQualifier {
		return fmt.Sprintf("qualifier %q", k.qualifier)
	}

	if k.class == nil {
		return "class <nil>"
	}

	return fmt.Sprintf("class %s", formatType(k.class))
}

// typeFor resolves the reflect.Type of T without requiring an instance.
// Works for interface types as well as concrete ones.
func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// formatType renders a type with its package path for unambiguous
// diagnostics.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Kind() == reflect.Pointer {
		return "*" + formatType(t.Elem())
	}

	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}

	return t.String()
}
