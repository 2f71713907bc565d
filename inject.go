package injectable

import "reflect"

// InjectOption configures a single injection request.
type InjectOption interface {
	applyInjectOption(*injectOptions)
}

type injectOptions struct {
	namespace string
	group     string
	exclude   []string
	optional  bool
}

type injectOptionFunc func(*injectOptions)

func (f injectOptionFunc) applyInjectOption(o *injectOptions) {
	f(o)
}

// FromNamespace looks the dependency up in a specific namespace
// instead of DefaultNamespace.
func FromNamespace(namespace string) InjectOption {
	return injectOptionFunc(func(o *injectOptions) {
		o.namespace = namespace
	})
}

// FromGroup keeps only candidates labeled with the given group.
// Ungrouped candidates do not match a required group.
func FromGroup(group string) InjectOption {
	return injectOptionFunc(func(o *injectOptions) {
		o.group = group
	})
}

// ExcludingGroups drops candidates labeled with any of the given
// groups. Ungrouped candidates are never excluded.
func ExcludingGroups(groups ...string) InjectOption {
	return injectOptionFunc(func(o *injectOptions) {
		o.exclude = append(o.exclude, groups...)
	})
}

// Optional turns a no-match outcome into the zero value (or an empty
// slice for multi-injection) instead of an error. Ambiguity among
// actual matches still fails: Optional never licenses an arbitrary
// pick.
func Optional() InjectOption {
	return injectOptionFunc(func(o *injectOptions) {
		o.optional = true
	})
}

// Inject resolves a single instance of T from the default container.
func Inject[T any](opts ...InjectOption) (T, error) {
	return injectOne[T](Default(), TypeKey(typeFor[T]()), opts)
}

// InjectFrom resolves a single instance of T from c.
func InjectFrom[T any](c *Container, opts ...InjectOption) (T, error) {
	return injectOne[T](c, TypeKey(typeFor[T]()), opts)
}

// InjectQualified resolves a single instance of T registered under the
// string qualifier, from the default container.
func InjectQualified[T any](qualifier string, opts ...InjectOption) (T, error) {
	return injectOne[T](Default(), QualifierKey(qualifier), opts)
}

// InjectQualifiedFrom resolves a single instance of T registered under
// the string qualifier, from c.
func InjectQualifiedFrom[T any](c *Container, qualifier string, opts ...InjectOption) (T, error) {
	return injectOne[T](c, QualifierKey(qualifier), opts)
}

// InjectMultiple resolves one instance of every eligible injectable
// registered under T in the default container. Unlike Inject it never
// fails on ambiguity, since no uniqueness is required.
func InjectMultiple[T any](opts ...InjectOption) ([]T, error) {
	return injectMany[T](Default(), TypeKey(typeFor[T]()), opts)
}

// InjectMultipleFrom is InjectMultiple against c.
func InjectMultipleFrom[T any](c *Container, opts ...InjectOption) ([]T, error) {
	return injectMany[T](c, TypeKey(typeFor[T]()), opts)
}

// InjectQualifiedMultiple resolves one instance of every eligible
// injectable registered under the qualifier in the default container.
func InjectQualifiedMultiple[T any](qualifier string, opts ...InjectOption) ([]T, error) {
	return injectMany[T](Default(), QualifierKey(qualifier), opts)
}

// InjectQualifiedMultipleFrom is InjectQualifiedMultiple against c.
func InjectQualifiedMultipleFrom[T any](c *Container, qualifier string, opts ...InjectOption) ([]T, error) {
	return injectMany[T](c, QualifierKey(qualifier), opts)
}

func newInjectOptions(opts []InjectOption) *injectOptions {
	o := &injectOptions{namespace: DefaultNamespace}
	for _, opt := range opts {
		if opt != nil {
			opt.applyInjectOption(o)
		}
	}

	return o
}

func injectOne[T any](c *Container, key DependencyKey, opts []InjectOption) (T, error) {
	var zero T

	if err := validateKey(key); err != nil {
		return zero, err
	}

	o := newInjectOptions(opts)

	matches := c.Lookup(key, o.namespace)
	if len(matches) == 0 {
		if o.optional {
			return zero, nil
		}

		return zero, InjectionError{Key: key, Cause: ErrNoMatches}
	}

	matches = c.Filter(matches, o.group, o.exclude...)
	if len(matches) == 0 {
		if o.optional {
			return zero, nil
		}

		return zero, InjectionError{Key: key, Cause: ErrNoMatches}
	}

	inj, err := Resolve(key, matches)
	if err != nil {
		return zero, err
	}

	return instantiate[T](key, inj)
}

func injectMany[T any](c *Container, key DependencyKey, opts []InjectOption) ([]T, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	o := newInjectOptions(opts)

	matches := c.Lookup(key, o.namespace)
	if len(matches) == 0 {
		if o.optional {
			return nil, nil
		}

		return nil, InjectionError{Key: key, Cause: ErrNoMatches}
	}

	matches = c.Filter(matches, o.group, o.exclude...)
	if len(matches) == 0 {
		if o.optional {
			return nil, nil
		}

		return nil, InjectionError{Key: key, Cause: ErrNoMatches}
	}

	instances := make([]T, 0, len(matches))
	for _, inj := range matches {
		instance, err := instantiate[T](key, inj)
		if err != nil {
			return nil, err
		}

		instances = append(instances, instance)
	}

	return instances, nil
}

func validateKey(key DependencyKey) error {
	if key.kind == KindQualifier && key.qualifier == "" {
		return InjectionError{Key: key, Cause: ErrEmptyQualifier}
	}

	return nil
}

func instantiate[T any](key DependencyKey, inj *Injectable) (T, error) {
	var zero T

	value, err := inj.GetInstance()
	if err != nil {
		return zero, FactoryError{Injectable: inj.id, Cause: err}
	}

	typed, ok := value.(T)
	if !ok {
		return zero, TypeMismatchError{
			Requested: typeFor[T](),
			Actual:    reflect.TypeOf(value),
			Key:       key,
		}
	}

	return typed, nil
}
