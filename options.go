package injectable

import "reflect"

// Option modifies the default behavior of Provide and ProvideValue.
type Option interface {
	applyOption(*registerOptions)
}

type registerOptions struct {
	qualifier string
	namespace string
	group     string
	primary   bool
	singleton bool
	bindings  []reflect.Type
}

type optionFunc func(*registerOptions)

func (f optionFunc) applyOption(o *registerOptions) {
	f(o)
}

// Qualifier additionally registers the injectable under a string key,
// so it can be injected by name as well as by type.
func Qualifier(q string) Option {
	return optionFunc(func(o *registerOptions) {
		o.qualifier = q
	})
}

// InNamespace registers the injectable in a specific namespace instead
// of the load call's default namespace.
func InNamespace(namespace string) Option {
	return optionFunc(func(o *registerOptions) {
		o.namespace = namespace
	})
}

// InGroup labels the injectable with a group, making it selectable (or
// excludable) at injection time and subject to the container's
// active-groups allow-list.
func InGroup(group string) Option {
	return optionFunc(func(o *registerOptions) {
		o.group = group
	})
}

// Primary marks the injectable as the tie-break winner when a lookup
// matches several candidates.
func Primary() Option {
	return optionFunc(func(o *registerOptions) {
		o.primary = true
	})
}

// Singleton constructs the instance once and reuses it for every
// injection.
func Singleton() Option {
	return optionFunc(func(o *registerOptions) {
		o.singleton = true
	})
}

// As additionally registers the injectable under the given types,
// typically interfaces it implements. Registration fails when the
// injectable's concrete type is not assignable to one of them.
// Use TypeOf to name an interface type:
//
//	injectable.Provide(NewPostgresStore, injectable.As(injectable.TypeOf[Store]()))
func As(types ...reflect.Type) Option {
	return optionFunc(func(o *registerOptions) {
		o.bindings = append(o.bindings, types...)
	})
}

// TypeOf returns the reflect.Type of T. It is the companion of As for
// naming interface types, which have no instance to reflect on.
func TypeOf[T any]() reflect.Type {
	return typeFor[T]()
}

func newRegisterOptions(opts []Option) *registerOptions {
	o := &registerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyOption(o)
		}
	}

	return o
}
