package injectable

import (
	"strings"
	"sync"
)

// Injectable is the immutable descriptor of one registered unit. Two
// records are never equal unless they are the same registration, even
// when every field matches: identity is pointer identity, and the
// unique ID exists for diagnostics only.
type Injectable struct {
	id        string
	group     string
	primary   bool
	singleton bool
	factory   func() (any, error)

	once     sync.Once
	instance any
	buildErr error
}

func newInjectable(id string, factory func() (any, error), group string, primary, singleton bool) *Injectable {
	return &Injectable{
		id:        id,
		group:     group,
		primary:   primary,
		singleton: singleton,
		factory:   factory,
	}
}

// ID returns the unique registration ID, derived from the registration
// call site when available.
func (i *Injectable) ID() string {
	return i.id
}

// Group returns the group label, or "" for ungrouped injectables.
func (i *Injectable) Group() string {
	return i.group
}

// Grouped reports whether the injectable carries a group label.
func (i *Injectable) Grouped() bool {
	return i.group != ""
}

// Primary reports whether the injectable is the preferred tie-break
// winner among ambiguous matches.
func (i *Injectable) Primary() bool {
	return i.primary
}

// Singleton reports whether instances are constructed once and cached.
func (i *Injectable) Singleton() bool {
	return i.singleton
}

// GetInstance builds an instance through the registered factory.
// Singletons are built exactly once; the first result, error included,
// is cached for the process lifetime. Safe for concurrent use.
func (i *Injectable) GetInstance() (any, error) {
	if !i.singleton {
		return i.factory()
	}

	i.once.Do(func() {
		i.instance, i.buildErr = i.factory()
	})

	return i.instance, i.buildErr
}

// describe renders the record for candidate listings in errors.
func (i *Injectable) describe() string {
	var b strings.Builder

	b.WriteString(i.id)

	if i.group != "" {
		b.WriteString(" (group=")
		b.WriteString(i.group)
		b.WriteString(")")
	}

	if i.primary {
		b.WriteString(" [primary]")
	}

	return b.String()
}
