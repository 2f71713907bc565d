package injectable

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Registration is one deferred registration action. Registrations are
// bundled into catalogs and executed by Load.
type Registration func(c *Container, defaultNamespace string) error

// Provide builds a registration for a factory-backed injectable of
// type T. The factory runs on every injection unless Singleton is set.
//
//	var Services = injectable.NewCatalog("services",
//	    injectable.Provide(NewDefaultProcessor),
//	    injectable.Provide(NewFastProcessor, injectable.InGroup("fast"), injectable.Primary()),
//	)
func Provide[T any](factory func() (T, error), opts ...Option) Registration {
	return provide(registrationID(typeFor[T](), 2), factory, opts)
}

// ProvideValue builds a registration for an already-constructed value.
// Values behave like singletons: every injection sees the same
// instance.
func ProvideValue[T any](value T, opts ...Option) Registration {
	factory := func() (T, error) { return value, nil }
	return provide(registrationID(typeFor[T](), 2), factory, append(opts, Singleton()))
}

func provide[T any](id string, factory func() (T, error), opts []Option) Registration {
	return func(c *Container, defaultNamespace string) error {
		typ := typeFor[T]()

		if factory == nil {
			return RegistrationError{Type: typ, Cause: ErrNilFactory}
		}

		o := newRegisterOptions(opts)
		for _, binding := range o.bindings {
			if !typ.AssignableTo(binding) {
				return RegistrationError{Type: typ, As: binding, Cause: ErrNotAssignable}
			}
		}

		wrapped := func() (any, error) { return factory() }
		inj := newInjectable(id, wrapped, o.group, o.primary, o.singleton)

		namespace := o.namespace
		if namespace == "" {
			namespace = defaultNamespace
		}

		c.register(namespace, inj, typ, o.bindings, o.qualifier)

		return nil
	}
}

var registrationSeq atomic.Int64

// registrationID builds the record's unique ID: the registration call
// site for diagnostics plus a process-wide sequence number, so
// registrations issued from the same line (a loop, a helper) stay
// distinct. Falls back to a random ID when caller information is
// unavailable.
func registrationID(typ reflect.Type, skip int) string {
	seq := registrationSeq.Add(1)

	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("%s@%s:%d#%d", formatType(typ), file, line, seq)
	}

	return fmt.Sprintf("%s@%s", formatType(typ), uuid.NewString())
}

// Catalog is a named bundle of registrations tied to the source
// directory that declared it. Catalogs are the unit of discovery: Load
// runs every announced catalog under its search path, each at most
// once per container regardless of how many Load calls see it.
type Catalog struct {
	name string
	dir  string
	regs []Registration
}

// NewCatalog creates a catalog. The defining file's directory is
// captured so Load can scope catalogs by search path.
func NewCatalog(name string, regs ...Registration) *Catalog {
	dir := ""
	if _, file, _, ok := runtime.Caller(1); ok {
		dir = filepath.Dir(file)
	}

	return &Catalog{name: name, dir: dir, regs: regs}
}

// Name returns the catalog's name.
func (cat *Catalog) Name() string {
	return cat.name
}

// Dir returns the directory of the file that declared the catalog.
func (cat *Catalog) Dir() string {
	return cat.dir
}

// key identifies the catalog for load-once bookkeeping.
func (cat *Catalog) key() string {
	return cat.name + "@" + cat.dir
}

// apply runs every registration against c.
func (cat *Catalog) apply(c *Container, defaultNamespace string) error {
	for _, reg := range cat.regs {
		if reg == nil {
			continue
		}

		if err := reg(c, defaultNamespace); err != nil {
			return CatalogError{Catalog: cat.name, Cause: err}
		}
	}

	return nil
}

var (
	announcedMu sync.RWMutex
	announced   []*Catalog
)

// RegisterCatalog announces a catalog for discovery by Load, in the
// manner of database/sql driver registration. It is typically called
// from an init function of the package declaring the catalog. Panics
// on a nil catalog.
func RegisterCatalog(cat *Catalog) {
	if cat == nil {
		panic(ErrNilCatalog)
	}

	announcedMu.Lock()
	defer announcedMu.Unlock()

	announced = append(announced, cat)
}

func announcedCatalogs() []*Catalog {
	announcedMu.RLock()
	defer announcedMu.RUnlock()

	out := make([]*Catalog, len(announced))
	copy(out, announced)

	return out
}
