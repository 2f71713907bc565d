package injectable

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// DefaultNamespace is the namespace used by registrations and
// injections that do not ask for a specific one.
const DefaultNamespace = "default"

// Container is the process-wide injectable registry: a mapping from
// namespace name to its indices, plus the global active-groups
// allow-list fixed by the first load that supplies one.
//
// Registration (load) and resolution are guarded by a single
// read-write mutex: loads are expected to be serialized during
// application bootstrap, after which any number of goroutines may
// resolve concurrently.
type Container struct {
	id     string
	logger *slog.Logger

	mu         sync.RWMutex
	namespaces map[string]*Namespace
	groups     []string
	loaded     map[string]struct{}
}

// ContainerOption configures a Container at construction time.
type ContainerOption interface {
	applyContainerOption(*Container)
}

type containerOptionFunc func(*Container)

func (f containerOptionFunc) applyContainerOption(c *Container) {
	f(c)
}

// WithLogger sets the logger used for non-fatal diagnostics. Defaults
// to slog.Default().
func WithLogger(logger *slog.Logger) ContainerOption {
	return containerOptionFunc(func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// New creates an empty, isolated container. Most applications use the
// package-level default container instead and only construct their own
// for tests or embedded sub-applications.
func New(opts ...ContainerOption) *Container {
	c := &Container{
		id:         uuid.NewString(),
		logger:     slog.Default(),
		namespaces: make(map[string]*Namespace),
		loaded:     make(map[string]struct{}),
	}

	for _, opt := range opts {
		if opt != nil {
			opt.applyContainerOption(c)
		}
	}

	return c
}

var (
	defaultMu        sync.RWMutex
	defaultContainer = New()
)

// Default returns the process-wide default container used by the
// package-level Load and Inject functions.
func Default() *Container {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultContainer
}

// SetDefault replaces the process-wide default container. This is
// similar to slog.SetDefault. Passing nil is a no-op.
func SetDefault(c *Container) {
	if c == nil {
		return
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultContainer = c
}

// ID returns the container's unique ID, used in log attributes.
func (c *Container) ID() string {
	return c.id
}

// Groups returns a copy of the active-groups allow-list, or nil when
// no load has fixed one.
func (c *Container) Groups() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.groups)
}

// setGroups fixes the allow-list. Only the first non-empty value ever
// observed takes effect; later values are ignored so the list stays
// stable for the process.
func (c *Container) setGroups(groups []string) {
	if len(groups) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.groups) != 0 {
		return
	}

	c.groups = slices.Clone(groups)
}

// Namespaces returns the names of all namespaces that have been
// registered into, in no particular order.
func (c *Container) Namespaces() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.namespaces))
	for name := range c.namespaces {
		names = append(names, name)
	}

	return names
}

// register indexes inj into the named namespace, creating the
// namespace on first use.
func (c *Container) register(namespace string, inj *Injectable, class reflect.Type, bindings []reflect.Type, qualifier string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.namespaceLocked(namespace).register(inj, class, bindings, qualifier)
}

func (c *Container) namespaceLocked(name string) *Namespace {
	ns, ok := c.namespaces[name]
	if !ok {
		ns = newNamespace()
		c.namespaces[name] = ns
	}

	return ns
}

// Lookup returns every record registered under key in the named
// namespace. A missing namespace yields an empty result, never an
// error. A completely unpopulated container additionally logs a
// warning, since the caller has almost certainly skipped Load.
func (c *Container) Lookup(key DependencyKey, namespace string) []*Injectable {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.namespaces) == 0 {
		c.logger.Warn("injection container is empty; make sure Load is called before any injections are made",
			slog.String("container", c.id),
			slog.String("dependency", key.String()))
	}

	ns, ok := c.namespaces[namespace]
	if !ok {
		return nil
	}

	return ns.lookup(key)
}

// Reset clears all namespaces, the active-groups list, and the loaded
// catalog bookkeeping. It exists for tests and administrative tooling;
// steady-state code must never call it.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.namespaces = make(map[string]*Namespace)
	c.groups = nil
	c.loaded = make(map[string]struct{})
}
