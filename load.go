package injectable

import (
	"path/filepath"
	"runtime"
	"strings"
)

// LoadOption configures a Load call.
type LoadOption interface {
	applyLoadOption(*loadOptions)
}

type loadOptions struct {
	searchPath string
	namespace  string
	groups     []string
	catalogs   []*Catalog
}

type loadOptionFunc func(*loadOptions)

func (f loadOptionFunc) applyLoadOption(o *loadOptions) {
	f(o)
}

// SearchPath restricts the load to catalogs declared under the given
// directory. A relative path is resolved against the calling file's
// directory; when the option is absent the calling file's directory
// itself is the search path.
func SearchPath(path string) LoadOption {
	return loadOptionFunc(func(o *loadOptions) {
		o.searchPath = path
	})
}

// WithDefaultNamespace sets the namespace for registrations that do
// not request one explicitly. Defaults to DefaultNamespace.
func WithDefaultNamespace(namespace string) LoadOption {
	return loadOptionFunc(func(o *loadOptions) {
		o.namespace = namespace
	})
}

// WithGroups supplies the active-groups allow-list. Only the first
// load that supplies a non-empty list fixes it for the container;
// later values are ignored.
func WithGroups(groups ...string) LoadOption {
	return loadOptionFunc(func(o *loadOptions) {
		o.groups = groups
	})
}

// WithCatalogs loads exactly the given catalogs instead of discovering
// announced ones under the search path. Intended for tests and for
// applications that prefer explicit wiring over init-time
// announcement.
func WithCatalogs(catalogs ...*Catalog) LoadOption {
	return loadOptionFunc(func(o *loadOptions) {
		o.catalogs = append(o.catalogs, catalogs...)
	})
}

// Load populates the default container. See Container.Load.
func Load(opts ...LoadOption) error {
	return Default().load(callerDir(2), opts)
}

// Load runs catalogs into the container: every announced catalog whose
// declaring directory sits under the search path, or exactly the
// catalogs given via WithCatalogs. A catalog already loaded into this
// container is skipped, so repeated Load calls never register a unit
// twice. The first call supplying WithGroups fixes the container's
// active-groups allow-list.
//
// Load calls must be serialized with respect to each other and must
// happen before any resolution that depends on their registrations.
func (c *Container) Load(opts ...LoadOption) error {
	return c.load(callerDir(2), opts)
}

func (c *Container) load(callerDir string, opts []LoadOption) error {
	o := &loadOptions{namespace: DefaultNamespace}
	for _, opt := range opts {
		if opt != nil {
			opt.applyLoadOption(o)
		}
	}

	c.setGroups(o.groups)

	// The default namespace exists after a load even when nothing
	// registered into it.
	c.mu.Lock()
	c.namespaceLocked(o.namespace)
	c.mu.Unlock()

	catalogs := o.catalogs
	if catalogs == nil {
		searchPath := resolveSearchPath(o.searchPath, callerDir)
		for _, cat := range announcedCatalogs() {
			if underDir(cat.dir, searchPath) {
				catalogs = append(catalogs, cat)
			}
		}
	}

	for _, cat := range catalogs {
		if cat == nil {
			return ErrNilCatalog
		}

		if err := c.runCatalog(cat, o.namespace); err != nil {
			return err
		}
	}

	return nil
}

func (c *Container) runCatalog(cat *Catalog, defaultNamespace string) error {
	c.mu.RLock()
	_, done := c.loaded[cat.key()]
	c.mu.RUnlock()

	if done {
		return nil
	}

	if err := cat.apply(c, defaultNamespace); err != nil {
		return err
	}

	c.mu.Lock()
	c.loaded[cat.key()] = struct{}{}
	c.mu.Unlock()

	return nil
}

// callerDir returns the directory of the file at the given call depth.
func callerDir(skip int) string {
	if _, file, _, ok := runtime.Caller(skip); ok {
		return filepath.Dir(file)
	}

	return ""
}

func resolveSearchPath(searchPath, callerDir string) string {
	switch {
	case searchPath == "":
		return callerDir
	case filepath.IsAbs(searchPath):
		return filepath.Clean(searchPath)
	default:
		return filepath.Join(callerDir, searchPath)
	}
}

// underDir reports whether dir is root itself or a descendant of it.
func underDir(dir, root string) bool {
	if root == "" {
		return false
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
