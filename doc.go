// Package injectable is a dependency resolution engine: a process-wide
// registry of factories and values addressable by concrete type or by
// string qualifier, with group-based eligibility filtering and a
// primary-flag tie-break for ambiguous matches.
//
// # Overview
//
// Packages declare their injectables in catalogs and announce them
// from init functions. The application's bootstrap code calls Load
// once, after which any code may inject:
//
//	var Services = injectable.NewCatalog("services",
//	    injectable.Provide(NewDefaultProcessor, injectable.As(injectable.TypeOf[Processor]())),
//	    injectable.Provide(NewFastProcessor,
//	        injectable.As(injectable.TypeOf[Processor]()),
//	        injectable.InGroup("fast")),
//	)
//
//	func init() { injectable.RegisterCatalog(Services) }
//
//	func main() {
//	    if err := injectable.Load(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    p, err := injectable.Inject[Processor](injectable.FromGroup("fast"))
//	    ...
//	}
//
// # Namespaces
//
// Every registration and every injection happens inside a namespace.
// Namespaces isolate independent sets of injectables; both sides
// default to DefaultNamespace, so most applications never notice them.
//
// # Groups
//
// An injectable may carry a group label. Injections can require a
// group (FromGroup) or reject groups (ExcludingGroups), and a load may
// fix a container-wide allow-list (WithGroups) that every subsequent
// injection is filtered through. Ungrouped injectables are always
// eligible; an allow-list that matches nothing in a given candidate
// set deliberately leaves that set untouched, so enabling a group for
// one subsystem does not break unrelated lookups.
//
// # Disambiguation
//
// When a single-value injection matches several injectables, the one
// marked Primary wins. Zero or several primaries is an InjectionError;
// ambiguity is never resolved by an arbitrary pick. Multi-value
// injection (InjectMultiple) returns every eligible match and has no
// uniqueness requirement.
//
// # Concurrency
//
// Load calls mutate the container and must be serialized during
// bootstrap. Once loading is done, any number of goroutines may
// inject concurrently.
package injectable
