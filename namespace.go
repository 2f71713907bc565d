package injectable

import "reflect"

// recordSet is a set of injectable records keyed by identity.
type recordSet map[*Injectable]struct{}

// insert adds inj to the set. Identity is the record itself: distinct
// registrations never collapse, however similar their fields, while a
// record indexed under many keys still appears once per key. Replayed
// catalogs are caught upstream by the container's load bookkeeping.
func (s recordSet) insert(inj *Injectable) {
	s[inj] = struct{}{}
}

// records returns the set contents as a slice. Order is unspecified.
func (s recordSet) records() []*Injectable {
	if len(s) == 0 {
		return nil
	}

	out := make([]*Injectable, 0, len(s))
	for inj := range s {
		out = append(out, inj)
	}

	return out
}

// Namespace holds the two independent indices of one registry
// partition: by concrete type identity and by string qualifier.
// Namespaces are created lazily on first registration and live for the
// rest of the process.
type Namespace struct {
	classRegistry     map[reflect.Type]recordSet
	qualifierRegistry map[string]recordSet
}

func newNamespace() *Namespace {
	return &Namespace{
		classRegistry:     make(map[reflect.Type]recordSet),
		qualifierRegistry: make(map[string]recordSet),
	}
}

// register indexes inj under every provided key: its class type, each
// additional binding type, and the qualifier when present.
func (n *Namespace) register(inj *Injectable, class reflect.Type, bindings []reflect.Type, qualifier string) {
	if class != nil {
		n.registerClass(inj, class)
	}

	for _, b := range bindings {
		n.registerClass(inj, b)
	}

	if qualifier != "" {
		set, ok := n.qualifierRegistry[qualifier]
		if !ok {
			set = make(recordSet)
			n.qualifierRegistry[qualifier] = set
		}

		set.insert(inj)
	}
}

func (n *Namespace) registerClass(inj *Injectable, class reflect.Type) {
	set, ok := n.classRegistry[class]
	if !ok {
		set = make(recordSet)
		n.classRegistry[class] = set
	}

	set.insert(inj)
}

// lookup probes the index selected by the key's kind. A miss returns
// nil rather than an error.
func (n *Namespace) lookup(key DependencyKey) []*Injectable {
	if key.kind == KindQualifier {
		return n.qualifierRegistry[key.qualifier].records()
	}

	return n.classRegistry[key.class].records()
}
