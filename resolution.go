package injectable

import "slices"

// Filter narrows candidates to the injectables eligible for the
// current injection. Two stages run in order:
//
//  1. The container's active-groups allow-list. When the list is empty,
//     or when no candidate belongs to any listed group, this stage is a
//     no-op: an allow-list that matches nothing in the candidate set
//     must not zero out unrelated lookups. Otherwise only ungrouped
//     candidates and members of listed groups survive.
//  2. The per-call selection: requiredGroup == "" accepts any group,
//     otherwise only exact members; candidates whose group appears in
//     excludeGroups are dropped either way.
//
// The result is a fresh slice; candidates is never mutated. Treat both
// as sets: element order carries no meaning.
func (c *Container) Filter(candidates []*Injectable, requiredGroup string, excludeGroups ...string) []*Injectable {
	matches := filterByContainerGroups(candidates, c.Groups())
	return filterByGroupAndExclude(matches, requiredGroup, excludeGroups)
}

func filterByContainerGroups(matches []*Injectable, containerGroups []string) []*Injectable {
	if len(containerGroups) == 0 || !anyInGroups(matches, containerGroups) {
		return matches
	}

	kept := make([]*Injectable, 0, len(matches))
	for _, inj := range matches {
		if !inj.Grouped() || slices.Contains(containerGroups, inj.group) {
			kept = append(kept, inj)
		}
	}

	return kept
}

func anyInGroups(matches []*Injectable, groups []string) bool {
	for _, inj := range matches {
		if inj.Grouped() && slices.Contains(groups, inj.group) {
			return true
		}
	}

	return false
}

func filterByGroupAndExclude(matches []*Injectable, group string, exclude []string) []*Injectable {
	kept := make([]*Injectable, 0, len(matches))
	for _, inj := range matches {
		if group != "" && inj.group != group {
			continue
		}

		if inj.Grouped() && slices.Contains(exclude, inj.group) {
			continue
		}

		kept = append(kept, inj)
	}

	return kept
}

// Resolve picks the single injectable a one-value injection binds to.
// A sole match wins outright, regardless of its primary flag. Among
// several matches, exactly one marked primary wins. Anything else is
// an InjectionError whose cause distinguishes the empty set, the
// missing primary, and the ambiguous primary.
func Resolve(key DependencyKey, matches []*Injectable) (*Injectable, error) {
	if len(matches) == 1 {
		return matches[0], nil
	}

	var primaries []*Injectable
	for _, inj := range matches {
		if inj.primary {
			primaries = append(primaries, inj)
		}
	}

	if len(primaries) == 1 {
		return primaries[0], nil
	}

	var cause error
	switch {
	case len(matches) == 0:
		cause = ErrNoMatches
	case len(primaries) == 0:
		cause = ErrNoPrimary
	default:
		cause = ErrAmbiguousPrimary
	}

	return nil, InjectionError{Key: key, Candidates: matches, Cause: cause}
}
