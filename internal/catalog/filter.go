package catalog

import "github.com/saladbowl/saladbowl-backend/internal/types"

// Filter narrows the public catalog. Zero-valued (or "all") fields impose no
// constraint; supplied fields combine with AND semantics.
type Filter struct {
	AgeLevel    types.AgeLevel
	ContentType types.ContentType
	Duration    types.DurationBucket
}

// Select returns the published modules satisfying every supplied filter, in
// catalog order. Pure: the input slice is never mutated.
func Select(modules []types.Module, f Filter) []types.Module {
	out := []types.Module{}
	for _, m := range modules {
		if !m.IsPublished {
			continue
		}
		if f.AgeLevel != "" && f.AgeLevel != "all" && m.AgeLevel != f.AgeLevel {
			continue
		}
		if f.ContentType != "" && f.ContentType != "all" && m.ContentType != f.ContentType {
			continue
		}
		if !f.Duration.Matches(m.DurationMinutes) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// GroupByType buckets modules by content type, preserving input order within
// each bucket. Types with no modules are omitted.
func GroupByType(modules []types.Module) map[types.ContentType][]types.Module {
	groups := map[types.ContentType][]types.Module{}
	for _, m := range modules {
		groups[m.ContentType] = append(groups[m.ContentType], m)
	}
	return groups
}
