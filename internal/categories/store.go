package categories

import (
	"log/slog"
	"sort"
	"strings"
)

// Store provides in-memory lookup over the persisted vendor→category
// mapping. Persistence failures never reach callers: a failed load degrades
// to an empty mapping and a failed save keeps the in-memory state live for
// the session; both are logged.
//
// Lookup order is deterministic: lexicographic over the keys present at
// load time, then insertion order for vendors added during the session.
type Store struct {
	backend  Backend
	keys     []string
	values   map[string]string
	defaults []string
	notifier *Notifier
}

// NewStore loads the persisted mapping from backend. extraDefaults extend
// the built-in default category list.
func NewStore(backend Backend, extraDefaults ...string) *Store {
	mapping, err := backend.Load()
	if err != nil {
		slog.Warn("loading category mapping, starting empty", "err", err)
		mapping = map[string]string{}
	}

	keys := make([]string, 0, len(mapping))
	for vendor := range mapping {
		keys = append(keys, vendor)
	}
	sort.Strings(keys)

	return &Store{
		backend:  backend,
		keys:     keys,
		values:   mapping,
		defaults: append(DefaultCategories(), extraDefaults...),
		notifier: NewNotifier(),
	}
}

// Lookup resolves a transaction description to a category. Exact match on
// the full description wins; otherwise the first entry (in store order)
// whose vendor key is a case-insensitive substring of the description, or
// vice versa, is returned.
func (s *Store) Lookup(description string) (string, bool) {
	if category, ok := s.values[description]; ok {
		return category, true
	}

	lowerDesc := strings.ToLower(description)
	for _, vendor := range s.keys {
		lowerVendor := strings.ToLower(vendor)
		if strings.Contains(lowerDesc, lowerVendor) || strings.Contains(lowerVendor, lowerDesc) {
			return s.values[vendor], true
		}
	}
	return "", false
}

// Update upserts one vendor→category entry and persists immediately. A
// persistence failure is logged and swallowed; the in-memory entry stays.
func (s *Store) Update(vendor, category string) {
	if _, exists := s.values[vendor]; !exists {
		s.keys = append(s.keys, vendor)
	}
	s.values[vendor] = category

	if err := s.backend.Save(s.values); err != nil {
		slog.Warn("saving category mapping", "vendor", vendor, "err", err)
	}
	s.notifier.Notify()
}

// AllCategories returns the union of the default category list and every
// distinct mapping value, deduplicated and sorted ascending.
func (s *Store) AllCategories() []string {
	seen := map[string]bool{}
	var all []string
	for _, c := range s.defaults {
		if !seen[c] {
			seen[c] = true
			all = append(all, c)
		}
	}
	for _, vendor := range s.keys {
		c := s.values[vendor]
		if !seen[c] {
			seen[c] = true
			all = append(all, c)
		}
	}
	sort.Strings(all)
	return all
}

// Mapping returns a copy of the current vendor→category entries.
func (s *Store) Mapping() map[string]string {
	out := make(map[string]string, len(s.values))
	for vendor, category := range s.values {
		out[vendor] = category
	}
	return out
}

// Len returns the number of mapping entries.
func (s *Store) Len() int {
	return len(s.keys)
}

// Subscribe registers fn to run after every Update. The returned function
// cancels the subscription.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	return s.notifier.Subscribe(fn)
}
