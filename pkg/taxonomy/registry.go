package taxonomy

import (
	"sort"
	"strings"
)

// Taxonomy is the immutable, loaded registry of type definitions. It is
// safe to share read-only across goroutines once Load returns.
type Taxonomy struct {
	byKey    map[string]*TypeDefinition
	ordered  []*TypeDefinition
	byDomain map[Domain][]*TypeDefinition
}

// Load reads path (a single document or a directory of documents),
// validates every definition, and builds the lookup indexes. Duplicate
// keys across documents are fatal, matching spec.md §4.A.
func Load(path string) (*Taxonomy, error) {
	defs, err := loadDocuments(path)
	if err != nil {
		return nil, err
	}

	t := &Taxonomy{
		byKey:    make(map[string]*TypeDefinition, len(defs)),
		byDomain: make(map[Domain][]*TypeDefinition),
	}

	for _, d := range defs {
		key := d.Key()
		if _, exists := t.byKey[key]; exists {
			return nil, newError(KindSchema, key, "duplicate type key across documents", nil)
		}
		if len(d.Tier[0]) > 0 && !validBroadTypes[BroadType(d.Tier[0])] {
			return nil, newError(KindSchema, key, "tier[0] is not a known broad type", nil)
		}
		t.byKey[key] = d
		t.ordered = append(t.ordered, d)
		t.byDomain[d.Domain] = append(t.byDomain[d.Domain], d)
	}

	sort.Slice(t.ordered, func(i, j int) bool { return t.ordered[i].Key() < t.ordered[j].Key() })
	for domain := range t.byDomain {
		defs := t.byDomain[domain]
		sort.Slice(defs, func(i, j int) bool { return defs[i].Key() < defs[j].Key() })
	}

	return t, nil
}

// Definitions returns the ordered (by key) view of every loaded type.
func (t *Taxonomy) Definitions() []*TypeDefinition {
	return t.ordered
}

// Get performs an exact 3-level key lookup.
func (t *Taxonomy) Get(key string) (*TypeDefinition, error) {
	def, ok := t.byKey[key]
	if !ok {
		return nil, newError(KindNotFound, key, "no type definition for key", nil)
	}
	return def, nil
}

// GetLocalized parses a 4-level "domain.category.type.LOCALE" label,
// resolves the underlying 3-level definition, and verifies the locale
// is declared on it.
func (t *Taxonomy) GetLocalized(keyWithLocale string) (*TypeDefinition, Locale, error) {
	parts := strings.Split(keyWithLocale, ".")
	if len(parts) != 4 {
		return nil, "", newError(KindParse, keyWithLocale, "localized key must have exactly 4 dot-separated segments", nil)
	}
	baseKey := strings.Join(parts[:3], ".")
	locale := Locale(parts[3])

	def, err := t.Get(baseKey)
	if err != nil {
		return nil, "", err
	}
	if !def.HasLocale(locale) {
		return nil, "", newError(KindNotFound, keyWithLocale, "locale not declared for this type", nil)
	}
	return def, locale, nil
}

// ByDomain returns every definition in the given domain, ordered by key.
func (t *Taxonomy) ByDomain(domain Domain) []*TypeDefinition {
	return t.byDomain[domain]
}

// ByTier returns every definition whose tier is exactly (broad, category).
func (t *Taxonomy) ByTier(broad, category string) []*TypeDefinition {
	var out []*TypeDefinition
	for _, d := range t.ordered {
		if d.Tier[0] == broad && d.Tier[1] == category {
			out = append(out, d)
		}
	}
	return out
}

// ByPriority returns every definition with release_priority >= n.
func (t *Taxonomy) ByPriority(n int) []*TypeDefinition {
	var out []*TypeDefinition
	for _, d := range t.ordered {
		if d.ReleasePriority >= n {
			out = append(out, d)
		}
	}
	return out
}

// TierNode is one level of the materialized Tier-0/Tier-1/Tier-2 tree.
// DirectResolve is set on a node with exactly one child, and always on
// leaf nodes, meaning a classifier need not discriminate further at this step.
type TierNode struct {
	Name          string
	Children      []*TierNode
	Leaf          *TypeDefinition
	DirectResolve bool
}

// TierGraph materializes the broad-type/category/concrete-type tree
// from every definition's Tier field, marking single-member levels as
// direct-resolve.
func (t *Taxonomy) TierGraph() []*TierNode {
	type catKey struct{ broad, category string }
	broadOrder := []string{}
	broadNodes := map[string]*TierNode{}
	catOrder := map[string][]string{}
	catNodes := map[catKey]*TierNode{}

	for _, d := range t.ordered {
		broad := d.Tier[0]
		if broad == "" {
			continue
		}
		category := d.Tier[1]

		bn, ok := broadNodes[broad]
		if !ok {
			bn = &TierNode{Name: broad}
			broadNodes[broad] = bn
			broadOrder = append(broadOrder, broad)
		}

		ck := catKey{broad, category}
		cn, ok := catNodes[ck]
		if !ok {
			cn = &TierNode{Name: category}
			catNodes[ck] = cn
			catOrder[broad] = append(catOrder[broad], category)
			bn.Children = append(bn.Children, cn)
		}

		cn.Children = append(cn.Children, &TierNode{Name: d.Key(), Leaf: d, DirectResolve: true})
	}

	var roots []*TierNode
	for _, broad := range broadOrder {
		bn := broadNodes[broad]
		bn.DirectResolve = len(bn.Children) == 1
		for _, cn := range bn.Children {
			cn.DirectResolve = len(cn.Children) == 1
		}
		roots = append(roots, bn)
	}
	return roots
}

// ExpandLocales performs the Cartesian expansion of definitions into
// 4-level labels: every declared locale of every definition whose
// release_priority is >= priorityFloor.
func ExpandLocales(defs []*TypeDefinition, priorityFloor int) []string {
	var out []string
	for _, d := range defs {
		if d.ReleasePriority < priorityFloor {
			continue
		}
		for _, loc := range d.Locales {
			out = append(out, d.LocaleKey(loc))
		}
	}
	sort.Strings(out)
	return out
}
