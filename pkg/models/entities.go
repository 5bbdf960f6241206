package models

// EntityPair is a single (type, entity) occurrence.
type EntityPair struct {
	Type   string
	Entity string
}

// EntityGroup maps an entity type to the entities of that type, in the
// order they first appeared in the tagged text. Types keep insertion order
// too. Duplicates are preserved. The zero value is an empty, usable group.
//
// An EntityGroup is built per request and is not safe for concurrent use.
type EntityGroup struct {
	types    []string
	entities map[string][]string
}

// NewEntityGroup returns an empty EntityGroup.
func NewEntityGroup() *EntityGroup {
	return &EntityGroup{}
}

// Add appends entity to the list for entityType. Empty types or entities
// are dropped so every stored type has at least one non-empty entity.
func (g *EntityGroup) Add(entityType, entity string) {
	if entityType == "" || entity == "" {
		return
	}
	if g.entities == nil {
		g.entities = make(map[string][]string)
	}
	list, ok := g.entities[entityType]
	if !ok {
		g.types = append(g.types, entityType)
	}
	g.entities[entityType] = append(list, entity)
}

// Types returns the entity types in order of first appearance.
func (g *EntityGroup) Types() []string {
	if g == nil {
		return nil
	}
	return g.types
}

// Entities returns the entities recorded for entityType.
func (g *EntityGroup) Entities(entityType string) []string {
	if g == nil {
		return nil
	}
	return g.entities[entityType]
}

// Len returns the number of distinct entity types.
func (g *EntityGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.types)
}

// IsEmpty reports whether the group holds no entities.
func (g *EntityGroup) IsEmpty() bool {
	return g.Len() == 0
}

// Pairs flattens the group into (type, entity) pairs, grouped by type.
func (g *EntityGroup) Pairs() []EntityPair {
	if g.IsEmpty() {
		return nil
	}
	var pairs []EntityPair
	for _, t := range g.types {
		for _, e := range g.entities[t] {
			pairs = append(pairs, EntityPair{Type: t, Entity: e})
		}
	}
	return pairs
}
