package model

import (
	"github.com/specialistvlad/ramodel/internal/relation"
	"github.com/specialistvlad/ramodel/internal/table"
)

// AttributeDF is the attribute holding a model's degrees of freedom.
const AttributeDF = "df"

// Unset is returned by Attribute for names that have no value.
const Unset = -1.0

// growthFactor is the factor by which relation storage grows when full.
const growthFactor = 2

// Model is an ordered, canonically sorted set of relations. The relations are
// borrowed: they belong to the relation store and are never modified here.
type Model struct {
	// ID is bookkeeping for callers such as a model cache or search driver.
	ID int

	relations  []*relation.Relation
	attributes map[string]float64
	fitTable   *table.Table
	structure  *StructureMatrix

	printName, inverseName           string
	printNameValid, inverseNameValid bool
}

// New creates an empty model with room for capacity relations.
func New(capacity int) *Model {
	if capacity < 0 {
		capacity = 0
	}
	return &Model{
		relations:  make([]*relation.Relation, 0, capacity),
		attributes: make(map[string]float64),
	}
}

// RelationCount returns the number of relations.
func (m *Model) RelationCount() int { return len(m.relations) }

// Relation returns the relation at index i, or false if i is out of range.
func (m *Model) Relation(i int) (*relation.Relation, bool) {
	if i < 0 || i >= len(m.relations) {
		return nil, false
	}
	return m.relations[i], true
}

// Relations returns a copy of the relation list in canonical order.
func (m *Model) Relations() []*relation.Relation {
	out := make([]*relation.Relation, len(m.relations))
	copy(out, m.relations)
	return out
}

// CopyRelations adds every relation of src to m, without normalization,
// except those at positions skip1 and skip2. Pass -1 to skip nothing.
func (m *Model) CopyRelations(src *Model, skip1, skip2 int) {
	for i, r := range src.relations {
		if i == skip1 || i == skip2 {
			continue
		}
		m.insert(r)
	}
}

// UncoveredVariables returns the catalog indices that no relation mentions.
func (m *Model) UncoveredVariables() []int {
	if len(m.relations) == 0 {
		return nil
	}
	vars := m.relations[0].Variables()
	covered := make([]bool, vars.Len())
	for _, r := range m.relations {
		for _, v := range r.Indices() {
			covered[v] = true
		}
	}
	var out []int
	for i, c := range covered {
		if !c {
			out = append(out, i)
		}
	}
	return out
}

// IsStateBased reports whether any relation is state-based.
func (m *Model) IsStateBased() bool {
	for _, r := range m.relations {
		if r.IsStateBased() {
			return true
		}
	}
	return false
}

// SetAttribute stores a named value.
func (m *Model) SetAttribute(name string, value float64) {
	m.attributes[name] = value
}

// Attribute returns a named value, or Unset.
func (m *Model) Attribute(name string) float64 {
	if v, ok := m.attributes[name]; ok {
		return v
	}
	return Unset
}

// FitTable returns the fitted table, or nil if none has been set.
func (m *Model) FitTable() *table.Table { return m.fitTable }

// SetFitTable hands ownership of t to the model.
func (m *Model) SetFitTable(t *table.Table) { m.fitTable = t }

// DeleteFitTable drops the fitted table.
func (m *Model) DeleteFitTable() { m.fitTable = nil }

// Release drops every structure the model owns. The relations stay intact
// for their store.
func (m *Model) Release() {
	m.fitTable = nil
	m.structure = nil
	m.attributes = make(map[string]float64)
	m.printNameValid, m.inverseNameValid = false, false
}

// Size returns the approximate memory footprint of the model in bytes.
func (m *Model) Size() int64 {
	size := int64(128 + 8*cap(m.relations) + 24*len(m.attributes))
	if m.fitTable != nil {
		size += m.fitTable.Size()
	}
	if m.structure != nil {
		size += int64(m.structure.TotalConstraints * m.structure.StateSpaceSize)
	}
	return size
}

// invalidate drops all derived state after the relation set changed.
func (m *Model) invalidate() {
	m.printNameValid, m.inverseNameValid = false, false
	m.printName, m.inverseName = "", ""
	m.structure = nil
	m.fitTable = nil
	m.attributes = make(map[string]float64)
}
