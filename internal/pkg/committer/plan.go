package committer

import "cloud.google.com/go/spanner"

// Plan is an ordered list of mutations plus the optimistic version checks
// that must hold, inside the same transaction, before they are buffered.
type Plan struct {
	mutations    []*spanner.Mutation
	expectations []Expectation
}

// Expectation requires Column of the row at Key in Table to equal Version.
type Expectation struct {
	Table   string
	Key     spanner.Key
	Column  string
	Version int64
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddAll appends every non-nil mutation in order.
func (p *Plan) AddAll(ms []*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

// ExpectVersion makes the commit fail with ErrVersionConflict unless the row's
// version column still holds version.
func (p *Plan) ExpectVersion(table string, key spanner.Key, column string, version int64) {
	p.expectations = append(p.expectations, Expectation{Table: table, Key: key, Column: column, Version: version})
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

func (p *Plan) Expectations() []Expectation {
	return p.expectations
}
