// Package element provides the chemical element domain and the two
// classifications every element carries: its series and its physical state.
package element

// Default classification ids substituted when an element references a series
// or state that does not exist.
const (
	DefaultSeriesID int64 = 10
	DefaultStateID  int64 = 5
)

// Valid id ranges for the classification tables.
const (
	MinStateID  int64 = 1
	MaxStateID  int64 = 5
	MinSeriesID int64 = 1
	MaxSeriesID int64 = 10
)

// State is the physical state classification of an element. Immutable value object.
type State struct {
	id   int64
	name string
}

// NewState creates a State.
func NewState(id int64, name string) State {
	return State{id: id, name: name}
}

// ID returns the state key.
func (s State) ID() int64 { return s.id }

// Name returns the state name.
func (s State) Name() string { return s.name }

// WithName returns a copy of the state with a new name.
func (s State) WithName(name string) State {
	s.name = name
	return s
}

// ValidStateID reports whether id is inside the state key range.
func ValidStateID(id int64) bool {
	return id >= MinStateID && id <= MaxStateID
}

// Series is the classification grouping of an element. Immutable value object.
type Series struct {
	id   int64
	name string
}

// NewSeries creates a Series.
func NewSeries(id int64, name string) Series {
	return Series{id: id, name: name}
}

// ID returns the series key.
func (s Series) ID() int64 { return s.id }

// Name returns the series name.
func (s Series) Name() string { return s.name }

// ValidSeriesID reports whether id is inside the series key range.
func ValidSeriesID(id int64) bool {
	return id >= MinSeriesID && id <= MaxSeriesID
}
