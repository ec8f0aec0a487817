package options

// Lister exposes the display names of a read-only lookup table such as
// departments or roles.
type Lister interface {
	Names() []string
}

// ListerFunc adapts a function into a Lister.
type ListerFunc func() []string

// Names calls the underlying function.
func (fn ListerFunc) Names() []string {
	return fn()
}

// Lookup resolves option sources from injected lookup tables instead of
// process-wide fixed arrays.
type Lookup struct {
	tables map[string]Lister
}

// NewLookup binds source ids to lookup tables. The map is copied.
func NewLookup(tables map[string]Lister) *Lookup {
	clone := make(map[string]Lister, len(tables))
	for id, table := range tables {
		if table != nil {
			clone[id] = table
		}
	}
	return &Lookup{tables: clone}
}

// Resolve returns the table's names, or an empty slice for unknown ids.
func (l *Lookup) Resolve(sourceID string) []string {
	if l == nil {
		return []string{}
	}
	table, ok := l.tables[sourceID]
	if !ok {
		return []string{}
	}
	return append([]string{}, table.Names()...)
}
