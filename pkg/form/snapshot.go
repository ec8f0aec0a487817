package form

import (
	"bytes"
	"encoding/json"

	"github.com/mohae/deepcopy"
)

// Snapshot is the immutable set of values captured by a successful Submit.
// Iteration order follows the schema.
type Snapshot struct {
	names  []string
	values map[string]any
}

func newSnapshot(names []string, values map[string]any) Snapshot {
	return Snapshot{
		names:  append([]string(nil), names...),
		values: values,
	}
}

// Names lists the captured control names in schema order.
func (s Snapshot) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of captured values.
func (s Snapshot) Len() int {
	return len(s.names)
}

// Get returns a copy of the value captured for name.
func (s Snapshot) Get(name string) (any, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return deepCopy(v), true
}

// Map returns a mutable copy of the captured values.
func (s Snapshot) Map() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = deepCopy(v)
	}
	return out
}

// MarshalJSON encodes the snapshot as an object whose keys keep schema order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// deepCopy isolates stored values from callers on the way in and out.
func deepCopy(value any) any {
	if value == nil {
		return nil
	}
	return deepcopy.Copy(value)
}
