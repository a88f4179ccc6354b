package table

// Kind discriminates the variants of a converted [Value].
type Kind int

const (
	// KindScalar is a bare string value (a leaf record's value).
	KindScalar Kind = iota

	// KindList collects the values of repeated sibling terms.
	KindList

	// KindMapping is an ordered mapping of child term names to values.
	KindMapping
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Value is one converted mapping entry: a scalar, a list of values, or a
// nested mapping. Exactly one of Scalar, List, and Mapping is meaningful,
// selected by Kind.
type Value struct {
	Kind    Kind
	Scalar  string
	List    []Value
	Mapping *Mapping
}

// Mapping is an insertion-ordered string-keyed collection of values.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the mapping's keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// Get returns the value stored under key and whether it is present.
func (m *Mapping) Get(key string) (Value, bool) {
	value, ok := m.entries[key]

	return value, ok
}

// Set stores value under key, overwriting any existing entry. A new key is
// appended to the insertion order.
func (m *Mapping) Set(key string, value Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.entries[key] = value
}

// merge inserts value under key with multi-value semantics: the first
// occurrence stores the value directly, the second converts the entry into a
// two-element list, and further occurrences append. The three cases are an
// explicit match on the existing entry's kind, not control flow driven by
// lookup failure.
func (m *Mapping) merge(key string, value Value) {
	existing, ok := m.entries[key]
	if !ok {
		m.Set(key, value)

		return
	}

	switch existing.Kind {
	case KindList:
		existing.List = append(existing.List, value)
		m.entries[key] = existing

	case KindScalar, KindMapping:
		m.entries[key] = Value{
			Kind: KindList,
			List: []Value{existing, value},
		}
	}
}

// Convert recursively converts the subtree rooted at record into a [Value].
//
// A leaf record converts to the scalar of its value. An internal record
// converts to an ordered mapping keyed by child term names, merging repeated
// names into lists; a non-empty own value is additionally stored under the
// record's ValueName key, modeling records with both direct content and
// nested children.
func Convert(record *Record) Value {
	if len(record.Children) == 0 {
		return Value{Kind: KindScalar, Scalar: record.Value}
	}

	mapping := NewMapping()

	for _, child := range record.Children {
		mapping.merge(child.Term, Convert(child))
	}

	if record.Value != "" {
		mapping.Set(record.ValueName, Value{Kind: KindScalar, Scalar: record.Value})
	}

	return Value{Kind: KindMapping, Mapping: mapping}
}

// ToNative converts the value to plain Go types: string, []any, and
// map[string]any. Key order is not preserved; use the marshalers when order
// matters.
func (v Value) ToNative() any {
	switch v.Kind {
	case KindScalar:
		return v.Scalar

	case KindList:
		list := make([]any, len(v.List))
		for i, item := range v.List {
			list[i] = item.ToNative()
		}

		return list

	case KindMapping:
		native := make(map[string]any, v.Mapping.Len())
		for _, key := range v.Mapping.keys {
			native[key] = v.Mapping.entries[key].ToNative()
		}

		return native

	default:
		return nil
	}
}
