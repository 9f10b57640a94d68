package node

// Mapping represents string keyed nodes preserving insertion order
type Mapping struct {
	keys   []string
	values map[string]Node
}

// NewMapping creates a mapping
func NewMapping(capacity int) *Mapping {
	return &Mapping{keys: make([]string, 0, capacity), values: make(map[string]Node, capacity)}
}

// Kind returns KindMapping
func (m *Mapping) Kind() Kind { return KindMapping }

func (m *Mapping) node() {}

// Put sets key node, an existing key keeps its position
func (m *Mapping) Put(key string, n Node) {
	if m.values == nil {
		m.values = make(map[string]Node)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = n
}

// Get returns key node
func (m *Mapping) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.values[key]
	return n, ok
}

// Keys returns keys in insertion order
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns number of entries
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false
func (m *Mapping) Range(fn func(key string, n Node) bool) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		if !fn(key, m.values[key]) {
			return
		}
	}
}

// Interface returns map[string]interface{} representation
func (m *Mapping) Interface() interface{} {
	result := make(map[string]interface{}, m.Len())
	m.Range(func(key string, n Node) bool {
		if n == nil {
			result[key] = nil
			return true
		}
		result[key] = n.Interface()
		return true
	})
	return result
}
