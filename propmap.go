package fxcss

// propertyMap is an insertion-ordered property-name → value map.
// Re-setting an existing key overwrites the value but keeps the key's
// original position, so rendered output stays deterministic.
type propertyMap struct {
	keys   []string
	values map[string]string
}

func newPropertyMap() *propertyMap {
	return &propertyMap{values: make(map[string]string)}
}

func (m *propertyMap) set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *propertyMap) get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *propertyMap) len() int {
	return len(m.keys)
}

// clone returns an independent copy; mutations to either map never
// affect the other.
func (m *propertyMap) clone() *propertyMap {
	c := &propertyMap{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]string, len(m.values)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}
