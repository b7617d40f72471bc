package memory

import (
	"maps"
	"slices"
)

// table keeps rows in insertion order with keyed lookup. Rows are never
// mutated after insertion: repositories store and hand out clones, so copying
// a table only needs new key and row containers.
type table[V any] struct {
	keys []string
	rows map[string]V
}

func newTable[V any]() table[V] {
	return table[V]{rows: make(map[string]V)}
}

func (t table[V]) get(key string) (V, bool) {
	v, ok := t.rows[key]
	return v, ok
}

func (t *table[V]) insert(key string, v V) bool {
	if _, ok := t.rows[key]; ok {
		return false
	}
	t.keys = append(t.keys, key)
	t.rows[key] = v
	return true
}

func (t *table[V]) replace(key string, v V) bool {
	if _, ok := t.rows[key]; !ok {
		return false
	}
	t.rows[key] = v
	return true
}

func (t *table[V]) remove(key string) bool {
	if _, ok := t.rows[key]; !ok {
		return false
	}
	delete(t.rows, key)
	if i := slices.Index(t.keys, key); i >= 0 {
		t.keys = slices.Delete(t.keys, i, i+1)
	}
	return true
}

func (t table[V]) all() []V {
	out := make([]V, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.rows[k])
	}
	return out
}

func (t table[V]) clone() table[V] {
	return table[V]{keys: slices.Clone(t.keys), rows: maps.Clone(t.rows)}
}
