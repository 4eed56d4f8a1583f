// Package tables holds the process-wide name tables for the engine's
// enumerations and presets, plus the small structural converters used when
// building engine values.
//
// All tables are built during package initialization and are never modified
// afterwards, so lookups are safe from any goroutine without locking.
package tables

import (
	"fmt"
	"slices"
)

type entry[V comparable] struct {
	name  string
	value V
}

// enumTable maps names to engine enumeration values in both directions
type enumTable[V comparable] struct {
	byName  map[string]V
	byValue map[V]string
	names   []string
}

func newEnumTable[V comparable](kind string, entries ...entry[V]) *enumTable[V] {
	t := &enumTable[V]{
		byName:  make(map[string]V, len(entries)),
		byValue: make(map[V]string, len(entries)),
		names:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.byName[e.name]; dup {
			panic(fmt.Sprintf("tables: duplicate %s name %q", kind, e.name))
		}
		if _, dup := t.byValue[e.value]; dup {
			panic(fmt.Sprintf("tables: duplicate %s value for %q", kind, e.name))
		}
		t.byName[e.name] = e.value
		t.byValue[e.value] = e.name
		t.names = append(t.names, e.name)
	}
	slices.Sort(t.names)
	return t
}

func (t *enumTable[V]) value(name string) (V, bool) {
	v, ok := t.byName[name]
	return v, ok
}

func (t *enumTable[V]) name(v V) (string, bool) {
	n, ok := t.byValue[v]
	return n, ok
}

func (t *enumTable[V]) sortedNames() []string {
	return slices.Clone(t.names)
}
