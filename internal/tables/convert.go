package tables

import "quaver.click/internal/engine"

var contextAttributes = newEnumTable("context attribute",
	entry[int32]{"frequency", 0x1007},
	entry[int32]{"refresh", 0x1008},
	entry[int32]{"sync", 0x1009},
	entry[int32]{"mono sources", 0x1010},
	entry[int32]{"stereo sources", 0x1011},
	entry[int32]{"hrtf", 0x1992},
	entry[int32]{"hrtf id", 0x1996},
	entry[int32]{"output limiter", 0x199A},
	entry[int32]{"max auxiliary sends", 0x20003},
)

// ContextAttribute looks up the engine key of a context creation attribute
func ContextAttribute(name string) (int32, bool) {
	return contextAttributes.value(name)
}

// ContextAttributeNames returns all context attribute names in sorted order
func ContextAttributeNames() []string {
	return contextAttributes.sortedNames()
}

// MakeAttributes converts key/value pairs into an engine attribute list,
// terminated by exactly one AttributesEnd.
func MakeAttributes(pairs [][2]int32) []engine.AttributePair {
	attrs := make([]engine.AttributePair, 0, len(pairs)+1)
	for _, p := range pairs {
		attrs = append(attrs, engine.AttributePair{Attribute: p[0], Value: p[1]})
	}
	return append(attrs, engine.AttributesEnd())
}

// MakeFilter builds filter parameters from a gain triple
func MakeFilter(gain, gainHF, gainLF float32) engine.FilterParams {
	return engine.FilterParams{Gain: gain, GainHF: gainHF, GainLF: gainLF}
}

// FromVector3 copies a vector into a fresh three element slice
func FromVector3(v engine.Vector3) []float32 {
	return []float32{v[0], v[1], v[2]}
}

// ToVector3 builds a vector from the first three elements of s.
// Passing fewer than three elements panics.
func ToVector3(s []float32) engine.Vector3 {
	return engine.Vector3{s[0], s[1], s[2]}
}
