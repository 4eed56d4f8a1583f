package engine

import "fmt"

// Device is the engine's handle to an opened playback device
type Device struct {
	ID   uint32
	Name string
}

// String implements fmt.Stringer
func (d Device) String() string {
	return fmt.Sprintf("device#%d(%s)", d.ID, d.Name)
}

// Source is the engine's handle to a playable source
type Source struct {
	ID uint32
	// Buffer names the buffer the source was last playing, if any
	Buffer string
}

// String implements fmt.Stringer
func (s Source) String() string {
	return fmt.Sprintf("source#%d", s.ID)
}
