// Package canary provides a liveness marker for explicitly released objects.
package canary

import "fmt"

// magic is an arbitrary value distinguishable from zeroed or reused memory.
const magic uint32 = 0xAABBCCDD

// Tag is the liveness marker. Embed it, conventionally as the last field, in
// any struct that has an explicit release operation. The zero value is "not
// live": asserting a Tag that was never initialized fails.
type Tag struct {
	v uint32
}

// Init marks the object live. Call exactly once, at the end of construction,
// after every other field is initialized.
func (t *Tag) Init() {
	t.v = magic
}

// Alive reports whether the tag currently holds the live marker.
func (t *Tag) Alive() bool {
	return t != nil && t.v == magic
}

// Assert panics if the receiver is nil or the object is not live. The what
// argument names the guarded type for the panic message.
func (t *Tag) Assert(what string) {
	if t == nil || t.v != magic {
		panic(fmt.Sprintf("canary: %s used after release (or never constructed)", what))
	}
}

// Clear marks the object released. Call exactly once, at the start of
// release, before any owned resources are dropped. Subsequent Assert calls
// fail.
func (t *Tag) Clear() {
	t.v = 0
}
