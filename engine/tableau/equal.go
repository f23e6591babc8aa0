package tableau

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"maps"

	"github.com/nathoo/agecore/types"
)

// Equal reports structural equality. Governments compare by name; the
// catalog is shared content and is not compared.
func (t Tableau) Equal(o Tableau) bool {
	if (t.gov == nil) != (o.gov == nil) {
		return false
	}
	if t.gov != nil && t.gov.Name != o.gov.Name {
		return false
	}
	return t.points == o.points &&
		t.actions == o.actions &&
		maps.Equal(t.buildings, o.buildings) &&
		maps.Equal(t.known, o.known)
}

// Hash returns an order-independent structural hash consistent with Equal.
func (t Tableau) Hash() uint64 {
	h := fnv.New64a()
	t.WriteHash(h)
	return h.Sum64()
}

// WriteHash writes the canonical encoding of t to h. Map keys are written
// in sorted order.
func (t Tableau) WriteHash(h hash.Hash64) {
	if t.gov != nil {
		writeString(h, t.gov.Name)
	}
	for _, name := range sortedKeys(t.buildings) {
		writeString(h, name)
		writeInt(h, t.buildings[name])
	}
	h.Write([]byte{0})
	for _, name := range sortedKeys(t.known) {
		writeString(h, name)
	}
	h.Write([]byte{0})
	for _, k := range types.AllPoints {
		writeInt(h, t.points.Get(k))
	}
	writeInt(h, t.actions)
}

func writeString(h hash.Hash64, s string) {
	writeInt(h, len(s))
	h.Write([]byte(s))
}

func writeInt(h hash.Hash64, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}
