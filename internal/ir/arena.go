package ir

import (
	"fmt"

	"fortio.org/safecast"
)

// metadataArena is a generational slot store. Indices stay valid until
// the whole arena is reset; an index minted before the last reset fails
// to resolve instead of aliasing whatever record reuses its slot.
type metadataArena struct {
	slots []metadataSlot
	used  int
}

type metadataSlot struct {
	gen    uint32
	record Metadatum
}

// insert always succeeds and returns a handle for the stored record.
func (a *metadataArena) insert(md Metadatum) MetadataIndex {
	if a.used < len(a.slots) {
		// Reuse a slot freed by reset; its generation was already bumped.
		s := &a.slots[a.used]
		s.record = md
		idx := MetadataIndex{slot: mustSlotNum(a.used), gen: s.gen}
		a.used++
		return idx
	}
	slotNum := mustSlotNum(len(a.slots))
	a.slots = append(a.slots, metadataSlot{gen: 1, record: md})
	a.used = len(a.slots)
	return MetadataIndex{slot: slotNum, gen: 1}
}

// get resolves idx. It reports false for the zero index, for slots never
// handed out, and for generations that no longer match.
func (a *metadataArena) get(idx MetadataIndex) (Metadatum, bool) {
	if idx.gen == 0 || int(idx.slot) >= a.used {
		return Metadatum{}, false
	}
	s := a.slots[idx.slot]
	if s.gen != idx.gen {
		return Metadatum{}, false
	}
	return s.record, true
}

func (a *metadataArena) len() int { return a.used }

// reset drops every record and bumps the generation of each occupied
// slot, turning all outstanding indices stale.
func (a *metadataArena) reset() {
	for i := range a.slots[:a.used] {
		a.slots[i].gen++
		a.slots[i].record = Metadatum{}
	}
	a.used = 0
}

func mustSlotNum(n int) uint32 {
	slotNum, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("metadata arena overflow: %w", err))
	}
	return slotNum
}
