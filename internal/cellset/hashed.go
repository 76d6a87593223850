package cellset

import (
	"encoding/binary"
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/janpfeifer/droplet/internal/geom"
	"github.com/janpfeifer/droplet/internal/parameters"
	"github.com/pkg/errors"
	"math/bits"
)

func init() {
	Register("hashed", newHashedFactory)
}

// DefaultHashedCapacity is the default initial number of slots of the hashed implementation.
const DefaultHashedCapacity = 1024

// hashedSet is an open-addressing hash table with linear probing over the Morton keys of the cells.
// Slots hold key+1, so 0 marks an empty slot. The table doubles when it gets half full.
type hashedSet struct {
	bounds geom.Bounds
	slots  []uint64
	count  int
}

func newHashedFactory(bounds geom.Bounds, params parameters.Params) (Factory, error) {
	capacity, err := parameters.PopParamOr(params, "capacity", int64(DefaultHashedCapacity))
	if err != nil {
		return nil, err
	}
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, errors.Errorf("capacity must be in [1, %d], got %d", MaxCapacity, capacity)
	}
	if !bounds.Packable() {
		return nil, errors.Errorf("bounds %s too large for Morton keys (max %d cells per axis)",
			bounds, 1<<geom.MortonBits)
	}
	// Round up to a power of 2, so slots can be indexed with a mask.
	numSlots := 1 << bits.Len(uint(capacity-1))
	return func() Set {
		return &hashedSet{bounds: bounds, slots: make([]uint64, numSlots)}
	}, nil
}

func hashKey(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

// find returns the slot holding key, or the empty slot where it would be inserted.
func (s *hashedSet) find(key uint64) (slot int, found bool) {
	mask := uint64(len(s.slots) - 1)
	stored := key + 1
	for idx := hashKey(key) & mask; ; idx = (idx + 1) & mask {
		switch s.slots[idx] {
		case stored:
			return int(idx), true
		case 0:
			return int(idx), false
		}
	}
}

func (s *hashedSet) Has(c geom.Cube) bool {
	if !s.bounds.Contains(c) {
		return false
	}
	_, found := s.find(s.bounds.Pack(c))
	return found
}

func (s *hashedSet) Insert(c geom.Cube) bool {
	if !s.bounds.Contains(c) {
		panicOutOfBounds(c, s.bounds)
	}
	key := s.bounds.Pack(c)
	slot, found := s.find(key)
	if found {
		return false
	}
	s.slots[slot] = key + 1
	s.count++
	if 2*s.count > len(s.slots) {
		s.grow()
	}
	return true
}

func (s *hashedSet) grow() {
	old := s.slots
	s.slots = make([]uint64, 2*len(old))
	for _, stored := range old {
		if stored == 0 {
			continue
		}
		slot, _ := s.find(stored - 1)
		s.slots[slot] = stored
	}
}

func (s *hashedSet) Len() int { return s.count }
