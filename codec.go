package goPerm

import "encoding/binary"

// stateSize is the encoded width: 8 bytes of flag space + 8 bytes of mask,
// both big-endian.
const stateSize = 16

// EncodeState serializes a Store's flag space and bitmask. The registry,
// audit, and metrics wiring is construction-time state and is not encoded.
func EncodeState(s *Store) []byte {
	b := make([]byte, stateSize)
	binary.BigEndian.PutUint64(b[0:8], s.flagSpace)
	binary.BigEndian.PutUint64(b[8:16], s.bitMask)
	return b
}

// DecodeState reconstructs a bare Store from EncodeState output. Inputs of
// any other length return [ErrInvalidStateSize]. An encoded flag space of 0
// decodes to [DefaultFlagSpace], matching construction.
func DecodeState(data []byte) (*Store, error) {
	if len(data) != stateSize {
		return nil, ErrInvalidStateSize
	}
	s := NewStore(binary.BigEndian.Uint64(data[0:8]))
	s.bitMask = binary.BigEndian.Uint64(data[8:16])
	return s, nil
}
