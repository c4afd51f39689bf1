package goPerm

import (
	"bytes"
	"testing"
)

// FuzzStateCodecRoundTrip exercises the state encode/decode path with
// arbitrary bytes. Goal: no panics; valid-length inputs must reach a stable
// encoding after one decode.
func FuzzStateCodecRoundTrip(f *testing.F) {
	f.Add(make([]byte, stateSize))
	f.Add(EncodeState(NewStore(10).SetPermissions([]any{1, 2, 7})))

	// Invalid sizes.
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})
	f.Add(make([]byte, stateSize-1))
	f.Add(make([]byte, stateSize+1))

	f.Fuzz(func(t *testing.T, data []byte) {
		// DecodeState must not panic.
		store, err := DecodeState(data)
		if err != nil {
			return
		}

		// One decode normalizes state (zero flag space gets the default);
		// from then on the encoding must be a fixed point.
		encoded := EncodeState(store)
		reDecoded, err := DecodeState(encoded)
		if err != nil {
			t.Fatalf("DecodeState roundtrip failed: %v", err)
		}
		if !bytes.Equal(encoded, EncodeState(reDecoded)) {
			t.Fatalf("roundtrip not stable: %x vs %x", encoded, EncodeState(reDecoded))
		}
	})
}
