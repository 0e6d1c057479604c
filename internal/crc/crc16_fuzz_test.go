package crc

import "testing"

// FuzzChecksumMatchesBitwise ensures the table-driven checksum never
// diverges from the bit-serial reference, for any input.
func FuzzChecksumMatchesBitwise(f *testing.F) {
	f.Add([]byte{0xAA, 0x55, 0x00, 0x00, 0x01, 0x01})
	f.Add([]byte("Hello"))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		if got, want := Checksum(data), bitwise(data); got != want {
			t.Fatalf("Checksum(%v) = 0x%04X, want 0x%04X", data, got, want)
		}
	})
}

// FuzzUpdateSplitInvariant ensures splitting data across two Update
// calls always agrees with a single Checksum call.
func FuzzUpdateSplitInvariant(f *testing.F) {
	f.Add([]byte("split me somewhere"), 5)
	f.Fuzz(func(t *testing.T, data []byte, split int) {
		if len(data) == 0 {
			return
		}
		if split < 0 {
			split = -split
		}
		split %= len(data) + 1

		want := Checksum(data)
		got := Update(Update(Initial, data[:split]), data[split:])
		if got != want {
			t.Fatalf("split at %d: got 0x%04X, want 0x%04X", split, got, want)
		}
	})
}
