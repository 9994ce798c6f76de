// Package hash provides the 64-bit hashing used to identify flag names and
// to fingerprint registry layouts.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
//
// Flag names hash to fixed-size IDs in the registry wire format's flag
// entries; the full names travel separately in the names payload.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest accumulates an order-sensitive 64-bit fingerprint over a sequence
// of strings and integers.
//
// Strings are length-framed before hashing, so adjacent writes can never
// alias ("ab","c" and "a","bc" produce different sums).
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty fingerprint digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString adds a length-framed string to the digest.
func (d *Digest) WriteString(s string) {
	d.WriteUint64(uint64(len(s)))
	_, _ = d.d.WriteString(s)
}

// WriteUint64 adds a fixed-width integer to the digest.
func (d *Digest) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.d.Write(buf[:])
}

// Sum64 returns the current fingerprint value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
