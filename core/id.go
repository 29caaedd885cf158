package core

import (
	"time"

	"github.com/google/uuid"
)

// UUIDSource is the default IDSource. IDs are a short prefix plus the
// first 8 hex characters of a v4 UUID ("ord_3f2a91bc"), keeping the
// readable shape of the demo data without the same-millisecond collision
// risk of timestamp-derived IDs. The truncation keeps 32 random bits, so
// birthday collisions become likely only past tens of thousands of IDs
// per key; the single-designer collections here stay far below that. A
// system minting IDs at volume should use the full UUID.
type UUIDSource struct{}

// NewID mints a fresh prefixed identifier
func (UUIDSource) NewID(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// Now returns the current wall-clock time
func (UUIDSource) Now() time.Time {
	return time.Now()
}

// FixedIDSource returns predetermined IDs and a fixed time. Tests use it
// to make records deterministic.
type FixedIDSource struct {
	IDs  []string
	Time time.Time
	next int
}

func (f *FixedIDSource) NewID(prefix string) string {
	if f.next < len(f.IDs) {
		id := f.IDs[f.next]
		f.next++
		return id
	}
	return prefix + "fixed"
}

func (f *FixedIDSource) Now() time.Time {
	return f.Time
}
