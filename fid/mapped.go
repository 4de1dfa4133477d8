package fid

import (
	"fmt"

	rsdic "github.com/AlexWan0/rsdic-mmap"
)

// Mapped is a static Index backed by a compressed rank/select dictionary
// whose blocks are stored in memory-mapped files under a directory.
//
// Bits are fixed at construction; Mapped has no Set.
type Mapped struct {
	rsd  *rsdic.RSDic
	path string
}

var _ Index = (*Mapped)(nil)

// NewMapped writes bits into a dictionary rooted at path and maps it for reading.
// The directory is created if it does not exist; its parent must exist.
func NewMapped(path string, bits []bool) (*Mapped, error) {
	rsd, err := rsdic.New(path)
	if err != nil {
		return nil, fmt.Errorf("fid: create dictionary %s: %w", path, err)
	}
	err = rsd.LoadWriter()
	if err != nil {
		return nil, fmt.Errorf("fid: open writer %s: %w", path, err)
	}
	for _, bit := range bits {
		rsd.PushBack(bit)
	}
	err = rsd.CloseWriter()
	if err != nil {
		return nil, fmt.Errorf("fid: close writer %s: %w", path, err)
	}
	err = rsd.LoadReader()
	if err != nil {
		return nil, fmt.Errorf("fid: open reader %s: %w", path, err)
	}
	return &Mapped{rsd: rsd, path: path}, nil
}

// Path returns the directory holding the dictionary files.
func (m *Mapped) Path() string {
	return m.path
}

// Len returns the number of bits.
func (m *Mapped) Len() uint64 {
	return m.rsd.Num()
}

// Access returns B[i].
func (m *Mapped) Access(i uint64) bool {
	checkAccess(i, m.rsd.Num())
	return m.rsd.Bit(i)
}

// Rank1 returns the number of ones in B[0...i).
func (m *Mapped) Rank1(i uint64) uint64 {
	checkRank(i, m.rsd.Num())
	return m.rsd.Rank(i, true)
}

// Rank0 returns the number of zeros in B[0...i).
func (m *Mapped) Rank0(i uint64) uint64 {
	checkRank(i, m.rsd.Num())
	return m.rsd.Rank(i, false)
}

// Select1 returns the position of the (i+1)-th one, or Len() if not found.
func (m *Mapped) Select1(i uint64) uint64 {
	return m.rsd.Select(i, true)
}

// Select0 returns the position of the (i+1)-th zero, or Len() if not found.
func (m *Mapped) Select0(i uint64) uint64 {
	return m.rsd.Select(i, false)
}
