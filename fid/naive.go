package fid

import (
	"math/bits"

	"github.com/ugorji/go/codec"
)

// Naive is a FID with a single level of precomputed counts.
//
// Bit i lives in blocks[i/64] at bit i%64, and offsets[k] holds the number
// of ones in blocks[0...k). Rank is a table lookup plus one popcount;
// select is a binary search over rank. Set keeps offsets consistent by
// adjusting every entry after the edited word, so it costs O(n/64).
type Naive struct {
	n       uint64
	blocks  []uint64
	offsets []uint64
}

var _ FID = (*Naive)(nil)

// New returns an all-zero Naive of length n.
func New(n uint64) *Naive {
	count := n/wordSize + 1
	return &Naive{
		n:       n,
		blocks:  make([]uint64, count),
		offsets: make([]uint64, count),
	}
}

// FromBools returns a Naive holding bits, false as 0 and true as 1.
func FromBools(bits []bool) *Naive {
	n := uint64(len(bits))
	blocks := make([]uint64, n/wordSize+1)
	for i, b := range bits {
		if b {
			blocks[i/wordSize] |= 1 << (uint(i) % wordSize)
		}
	}
	return &Naive{
		n:       n,
		blocks:  blocks,
		offsets: countOffsets(blocks),
	}
}

func countOffsets(blocks []uint64) []uint64 {
	offsets := make([]uint64, len(blocks))
	sum := uint64(0)
	for k, block := range blocks {
		offsets[k] = sum
		sum += uint64(bits.OnesCount64(block))
	}
	return offsets
}

// Len returns the number of bits.
func (b *Naive) Len() uint64 {
	return b.n
}

// OneNum returns the number of ones.
func (b *Naive) OneNum() uint64 {
	return b.Rank1(b.n)
}

// ZeroNum returns the number of zeros.
func (b *Naive) ZeroNum() uint64 {
	return b.n - b.OneNum()
}

// Get returns B[i].
func (b *Naive) Get(i uint64) bool {
	checkAccess(i, b.n)
	return b.blocks[i/wordSize]&(1<<(i%wordSize)) != 0
}

// Access returns B[i].
func (b *Naive) Access(i uint64) bool {
	return b.Get(i)
}

// Set overwrites B[i] with bit.
func (b *Naive) Set(i uint64, bit bool) {
	checkAccess(i, b.n)
	k := i / wordSize
	mask := uint64(1) << (i % wordSize)
	if (b.blocks[k]&mask != 0) == bit {
		return
	}
	if bit {
		b.blocks[k] |= mask
		for j := k + 1; j < uint64(len(b.offsets)); j++ {
			b.offsets[j]++
		}
	} else {
		b.blocks[k] &^= mask
		for j := k + 1; j < uint64(len(b.offsets)); j++ {
			b.offsets[j]--
		}
	}
}

// Rank1 returns the number of ones in B[0...i).
func (b *Naive) Rank1(i uint64) uint64 {
	checkRank(i, b.n)
	k := i / wordSize
	mask := uint64(1)<<(i%wordSize) - 1
	return b.offsets[k] + uint64(bits.OnesCount64(b.blocks[k]&mask))
}

// Rank0 returns the number of zeros in B[0...i).
func (b *Naive) Rank0(i uint64) uint64 {
	return i - b.Rank1(i)
}

// Select1 returns the position of the (i+1)-th one, or Len() if not found.
func (b *Naive) Select1(i uint64) uint64 {
	return search(b.n, i, b.Rank1)
}

// Select0 returns the position of the (i+1)-th zero, or Len() if not found.
func (b *Naive) Select0(i uint64) uint64 {
	return search(b.n, i, b.Rank0)
}

// Not returns the complement of b.
func (b *Naive) Not() *Naive {
	blocks := make([]uint64, len(b.blocks))
	rest := b.n
	for k, block := range b.blocks {
		switch {
		case rest >= wordSize:
			blocks[k] = ^block
			rest -= wordSize
		default:
			// bits past n must stay zero
			blocks[k] = ^block & (uint64(1)<<rest - 1)
			rest = 0
		}
	}
	return &Naive{
		n:       b.n,
		blocks:  blocks,
		offsets: countOffsets(blocks),
	}
}

// Equal reports whether b and other hold the same bits.
func (b *Naive) Equal(other *Naive) bool {
	if b.n != other.n || len(b.blocks) != len(other.blocks) {
		return false
	}
	for k := range b.blocks {
		if b.blocks[k] != other.blocks[k] {
			return false
		}
	}
	return true
}

// MarshalBinary encodes b into a binary form and returns the result.
func (b *Naive) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(b.n)
	if err != nil {
		return
	}
	err = enc.Encode(b.blocks)
	return
}

// UnmarshalBinary decodes b from a binary form generated by MarshalBinary.
// The rank table is rebuilt from the decoded words.
func (b *Naive) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)
	var n uint64
	err = dec.Decode(&n)
	if err != nil {
		return
	}
	var blocks []uint64
	err = dec.Decode(&blocks)
	if err != nil {
		return
	}
	if uint64(len(blocks)) != n/wordSize+1 {
		return ErrCorrupted
	}
	b.n = n
	b.blocks = blocks
	b.offsets = countOffsets(blocks)
	return nil
}
