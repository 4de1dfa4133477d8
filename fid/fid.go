// Package fid provides fully indexable dictionaries (FID):
// bit vectors supporting access, rank and select queries.
//
// Naive keeps one popcount prefix per 64-bit word and can be updated
// in place with Set. Mapped is a static, compressed dictionary whose
// blocks live in memory-mapped files.
package fid

import "fmt"

const wordSize = 64

// Index is the read-only part of a FID.
//
// Positions are 0-based. Access requires i in [0, Len()),
// Rank0 and Rank1 require i in [0, Len()]; both panic otherwise.
// Select0 and Select1 return Len() when fewer than i+1 matching bits exist.
type Index interface {
	// Len returns the number of bits.
	Len() uint64
	// Access returns B[i].
	Access(i uint64) bool
	// Rank0 returns the number of zeros in B[0...i).
	Rank0(i uint64) uint64
	// Rank1 returns the number of ones in B[0...i).
	Rank1(i uint64) uint64
	// Select0 returns the position of the (i+1)-th zero.
	Select0(i uint64) uint64
	// Select1 returns the position of the (i+1)-th one.
	Select1(i uint64) uint64
}

// FID is an Index whose bits can be changed after construction.
type FID interface {
	Index
	// Get is the same as Access.
	Get(i uint64) bool
	// Set overwrites B[i] with bit.
	Set(i uint64, bit bool)
}

// search returns the largest p in [0, n) with rank(p) <= i,
// i.e. the position of the (i+1)-th counted bit, or n if there is none.
// rank must be non-decreasing with steps of 0 or 1.
func search(n, i uint64, rank func(uint64) uint64) uint64 {
	if rank(n) <= i {
		return n
	}
	beg, end := uint64(0), n
	for end-beg > 1 {
		p := beg + (end-beg)/2
		if i < rank(p) {
			end = p
		} else {
			beg = p
		}
	}
	return beg
}

func checkAccess(i, n uint64) {
	if i >= n {
		panic(fmt.Sprintf("fid: index %d out of range [0, %d)", i, n))
	}
}

func checkRank(i, n uint64) {
	if i > n {
		panic(fmt.Sprintf("fid: rank position %d out of range [0, %d]", i, n))
	}
}
