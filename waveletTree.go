// Package watrix provides a wavelet matrix over byte sequences
// supporting access, rank/select, quantile, top-k frequency and
// intersection queries on ranges of the original sequence.
//
// Each of the 8 layers is a fid.Index over one bit-plane of the symbols,
// most significant plane first. Layers are in-memory fid.Naive values by
// default, or fid.Mapped dictionaries when built with MappedLayers.
package watrix

// Range represents a range [Bpos, Epos)
// only valid for Bpos <= Epos
type Range struct {
	Bpos uint64
	Epos uint64
}

// Len returns Epos - Bpos.
func (r Range) Len() uint64 {
	return r.Epos - r.Bpos
}

// Frequency is a symbol and its number of occurrences in a range.
type Frequency struct {
	Symbol uint8
	Count  uint64
}

// WaveletTree supports several range queries.
type WaveletTree interface {
	Len() uint64

	Access(pos uint64) uint8

	AccessAndRank(pos uint64) (uint8, uint64)

	Rank(val uint8, pos uint64) uint64

	RankLessThan(val uint8, pos uint64) uint64

	RankMoreThan(val uint8, pos uint64) uint64

	RangedRankOp(ranze Range, val uint8, op int) uint64

	Select(val uint8, rank uint64) uint64

	Quantile(ranze Range, k uint64) uint8

	TopK(ranze Range, k int) []Frequency

	Intersect(ranges []Range, k int) []uint8

	MarshalBinary() ([]byte, error)

	UnmarshalBinary([]byte) error
}

var _ WaveletTree = (*WaveletMatrix)(nil)
