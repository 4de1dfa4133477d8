package watrix

import (
	"encoding"
	"fmt"

	"github.com/AlexWan0/succinct/fid"
	"github.com/ugorji/go/codec"
)

const (
	// OpEqual is used in RangedRankOp()
	OpEqual = iota
	// OpLessThan is used in RangedRankOp()
	OpLessThan
	// OpMoreThan is used in RangedRankOp()
	OpMoreThan
	// OpMax is upper boundary for OpXXXX constants
	OpMax
)

// WaveletMatrix is the core of the library.
//
// A WaveletMatrix is read-only once built. Changing a layer through
// fid.FID.Set leaves offsets and the other layers stale.
type WaveletMatrix struct {
	layers  []fid.Index
	zeros   [symbolBits]uint64 // layers[d].Rank0(num)
	offsets [1 << symbolBits]uint64
	num     uint64
}

// Len returns the number of values in T
func (wm *WaveletMatrix) Len() uint64 {
	return wm.num
}

// Access returns T[pos]
func (wm *WaveletMatrix) Access(pos uint64) uint8 {
	wm.checkPos(pos)
	val := uint8(0)
	for depth, layer := range wm.layers {
		val <<= 1
		if !layer.Access(pos) {
			pos = layer.Rank0(pos)
		} else {
			val |= 1
			pos = wm.zeros[depth] + layer.Rank1(pos)
		}
	}
	return val
}

// AccessAndRank returns T[pos] and Rank(T[pos], pos)
// Faster than Access and Rank
func (wm *WaveletMatrix) AccessAndRank(pos uint64) (uint8, uint64) {
	wm.checkPos(pos)
	val := uint8(0)
	bpos := uint64(0)
	epos := pos
	for depth, layer := range wm.layers {
		val <<= 1
		if !layer.Access(epos) {
			bpos = layer.Rank0(bpos)
			epos = layer.Rank0(epos)
		} else {
			val |= 1
			bpos = wm.zeros[depth] + layer.Rank1(bpos)
			epos = wm.zeros[depth] + layer.Rank1(epos)
		}
	}
	return val, epos - bpos
}

// Rank returns the number of c (== val) in T[0...pos).
// pos larger than Len() is treated as Len().
func (wm *WaveletMatrix) Rank(val uint8, pos uint64) uint64 {
	if wm.offsets[val] == wm.num {
		return 0
	}
	return wm.descend(val, wm.clamp(pos)) - wm.offsets[val]
}

// descend maps pos through every layer following val's bits. The result
// is where T[pos] would land in the final order if it were val.
func (wm *WaveletMatrix) descend(val uint8, pos uint64) uint64 {
	for depth, layer := range wm.layers {
		if getMSB(val, depth) {
			pos = wm.zeros[depth] + layer.Rank1(pos)
		} else {
			pos = layer.Rank0(pos)
		}
	}
	return pos
}

// RankLessThan returns the number of c (< val) in T[0...pos)
func (wm *WaveletMatrix) RankLessThan(val uint8, pos uint64) uint64 {
	return wm.RangedRankOp(Range{0, wm.clamp(pos)}, val, OpLessThan)
}

// RankMoreThan returns the number of c (> val) in T[0...pos)
func (wm *WaveletMatrix) RankMoreThan(val uint8, pos uint64) uint64 {
	return wm.RangedRankOp(Range{0, wm.clamp(pos)}, val, OpMoreThan)
}

// RangedRankOp returns the number of c that satisfies 'c op val'
// in T[ranze.Bpos, ranze.Epos).
// The op should be one of {OpEqual, OpLessThan, OpMoreThan}.
func (wm *WaveletMatrix) RangedRankOp(ranze Range, val uint8, op int) uint64 {
	wm.checkRange(ranze)
	rankLessThan := uint64(0)
	rankMoreThan := uint64(0)
	for depth, layer := range wm.layers {
		if getMSB(val, depth) {
			if op == OpLessThan {
				rankLessThan += layer.Rank0(ranze.Epos) - layer.Rank0(ranze.Bpos)
			}
			ranze.Bpos = wm.zeros[depth] + layer.Rank1(ranze.Bpos)
			ranze.Epos = wm.zeros[depth] + layer.Rank1(ranze.Epos)
		} else {
			if op == OpMoreThan {
				rankMoreThan += layer.Rank1(ranze.Epos) - layer.Rank1(ranze.Bpos)
			}
			ranze.Bpos = layer.Rank0(ranze.Bpos)
			ranze.Epos = layer.Rank0(ranze.Epos)
		}
	}
	switch op {
	case OpEqual:
		return ranze.Epos - ranze.Bpos
	case OpLessThan:
		return rankLessThan
	case OpMoreThan:
		return rankMoreThan
	default:
		return 0
	}
}

// Select returns the position of (rank+1)-th val in T.
// If not found, returns Len().
func (wm *WaveletMatrix) Select(val uint8, rank uint64) uint64 {
	if wm.offsets[val] == wm.num || rank >= wm.Rank(val, wm.num) {
		return wm.num
	}
	pos := wm.offsets[val] + rank
	for depth := symbolBits - 1; depth >= 0; depth-- {
		layer := wm.layers[depth]
		if getMSB(val, depth) {
			pos = layer.Select1(pos - wm.zeros[depth])
		} else {
			pos = layer.Select0(pos)
		}
	}
	return pos
}

// Quantile returns (k+1)th smallest value in T[ranze.Bpos, ranze.Epos)
func (wm *WaveletMatrix) Quantile(ranze Range, k uint64) uint8 {
	wm.checkRange(ranze)
	if k >= ranze.Len() {
		panic(fmt.Sprintf("watrix: quantile %d out of range [0, %d)", k, ranze.Len()))
	}
	val := uint8(0)
	bpos, epos := ranze.Bpos, ranze.Epos
	for depth, layer := range wm.layers {
		val <<= 1
		nzBpos := layer.Rank0(bpos)
		nzEpos := layer.Rank0(epos)
		nz := nzEpos - nzBpos
		if k < nz {
			bpos = nzBpos
			epos = nzEpos
		} else {
			k -= nz
			val |= 1
			bpos = wm.zeros[depth] + bpos - nzBpos
			epos = wm.zeros[depth] + epos - nzEpos
		}
	}
	return val
}

// Intersect returns values that occure at least k ranges
func (wm *WaveletMatrix) Intersect(ranges []Range, k int) []uint8 {
	for _, ranze := range ranges {
		wm.checkRange(ranze)
	}
	return wm.intersectHelper(ranges, k, 0, 0)
}

func (wm *WaveletMatrix) intersectHelper(ranges []Range, k int, depth int, prefix uint8) []uint8 {
	if depth == symbolBits {
		return []uint8{prefix}
	}
	layer := wm.layers[depth]
	zeroRanges := make([]Range, 0)
	oneRanges := make([]Range, 0)
	for _, ranze := range ranges {
		bpos, epos := ranze.Bpos, ranze.Epos
		nzBpos := layer.Rank0(bpos)
		nzEpos := layer.Rank0(epos)
		noBpos := bpos - nzBpos + wm.zeros[depth]
		noEpos := epos - nzEpos + wm.zeros[depth]
		if nzEpos-nzBpos > 0 {
			zeroRanges = append(zeroRanges, Range{nzBpos, nzEpos})
		}
		if noEpos-noBpos > 0 {
			oneRanges = append(oneRanges, Range{noBpos, noEpos})
		}
	}
	ret := make([]uint8, 0)
	if len(zeroRanges) >= k {
		ret = append(ret, wm.intersectHelper(zeroRanges, k, depth+1, prefix<<1)...)
	}
	if len(oneRanges) >= k {
		ret = append(ret, wm.intersectHelper(oneRanges, k, depth+1, (prefix<<1)|1)...)
	}
	return ret
}

// MarshalBinary encodes WaveletMatrix into a binary form and returns the result.
// Every layer must implement encoding.BinaryMarshaler.
func (wm *WaveletMatrix) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(wm.num)
	if err != nil {
		return
	}
	err = enc.Encode(wm.offsets[:])
	if err != nil {
		return
	}
	err = enc.Encode(len(wm.layers))
	if err != nil {
		return
	}
	for i := 0; i < len(wm.layers); i++ {
		m, ok := wm.layers[i].(encoding.BinaryMarshaler)
		if !ok {
			return nil, ErrLayerNotMarshalable
		}
		var layer []byte
		layer, err = m.MarshalBinary()
		if err != nil {
			return
		}
		err = enc.Encode(layer)
		if err != nil {
			return
		}
	}
	return
}

// UnmarshalBinary decodes WaveletMatrix from a binary form generated MarshalBinary.
// Decoded layers are fid.Naive.
func (wm *WaveletMatrix) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)
	var num uint64
	err = dec.Decode(&num)
	if err != nil {
		return
	}
	var offsets []uint64
	err = dec.Decode(&offsets)
	if err != nil {
		return
	}
	layerNum := 0
	err = dec.Decode(&layerNum)
	if err != nil {
		return
	}
	if len(offsets) != len(wm.offsets) || layerNum != symbolBits {
		return ErrCorrupted
	}
	layers := make([]fid.Index, layerNum)
	var zeros [symbolBits]uint64
	for i := 0; i < layerNum; i++ {
		var raw []byte
		err = dec.Decode(&raw)
		if err != nil {
			return
		}
		layer := new(fid.Naive)
		err = layer.UnmarshalBinary(raw)
		if err != nil {
			return
		}
		if layer.Len() != num {
			return ErrCorrupted
		}
		layers[i] = layer
		zeros[i] = layer.ZeroNum()
	}
	decoded := &WaveletMatrix{layers: layers, zeros: zeros, num: num}
	decoded.recomputeOffsets()
	for v := range offsets {
		if offsets[v] != decoded.offsets[v] {
			return ErrCorrupted
		}
	}
	*wm = *decoded
	return nil
}

// recomputeOffsets derives offsets from the layers alone: a value's run
// spans [descend(v, 0), descend(v, num)) in the final order.
func (wm *WaveletMatrix) recomputeOffsets() {
	for v := range wm.offsets {
		bpos := wm.descend(uint8(v), 0)
		if wm.descend(uint8(v), wm.num) == bpos {
			wm.offsets[v] = wm.num
		} else {
			wm.offsets[v] = bpos
		}
	}
}

func (wm *WaveletMatrix) clamp(pos uint64) uint64 {
	if pos > wm.num {
		return wm.num
	}
	return pos
}

func (wm *WaveletMatrix) checkPos(pos uint64) {
	if pos >= wm.num {
		panic(fmt.Sprintf("watrix: index %d out of range [0, %d)", pos, wm.num))
	}
}

func (wm *WaveletMatrix) checkRange(ranze Range) {
	if ranze.Bpos > ranze.Epos || ranze.Epos > wm.num {
		panic(fmt.Sprintf("watrix: invalid range [%d, %d) for length %d", ranze.Bpos, ranze.Epos, wm.num))
	}
}

// getMSB returns the bit of x read by layer depth.
func getMSB(x uint8, depth int) bool {
	return (x>>(symbolBits-depth-1))&1 == 1
}
