package watrix

import (
	"fmt"

	"github.com/AlexWan0/succinct/fid"
)

// symbolBits is the number of layers, one per bit of a symbol.
const symbolBits = 8

// Builder builds a WaveletMatrix from a byte sequence.
// A user calls PushBack()s followed by Build().
type Builder struct {
	vals []uint8
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{vals: make([]uint8, 0)}
}

// PushBack appends val to the sequence.
func (wmb *Builder) PushBack(val uint8) {
	wmb.vals = append(wmb.vals, val)
}

// Build builds a WaveletMatrix over the pushed values.
// It only fails when the configured LayerBuilder fails.
func (wmb *Builder) Build(opts ...Option) (*WaveletMatrix, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return build(wmb.vals, cfg)
}

// New builds a WaveletMatrix over vals with in-memory layers.
func New(vals []uint8) *WaveletMatrix {
	wm, err := build(vals, defaultConfig())
	if err != nil {
		// NaiveLayers never fails
		panic(err)
	}
	return wm
}

// build radix-partitions vals one bit-plane at a time, most significant
// first. Layer depth records the plane's bit for each element in the
// current order, then zeros are moved before ones keeping relative order.
// After the last plane equal values are contiguous and in input order;
// runs are ordered by bit-reversed value (0 4 4 2 1 for 4 2 1 0 4).
func build(vals []uint8, cfg *config) (*WaveletMatrix, error) {
	num := uint64(len(vals))
	wm := &WaveletMatrix{
		num:    num,
		layers: make([]fid.Index, symbolBits),
	}
	zeros := vals
	ones := make([]uint8, 0)
	for depth := 0; depth < symbolBits; depth++ {
		bits := make([]bool, 0, num)
		nextZeros := make([]uint8, 0, num)
		nextOnes := make([]uint8, 0, num)
		shift := uint(symbolBits - depth - 1)
		bits = filter(zeros, shift, &nextZeros, &nextOnes, bits)
		bits = filter(ones, shift, &nextZeros, &nextOnes, bits)
		layer, err := cfg.layerBuilder(depth, bits)
		if err != nil {
			return nil, fmt.Errorf("watrix: build layer %d: %w", depth, err)
		}
		wm.layers[depth] = layer
		wm.zeros[depth] = layer.Rank0(num)
		zeros = nextZeros
		ones = nextOnes
	}

	distinct := wm.setOffsets(append(zeros, ones...))
	cfg.logger.Debug("wavelet matrix built",
		"num", num, "distinct", distinct, "layer", fmt.Sprintf("%T", wm.layers[0]))
	return wm, nil
}

func filter(vals []uint8, shift uint, nextZeros *[]uint8, nextOnes *[]uint8, bits []bool) []bool {
	for _, val := range vals {
		bit := (val>>shift)&1 == 1
		bits = append(bits, bit)
		if bit {
			*nextOnes = append(*nextOnes, val)
		} else {
			*nextZeros = append(*nextZeros, val)
		}
	}
	return bits
}

// setOffsets records where each symbol's run starts in the final order,
// or num if the symbol does not occur, and returns the number of distinct symbols.
func (wm *WaveletMatrix) setOffsets(final []uint8) int {
	for v := range wm.offsets {
		wm.offsets[v] = wm.num
	}
	distinct := 0
	for i, v := range final {
		if wm.offsets[v] == wm.num {
			wm.offsets[v] = uint64(i)
			distinct++
		}
	}
	return distinct
}
