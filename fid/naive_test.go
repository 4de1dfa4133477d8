package fid

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func randomBools(num int) []bool {
	bv := make([]bool, num)
	for i := range bv {
		bv[i] = rand.Intn(2) == 1
	}
	return bv
}

// rewrite overwrites every bit of b with a fresh random value, so that the
// offsets are exercised through Set rather than FromBools.
func rewrite(b *Naive, bv []bool) {
	for i := range bv {
		bv[i] = rand.Intn(2) == 1
		b.Set(uint64(i), bv[i])
	}
}

func TestNaiveExample(t *testing.T) {
	Convey("Given a short bit vector", t, func() {
		b := FromBools([]bool{true, true, false, true, false, false, true, false})
		So(b.Len(), ShouldEqual, 8)

		Convey("Get and Set address single bits", func() {
			So(b.Get(3), ShouldBeTrue)
			b.Set(3, false)
			So(b.Get(3), ShouldBeFalse)
			b.Set(3, true)
			So(b.Access(3), ShouldBeTrue)
		})
		Convey("Rank counts bits in [0, i)", func() {
			So(b.Rank0(4), ShouldEqual, 1)
			So(b.Rank1(4), ShouldEqual, 3)
			rank0 := make([]uint64, 0, 9)
			for i := uint64(0); i <= b.Len(); i++ {
				rank0 = append(rank0, b.Rank0(i))
			}
			So(rank0, ShouldResemble, []uint64{0, 0, 0, 1, 1, 2, 3, 3, 4})
		})
		Convey("Select finds the i-th bit", func() {
			So(b.Select0(2), ShouldEqual, 5)
			So(b.Select1(2), ShouldEqual, 3)
			So(b.Select1(b.OneNum()), ShouldEqual, 8)
			So(b.Select0(b.ZeroNum()), ShouldEqual, 8)
			So(b.Select0(100), ShouldEqual, 8)
		})
		Convey("Out of range positions panic", func() {
			So(func() { b.Get(8) }, ShouldPanic)
			So(func() { b.Set(8, true) }, ShouldPanic)
			So(func() { b.Rank1(9) }, ShouldPanic)
			So(func() { b.Rank0(9) }, ShouldPanic)
			So(func() { b.Rank1(8) }, ShouldNotPanic)
		})
	})
	Convey("Given an empty bit vector", t, func() {
		b := New(0)
		So(b.Len(), ShouldEqual, 0)
		So(b.Rank1(0), ShouldEqual, 0)
		So(b.Select0(0), ShouldEqual, 0)
		So(b.Select1(0), ShouldEqual, 0)
		So(b.Not().Equal(b), ShouldBeTrue)
	})
	Convey("A large vector stays addressable", t, func() {
		b := New(4 * 1024 * 1024)
		b.Set(3*1024*1024, true)
		So(b.Access(3*1024*1024), ShouldBeTrue)
		So(b.Rank1(b.Len()), ShouldEqual, 1)
		So(b.Select1(0), ShouldEqual, 3*1024*1024)
	})
}

func TestNaiveRandom(t *testing.T) {
	for _, num := range []int{1, 63, 64, 65, 128, 1000} {
		Convey("When a random bit vector is rewritten with Set", t, func() {
			bv := randomBools(num)
			b := FromBools(bv)
			rewrite(b, bv)

			Convey("Get returns the last written bits", func() {
				for i := range bv {
					So(b.Get(uint64(i)), ShouldEqual, bv[i])
				}
			})
			Convey("FromBools agrees with New followed by Set", func() {
				expected := New(uint64(num))
				for i := range bv {
					expected.Set(uint64(i), bv[i])
				}
				So(FromBools(bv).Equal(expected), ShouldBeTrue)
				So(b.Equal(expected), ShouldBeTrue)
			})
			Convey("Rank matches a running count", func() {
				rank0, rank1 := uint64(0), uint64(0)
				for i := range bv {
					So(b.Rank0(uint64(i)), ShouldEqual, rank0)
					So(b.Rank1(uint64(i)), ShouldEqual, rank1)
					So(b.Rank0(uint64(i))+b.Rank1(uint64(i)), ShouldEqual, uint64(i))
					if bv[i] {
						rank1++
					} else {
						rank0++
					}
				}
				So(b.Rank1(b.Len()), ShouldEqual, rank1)
				So(b.Rank0(b.Len()), ShouldEqual, rank0)
			})
			Convey("Select is the inverse of rank", func() {
				prev := uint64(0)
				for i := uint64(0); i < b.Rank0(b.Len()); i++ {
					pos := b.Select0(i)
					So(b.Access(pos), ShouldBeFalse)
					So(b.Rank0(pos), ShouldEqual, i)
					if i > 0 {
						So(pos, ShouldBeGreaterThan, prev)
					}
					prev = pos
				}
				for i := uint64(0); i < b.Rank1(b.Len()); i++ {
					pos := b.Select1(i)
					So(b.Access(pos), ShouldBeTrue)
					So(b.Rank1(pos), ShouldEqual, i)
					if i > 0 {
						So(pos, ShouldBeGreaterThan, prev)
					}
					prev = pos
				}
				So(b.Select1(b.OneNum()), ShouldEqual, b.Len())
				So(b.Select0(b.ZeroNum()), ShouldEqual, b.Len())
			})
			Convey("Not flips every bit and nothing past the end", func() {
				flipped := make([]bool, len(bv))
				for i := range bv {
					flipped[i] = !bv[i]
				}
				not := b.Not()
				So(not.Equal(FromBools(flipped)), ShouldBeTrue)
				So(not.OneNum(), ShouldEqual, b.ZeroNum())
				for i := range bv {
					So(not.Access(uint64(i)), ShouldEqual, !b.Access(uint64(i)))
				}
			})
			Convey("It survives a binary round trip", func() {
				out, err := b.MarshalBinary()
				So(err, ShouldBeNil)
				decoded := new(Naive)
				So(decoded.UnmarshalBinary(out), ShouldBeNil)
				So(decoded.Equal(b), ShouldBeTrue)
				So(decoded.Rank1(decoded.Len()), ShouldEqual, b.Rank1(b.Len()))
			})
		})
	}
}

func TestNaiveUnmarshalCorrupted(t *testing.T) {
	Convey("Decoding a mismatched word count fails", t, func() {
		b := New(10)
		out, err := b.MarshalBinary()
		So(err, ShouldBeNil)
		other := New(100)
		tail, err := other.MarshalBinary()
		So(err, ShouldBeNil)
		// length of the first, words of the second
		bad := append(append([]byte{}, out[:1]...), tail[1:]...)
		So(new(Naive).UnmarshalBinary(bad), ShouldEqual, ErrCorrupted)
	})
}

func BenchmarkNaive_Rank1(b *testing.B) {
	const num = 1 << 20
	v := FromBools(randomBools(num))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Rank1(uint64(rand.Intn(num)))
	}
}

func BenchmarkNaive_Select1(b *testing.B) {
	const num = 1 << 20
	v := FromBools(randomBools(num))
	ones := v.OneNum()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Select1(uint64(rand.Int63()) % ones)
	}
}
