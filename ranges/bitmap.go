package ranges

import (
	"errors"

	roaring "github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/exp/constraints"
)

// ErrNegativeValue is returned when a negative integer is added to a bitmap.
var ErrNegativeValue = errors.New("negative value in bitmap input")

// Bitmap collects ints into a roaring bitmap. Bitmaps only hold non-negative
// integers, so any negative input is an error.
func Bitmap[T constraints.Integer](ints []T) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, v := range ints {
		if v < T(0) {
			return nil, ErrNegativeValue
		}
		bm.Add(uint32(v))
	}
	return bm, nil
}

// BitmapRuns partitions the members of bm into maximal runs of consecutive
// integers, ascending.
func BitmapRuns(bm *roaring.Bitmap) []Run[uint32] {
	if bm == nil || bm.IsEmpty() {
		return nil
	}

	var runs []Run[uint32]
	it := bm.Iterator()
	for it.HasNext() {
		v := it.Next()
		if len(runs) > 0 && v == runs[len(runs)-1].Last+1 {
			runs[len(runs)-1].Last = v
			continue
		}
		runs = append(runs, Run[uint32]{First: v, Last: v})
	}
	return runs
}

// FormatBitmap renders the members of bm as a compressed range string.
func FormatBitmap(bm *roaring.Bitmap, opts ...Option) string {
	return FormatRuns(BitmapRuns(bm), opts...)
}
