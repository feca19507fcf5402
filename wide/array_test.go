package wide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSliceChunks(t *testing.T) {
	// 16-byte vectors: 4 float32 lanes per link, 2 links, 8 logical elements.
	forceWidth(t, 16)

	src := []float32{0, 1, 2, 3, 4, 5, 6, 7}
	a, err := FromSlice(2, src)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Links())
	assert.Equal(t, 4, a.Lanes())
	assert.Equal(t, 8, a.Len())

	// Head owns the first native vector's worth, the tail the remainder.
	assert.Equal(t, []float32{0, 1, 2, 3}, a.Link(0).Data())
	assert.Equal(t, []float32{4, 5, 6, 7}, a.Link(1).Data())

	// The flat view spans exactly all logical elements, head first.
	assert.Equal(t, src, a.Slice())
	assert.Len(t, a.Slice(), 8)
}

func TestFromSliceChunksDeep(t *testing.T) {
	forceWidth(t, 16)

	src := make([]int16, 5*8)
	for i := range src {
		src[i] = int16(i * 3)
	}
	a, err := FromSlice(5, src)
	require.NoError(t, err)
	require.Equal(t, 8, a.Lanes())

	for k := 0; k < a.Links(); k++ {
		assert.Equal(t, src[k*8:(k+1)*8], a.Link(k).Data(), "link %d", k)
	}
}

func TestFromSliceFlags(t *testing.T) {
	forceWidth(t, 16)
	src := []float64{1, 2, 3, 4}

	for _, f := range []LoadFlags{Unaligned, Aligned, Streaming} {
		a, err := FromSliceWith(2, src, f)
		require.NoError(t, err, "flags %v", f)
		assert.Equal(t, src, a.Slice(), "flags %v", f)
	}
}

func TestFromSliceErrors(t *testing.T) {
	forceWidth(t, 16)

	t.Run("zero links", func(t *testing.T) {
		_, err := FromSlice[float32](0, make([]float32, 16))
		assert.ErrorIs(t, err, ErrInvalidShape)
	})

	t.Run("negative links", func(t *testing.T) {
		_, err := FromSlice[float32](-2, make([]float32, 16))
		assert.ErrorIs(t, err, ErrInvalidShape)
	})

	t.Run("short source", func(t *testing.T) {
		// 2 links of 4 float32 lanes need 8 elements.
		_, err := FromSlice(2, make([]float32, 7))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBroadcast(t *testing.T) {
	forceWidth(t, 16)

	a, err := Broadcast[float32](3, 9)
	require.NoError(t, err)
	require.Equal(t, 12, a.Len())

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, float32(9), a.At(i), "element %d", i)
	}

	_, err = Broadcast[float32](0, 9)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestIotaArray(t *testing.T) {
	forceWidth(t, 16)

	t.Run("from zero", func(t *testing.T) {
		a, err := IotaArray[int32](3, 0)
		require.NoError(t, err)
		for i := 0; i < a.Len(); i++ {
			assert.Equal(t, int32(i), a.At(i))
		}
	})

	t.Run("with offset", func(t *testing.T) {
		a, err := IotaArray[int32](2, 100)
		require.NoError(t, err)
		// 100, 101, ..., 107 split across links in order.
		assert.Equal(t, []int32{100, 101, 102, 103}, a.Link(0).Data())
		assert.Equal(t, []int32{104, 105, 106, 107}, a.Link(1).Data())
	})

	t.Run("invalid shape", func(t *testing.T) {
		_, err := IotaArray[int32](0, 0)
		assert.ErrorIs(t, err, ErrInvalidShape)
	})
}

func TestLoadRoundTrip(t *testing.T) {
	forceWidth(t, 16)

	src := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	a, err := FromSlice(3, src)
	require.NoError(t, err)

	// Clobber only the middle link through its view.
	a.Link(1).Fill(-1)
	assert.Equal(t, []float32{-1, -1, -1, -1}, a.Link(1).Data())
	assert.Equal(t, []float32{0, 1, 2, 3}, a.Link(0).Data(), "head unaffected by middle-link write")
	assert.Equal(t, []float32{8, 9, 10, 11}, a.Link(2).Data(), "tail unaffected by middle-link write")

	// Reloading from the unchanged buffer restores the middle link and
	// leaves the untouched links with their original values.
	require.NoError(t, a.Load(src, Unaligned))
	assert.Equal(t, src, a.Slice())
}

func TestLoadShort(t *testing.T) {
	forceWidth(t, 16)

	a, err := Broadcast[float32](2, 1)
	require.NoError(t, err)

	err = a.Load(make([]float32, 7), Unaligned)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Shape and contents are untouched after a rejected load.
	assert.Equal(t, 2, a.Links())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, float32(1), a.At(i))
	}
}

func TestStoreArray(t *testing.T) {
	forceWidth(t, 16)

	a, err := IotaArray[float32](2, 0)
	require.NoError(t, err)

	dst := make([]float32, a.Len())
	require.NoError(t, a.Store(dst, Unaligned))
	assert.Equal(t, a.Slice(), dst)

	err = a.Store(make([]float32, a.Len()-1), Unaligned)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestApply(t *testing.T) {
	forceWidth(t, 16)

	t.Run("visits links head to tail", func(t *testing.T) {
		a, err := IotaArray[int32](4, 0)
		require.NoError(t, err)

		var heads []int32
		a.Apply(func(v Vec[int32]) {
			heads = append(heads, v.At(0))
		})
		assert.Equal(t, []int32{0, 4, 8, 12}, heads)
	})

	t.Run("mutates through the view", func(t *testing.T) {
		a, err := Broadcast[int32](3, 1)
		require.NoError(t, err)
		b := Set[int32](10)

		a.Apply(func(v Vec[int32]) {
			v.AddAssign(b)
		})
		for i := 0; i < a.Len(); i++ {
			assert.Equal(t, int32(11), a.At(i))
		}
	})
}

func TestFromConverted(t *testing.T) {
	forceWidth(t, 16)

	src := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}
	a, err := FromConverted[int32](2, src, Unaligned)
	require.NoError(t, err)

	// Link k reads source elements [k*lanes, (k+1)*lanes): boundaries fall
	// at destination-lane positions.
	assert.Equal(t, []int32{0, 1, 2, 3}, a.Link(0).Data())
	assert.Equal(t, []int32{4, 5, 6, 7}, a.Link(1).Data())

	t.Run("short source", func(t *testing.T) {
		_, err := FromConverted[int32](2, src[:7], Unaligned)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("invalid shape", func(t *testing.T) {
		_, err := FromConverted[int32](0, src, Unaligned)
		assert.ErrorIs(t, err, ErrInvalidShape)
	})
}

func TestLinkAliasesStorage(t *testing.T) {
	forceWidth(t, 16)

	a, err := Broadcast[float32](2, 0)
	require.NoError(t, err)

	a.Link(1).Fill(7)
	assert.Equal(t, []float32{0, 0, 0, 0, 7, 7, 7, 7}, a.Slice())
}

func TestAtOutOfRange(t *testing.T) {
	forceWidth(t, 16)

	a, err := Broadcast[float32](1, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(0), a.At(-1))
	assert.Equal(t, float32(0), a.At(a.Len()))
}
