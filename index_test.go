package xlist_test

import (
	"testing"

	"deedles.dev/xlist"
	"github.com/stretchr/testify/require"
)

func TestIndexEqual(t *testing.T) {
	ls := xlist.Of(1, 2, 3)

	i, err := ls.Start().Next()
	require.NoError(t, err)

	var j xlist.Index[int]
	for idx := range ls.Indices() {
		if v, _ := ls.Get(idx); v == 2 {
			j = idx
		}
	}
	require.True(t, i.Equal(j))
	require.False(t, i.Equal(ls.Start()))

	end, err := ls.Start().Advance(3)
	require.NoError(t, err)
	require.True(t, end.Equal(ls.End()))

	other := xlist.Of(1, 2, 3)
	require.False(t, ls.End().Equal(other.End()))
}

func TestIndexAdvance(t *testing.T) {
	ls := xlist.Of(1, 2, 3)

	i, err := ls.Start().Advance(0)
	require.NoError(t, err)
	require.True(t, i.Equal(ls.Start()))

	_, err = ls.Start().Advance(-1)
	require.ErrorIs(t, err, xlist.ErrOutOfBounds)

	_, err = ls.Start().Advance(4)
	require.ErrorIs(t, err, xlist.ErrOutOfBounds)

	var empty xlist.List[int]
	_, err = empty.Start().Next()
	require.ErrorIs(t, err, xlist.ErrOutOfBounds)
}

func TestDistance(t *testing.T) {
	ls := xlist.Of(1, 2, 3, 4)

	n, err := ls.Distance(ls.Start(), ls.End())
	require.NoError(t, err)
	require.Equal(t, 4, n)

	n, err = ls.Distance(at(t, ls, 1), at(t, ls, 3))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = ls.Distance(ls.End(), ls.End())
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = ls.Distance(at(t, ls, 3), at(t, ls, 1))
	require.ErrorIs(t, err, xlist.ErrOutOfBounds)
}

func TestIndexOutlivesUnrelatedChanges(t *testing.T) {
	ls := xlist.Of(1, 2, 3, 4)
	i := at(t, ls, 2)
	j := at(t, ls, 1)
	end := ls.End()

	ls.Prepend(0)
	_, err := ls.Insert(9, i)
	require.NoError(t, err)
	requireList(t, ls, 0, 1, 2, 9, 3, 4)

	ls.Append(5)
	v, err := ls.Remove(j)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	requireList(t, ls, 0, 1, 9, 3, 4, 5)

	k := at(t, ls, 4)
	require.NoError(t, ls.RemoveRange(ls.Start(), at(t, ls, 2)))
	require.NoError(t, ls.Splice(ls.End(), 6))
	v, err = ls.Get(k)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	n, err := ls.Distance(ls.Start(), k)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = ls.Get(end)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
}

func TestStaleIndex(t *testing.T) {
	ls := xlist.Of(1, 2, 3)
	other := xlist.Of(1, 2, 3)

	_, err := other.Remove(ls.Start())
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	requireList(t, other, 1, 2, 3)

	i := at(t, ls, 1)
	_, err = ls.Remove(i)
	require.NoError(t, err)
	_, err = ls.Get(i)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	_, err = i.Next()
	require.ErrorIs(t, err, xlist.ErrStaleIndex)

	i = at(t, ls, 1)
	_, err = ls.Remove(ls.Start())
	require.NoError(t, err)
	_, err = ls.Insert(0, i)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	requireList(t, ls, 3)

	ls.Extend(xlist.Of(4, 5, 6).All())
	i = at(t, ls, 2)
	_, err = ls.Insert(7, at(t, ls, 2))
	require.NoError(t, err)
	require.ErrorIs(t, ls.Set(i, 0), xlist.ErrStaleIndex)
	requireList(t, ls, 3, 4, 7, 5, 6)

	end := ls.End()
	require.NoError(t, ls.RemoveRange(at(t, ls, 3), ls.End()))
	_, err = ls.Insert(8, end)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)

	end = ls.End()
	ls.Clear()
	_, err = ls.Insert(8, end)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	requireList(t, ls)

	var zero xlist.Index[int]
	_, err = ls.Get(zero)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	_, err = zero.Next()
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	_, err = zero.Advance(1)
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
}

func TestStaleIndexAtomic(t *testing.T) {
	ls := xlist.Of(1, 2, 3, 4)
	start := ls.Start()
	ls.Prepend(0)

	require.ErrorIs(t, ls.RemoveRange(start, ls.End()), xlist.ErrStaleIndex)
	require.ErrorIs(t, ls.ReplaceRange(ls.Start(), start, 9), xlist.ErrStaleIndex)
	require.ErrorIs(t, ls.SetSlice(start, start, xlist.Of(9)), xlist.ErrStaleIndex)
	require.ErrorIs(t, ls.Splice(start, 9), xlist.ErrStaleIndex)
	_, err := ls.Slice(start, ls.End())
	require.ErrorIs(t, err, xlist.ErrStaleIndex)
	requireList(t, ls, 0, 1, 2, 3, 4)

	end := ls.End()
	require.ErrorIs(t, ls.RemoveRange(end, ls.Start()), xlist.ErrOutOfBounds)
	require.ErrorIs(t, ls.ReplaceRange(at(t, ls, 3), at(t, ls, 1), 9), xlist.ErrOutOfBounds)
	require.ErrorIs(t, ls.SetSlice(at(t, ls, 2), at(t, ls, 1), ls), xlist.ErrOutOfBounds)
	requireList(t, ls, 0, 1, 2, 3, 4)
}

func TestSetKeepsIndices(t *testing.T) {
	ls := xlist.Of(1, 2, 3)
	i := at(t, ls, 1)
	require.NoError(t, ls.Set(i, 20))

	v, err := ls.Get(i)
	require.NoError(t, err)
	require.Equal(t, 20, v)

	_, err = ls.Remove(i)
	require.NoError(t, err)
	requireList(t, ls, 1, 3)
}
