package termstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trulysimple/tsargp/styles"
)

func TestWord(t *testing.T) {
	t.Run("words are separated by a single space", func(t *testing.T) {
		s := New(0).Word("type").Word("script")
		assert.Equal(t, "type script", s.WrapString(0, false))
		assert.Equal(t, 11, s.Len())
	})

	t.Run("empty word is a no-op", func(t *testing.T) {
		s := New(0).Word("a").Word("").Word("b")
		assert.Equal(t, 2, s.Count())
		assert.Equal(t, "a b", s.WrapString(0, false))
	})

	t.Run("wide runes use display width", func(t *testing.T) {
		s := New(0).Word("日本")
		assert.Equal(t, 4, s.Len())
	})
}

func TestMerge(t *testing.T) {
	t.Run("merged words form one segment", func(t *testing.T) {
		s := New(0).Word("type").Merge().Word("script")
		assert.Equal(t, 1, s.Count())
		assert.Equal(t, "typescript", s.WrapString(0, false))
		assert.Equal(t, 10, s.Len())
	})

	t.Run("open and close hug their neighbors", func(t *testing.T) {
		s := New(0).Open("[").Word("-f").Close("]")
		assert.Equal(t, "[-f]", s.WrapString(0, false))
		assert.Equal(t, 1, s.Count())
	})

	t.Run("merge does not cross a break", func(t *testing.T) {
		s := New(0).Word("a").Merge().Break(1).Word("b")
		assert.Equal(t, "a\nb", s.WrapString(0, false))
	})
}

func TestStyled(t *testing.T) {
	t.Run("sequences travel with the word", func(t *testing.T) {
		s := New(0).Styled(styles.Of(styles.Bold), "demo")
		require.Equal(t, 1, s.Count())
		assert.Equal(t, 4, s.Len())
		assert.Equal(t, "\x1b[1mdemo\x1b[0m", s.WrapString(0, true))
	})

	t.Run("stripped when styles are off", func(t *testing.T) {
		s := New(0).Styled(styles.Of(styles.Red), "demo")
		assert.Equal(t, "demo", s.WrapString(0, false))
	})

	t.Run("empty style falls back to a plain word", func(t *testing.T) {
		s := New(0).Styled(styles.Of(), "demo")
		assert.Equal(t, "demo", s.WrapString(0, true))
	})
}

func TestSeq(t *testing.T) {
	s := New(0).Word("a").Seq(styles.EraseLine()).Word("b")

	t.Run("emitted only with styles", func(t *testing.T) {
		assert.Equal(t, "a\x1b[0K b", s.WrapString(0, true))
		assert.Equal(t, "a b", s.WrapString(0, false))
	})

	t.Run("occupies no columns", func(t *testing.T) {
		assert.Equal(t, 3, s.Len())
	})
}

func TestBreak(t *testing.T) {
	t.Run("consecutive breaks coalesce", func(t *testing.T) {
		s := New(0).Word("a").Break(1).Break(1).Word("b")
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, "a\n\nb", s.WrapString(0, false))
	})

	t.Run("len stops at the first break", func(t *testing.T) {
		s := New(0).Word("first").Break(1).Word("second line")
		assert.Equal(t, 5, s.Len())
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		s := New(0).Word("a").Break(0)
		assert.Equal(t, 1, s.Count())
	})
}

func TestAppend(t *testing.T) {
	t.Run("copies segments and separates words", func(t *testing.T) {
		a := New(0).Word("left")
		b := New(0).Word("right")
		a.Append(b)
		assert.Equal(t, "left right", a.WrapString(0, false))
	})

	t.Run("pending merge joins the first appended segment", func(t *testing.T) {
		a := New(0).Word("<").Merge()
		b := New(0).Word("param").Close(">")
		a.Append(b)
		assert.Equal(t, "<param>", a.WrapString(0, false))
	})

	t.Run("carries over the other string's pending merge", func(t *testing.T) {
		a := New(0).Word("x").Merge()
		b := New(0)
		a.Append(b).Word("y")
		assert.Equal(t, "xy", a.WrapString(0, false))
	})
}
