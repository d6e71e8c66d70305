package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleSequence(t *testing.T) {
	t.Run("empty style renders nothing", func(t *testing.T) {
		assert.Equal(t, Sequence(""), Of().Sequence())
	})

	t.Run("single attribute", func(t *testing.T) {
		assert.Equal(t, Sequence("\x1b[1m"), Of(Bold).Sequence())
	})

	t.Run("multiple attributes joined by semicolons", func(t *testing.T) {
		seq := Of(Bold, Red, BgYellow).Sequence()
		assert.Equal(t, Sequence("\x1b[1;31;43m"), seq)
	})

	t.Run("combining styles is append", func(t *testing.T) {
		base := Of(Faint)
		combined := append(base, Magenta)
		assert.Equal(t, Sequence("\x1b[2;35m"), combined.Sequence())
	})
}

func TestReset(t *testing.T) {
	assert.Equal(t, Sequence("\x1b[0m"), Reset)
}

func TestCursorSequences(t *testing.T) {
	assert.Equal(t, Sequence("\x1b[3A"), MoveUp(3))
	assert.Equal(t, Sequence("\x1b[2B"), MoveDown(2))
	assert.Equal(t, Sequence("\x1b[10C"), MoveForward(10))
	assert.Equal(t, Sequence("\x1b[1D"), MoveBack(1))
	assert.Equal(t, Sequence("\x1b[5G"), Column(5))
	assert.Equal(t, Sequence("\x1b[0K"), EraseLine())
	assert.Equal(t, Sequence("\x1b[0J"), EraseDisplay())
}

func TestStrip(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", Strip("hello"))
	})

	t.Run("removes SGR sequences", func(t *testing.T) {
		styled := string(Of(Bold, Green).Sequence()) + "word" + string(Reset)
		assert.Equal(t, "word", Strip(styled))
	})

	t.Run("removes cursor movement", func(t *testing.T) {
		assert.Equal(t, "ab", Strip("a"+string(Column(12))+"b"))
	})

	t.Run("removes two-byte escape", func(t *testing.T) {
		assert.Equal(t, "xy", Strip("x\x1b7y"))
	})

	t.Run("text interleaved with several sequences", func(t *testing.T) {
		in := string(Of(Red).Sequence()) + "-f" + string(Reset) + ", " +
			string(Of(Red).Sequence()) + "--flag" + string(Reset)
		require.Equal(t, "-f, --flag", Strip(in))
	})
}
