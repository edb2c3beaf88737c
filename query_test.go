package tinyargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	t.Parallel()

	t.Run("short and long names are interchangeable", func(t *testing.T) {
		t.Parallel()

		r := New()
		r.Declare(Arg{Short: "-n", Long: "--name", Kind: Value, Description: "your name"})
		r.Declare(Arg{Short: "-v", Long: "--verbose", Kind: Flag, Description: "verbose output"})
		require.True(t, r.Parse([]string{"prog", "--name", "Alice", "-v"}))

		for _, name := range []string{"-n", "--name"} {
			got, present := r.GetValue(name)
			require.True(t, present, name)
			assert.Equal(t, "Alice", got, name)
			assert.True(t, r.IsFlagSet(name), name)
			assert.True(t, r.Has(name), name)
		}
		for _, name := range []string{"-v", "--verbose"} {
			assert.True(t, r.IsFlagSet(name), name)
			assert.True(t, r.Has(name), name)
		}
	})
	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		r := New()
		r.Declare(Arg{Short: "-v", Kind: Flag, Description: "verbose output"})
		require.True(t, r.Parse([]string{"prog", "-v"}))

		got, present := r.GetValue("--nope")
		assert.Empty(t, got)
		assert.False(t, present)
		assert.False(t, r.IsFlagSet("--nope"))
		assert.False(t, r.Has("--nope"))
	})
	t.Run("unparsed declarations report nothing", func(t *testing.T) {
		t.Parallel()

		r := New()
		r.Declare(Arg{Short: "-n", Long: "--name", Kind: Value, Description: "your name"})

		_, present := r.GetValue("-n")
		assert.False(t, present)
		assert.False(t, r.IsFlagSet("--name"))
		assert.False(t, r.Has("-n"))
	})
	t.Run("explicit empty value counts as captured", func(t *testing.T) {
		t.Parallel()

		r := New()
		r.Declare(Arg{Short: "-a", Kind: Value, Description: "value option"})
		require.True(t, r.Parse([]string{"prog", "-a", ""}))

		got, present := r.GetValue("-a")
		assert.True(t, present)
		assert.Empty(t, got)
		assert.True(t, r.Has("-a"))
	})
	t.Run("has reflects captured value for value options", func(t *testing.T) {
		t.Parallel()

		r := New()
		r.Declare(Arg{Short: "-a", Kind: Value, Description: "with value"})
		r.Declare(Arg{Short: "-b", Kind: Value, Description: "without value"})
		require.True(t, r.Parse([]string{"prog", "-a", "one", "-b"}))

		assert.True(t, r.Has("-a"))
		assert.True(t, r.IsFlagSet("-a"))

		// -b was seen but captured nothing: set without value.
		assert.False(t, r.Has("-b"))
		assert.True(t, r.IsFlagSet("-b"))
	})
}

func TestSuggestFor(t *testing.T) {
	t.Parallel()

	r := New()
	r.Declare(Arg{Short: "-v", Long: "--verbose", Kind: Flag, Description: "verbose output"})
	r.Declare(Arg{Short: "-n", Long: "--name", Kind: Value, Description: "your name"})

	t.Run("close match", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, r.SuggestFor("--verbos"), "--verbose")
		assert.Contains(t, r.SuggestFor("--nmae"), "--name")
	})
	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, r.SuggestFor("completely-unrelated"))
	})
}
