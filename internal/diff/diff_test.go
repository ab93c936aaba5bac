package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Run("rewritten input", func(t *testing.T) {
		r := Compute("2:30", "2h30m", "input", "expanded")
		assert.True(t, r.Changed)
		assert.Equal(t, "- 2:30\n+ 2h30m\n", r.Diff)
		assert.Equal(t, "2[-:-]{+h+}30{+m+}", r.Inline)
		assert.Equal(t, "--- input\n+++ expanded\n- 2:30\n+ 2h30m\n", r.Format(false))
	})

	t.Run("unchanged input", func(t *testing.T) {
		r := Compute("1d", "1d", "input", "expanded")
		assert.False(t, r.Changed)
		assert.Equal(t, "  1d\n", r.Diff)
		assert.Equal(t, "1d", r.Inline)
	})

	t.Run("long equal runs collapse", func(t *testing.T) {
		old := "a\nb\nc\nd\ne\nf\ng\nh\n"
		r := Compute(old, strings.Replace(old, "h", "H", 1), "a", "b")
		assert.Equal(t, "  a\n  b\n  c\n  ...\n  e\n  f\n  g\n- h\n+ H\n", r.Diff)
	})
}

func TestInline(t *testing.T) {
	assert.Equal(t, "ab[-c-]{+d+}", Inline("abc", "abd", false))
	assert.Equal(t, "ab"+red+"c"+reset+green+"d"+reset, Inline("abc", "abd", true))
	assert.Equal(t, "same", Inline("same", "same", false))
}

func TestColourise(t *testing.T) {
	out := Colourise("- old\n+ new\n  same\n")
	assert.Equal(t, red+"- old"+reset+"\n"+green+"+ new"+reset+"\n  same\n", out)

	r := Compute("x", "y", "input", "expanded")
	assert.Contains(t, r.Format(true), red+"- x"+reset)
}
