package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseColor_ExplicitModes(t *testing.T) {
	assert.True(t, UseColor("always", nil))
	assert.False(t, UseColor("never", nil))
}

func TestUseColor_NoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, UseColor("auto", nil))
}

func TestUseColor_NilFileIsPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, UseColor("auto", nil))
}

func TestStylesFor(t *testing.T) {
	// "always" must produce the colored styles regardless of destination.
	styles := StylesFor("always", nil)
	assert.Equal(t, DefaultStyles(), styles)

	styles = StylesFor("never", nil)
	assert.Equal(t, NoColorStyles(), styles)
}
