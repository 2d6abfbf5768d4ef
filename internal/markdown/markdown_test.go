package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render("   ", 40))
}

func TestRender_KeepsText(t *testing.T) {
	out := Render("**Peak** SNES storytelling", 40)
	assert.Contains(t, out, "Peak")
	assert.Contains(t, out, "SNES")
}

func TestRender_CachesByWidth(t *testing.T) {
	Render("a", 33)
	first, ok := rendererCache.Load(33)
	assert.True(t, ok)

	Render("b", 33)
	second, _ := rendererCache.Load(33)
	assert.Same(t, first, second)
}
