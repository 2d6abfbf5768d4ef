// Package markdown renders review text for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderers are cached by width; building one loads a full style sheet
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Render formats markdown wrapped at width. If rendering fails the source is
// returned unchanged.
func Render(source string, width int) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return source
	}
	out, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimSpace(out)
}
