// Package components holds reusable rendering pieces shared by the TUI and CLI.
package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

type DescriptionProps struct {
	Description string
	Width       int
	// Style names a glamour standard style; empty picks one from the terminal
	Style string
	// Subtle colors the placeholder shown for an empty description
	Subtle string
}

type rendererKey struct {
	width int
	style string
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	// Check cache first
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	// Create new renderer
	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	// Store in cache
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderDescription renders markdown, falling back to the raw text when
// glamour fails
func RenderDescription(props DescriptionProps) string {
	if props.Description != "" {
		renderer, err := getRenderer(props.Width, props.Style)
		if err == nil {
			renderedDesc, err := renderer.Render(props.Description)
			if err == nil {
				return strings.TrimSpace(renderedDesc)
			}
		}
		return wordwrap.String(props.Description, props.Width)
	}

	subtle := props.Subtle
	if subtle == "" {
		subtle = "#585858"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtle)).
		Italic(true).
		Render("No description")
}
