package render

import "github.com/gdamore/tcell/v2"

// Renderer is implemented by components with visual output
type Renderer interface {
	Render(ctx Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RenderPriority determines draw order; lower renders first
type RenderPriority int

const (
	PriorityDial    RenderPriority = 100
	PriorityHands   RenderPriority = 200
	PriorityDigital RenderPriority = 300
	PriorityUI      RenderPriority = 400
	PriorityOverlay RenderPriority = 500
)
