// Package view declares the template-rendering contract the form helper
// stores and exposes. The helper never renders on its own; rendering
// layers pull the engine back out through Helper.Views.
package view

import "io"

// Renderer mirrors the github.com/goliatone/go-template engine contract.
// Render resolves a named template; RenderString parses inline content.
// Both return the rendered output and optionally tee it into the supplied
// writers.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
}
