package formatter

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdOnce     sync.Once
	mdMu       sync.Mutex
	mdRenderer *glamour.TermRenderer
)

// RenderMarkdown renders an answer for the terminal. Answers are authored as
// Markdown (the workshop sections carry headings and lists). When the
// renderer cannot be built or fails, the text is wrapped as plain prose.
func RenderMarkdown(text string) string {
	mdOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(textWrapWidth),
		)
		if err == nil {
			mdRenderer = r
		}
	})
	if mdRenderer != nil {
		mdMu.Lock()
		out, err := mdRenderer.Render(text)
		mdMu.Unlock()
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return indentWrapped(text, 2, textWrapWidth)
}
