package formatter

import (
	"fmt"
	"strings"

	"github.com/LinFrancis/aucca-app/internal/knowledge"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree using box-drawing
// connectors. Level 0 items are bold; detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.Level == 0 {
			title = Bold(title)
		}
		lines[idx].content = StyleDim.Render(prefix) + title
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		if w := lipgloss.Width(lines[idx].content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(li.content)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}

// FormatTopics lists the knowledge categories in priority order with their
// concept counts. With expand, each category shows its concept keys.
func FormatTopics(kb *knowledge.Base, expand bool) string {
	var items []TreeItem
	for _, c := range knowledge.Categories() {
		members := kb.Members(c)
		items = append(items, TreeItem{
			Title:  fmt.Sprintf("%s %s", c.Label(), Dim("("+c.String()+")")),
			Detail: fmt.Sprintf("%d", len(members)),
		})
		if !expand {
			continue
		}
		for i, m := range members {
			items = append(items, TreeItem{
				Title:  Capitalize(m.Key),
				Level:  1,
				IsLast: i == len(members)-1,
			})
		}
	}
	return Header("Temas") + "\n" + RenderTree(items)
}

// FormatTopic lists the concept keys of one category, numbered so the shell
// can open one by number.
func FormatTopic(c knowledge.Category, members []knowledge.Concept) string {
	var b strings.Builder
	b.WriteString(Header(c.Label()) + "\n")
	if kw := c.Keywords(); len(kw) > 0 {
		b.WriteString(Dim("  Palabras clave: "+strings.Join(kw, ", ")) + "\n")
	}
	if len(members) == 0 {
		b.WriteString(Dim("  Este tema no tiene conceptos.") + "\n")
		return b.String()
	}
	for i, m := range members {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%2d.", i+1)), Capitalize(m.Key)))
	}
	return b.String()
}
