package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/chorin/internal/config"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// HelpMarkdown builds the help text for the configured keys
func HelpMarkdown(keys config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Chorin\n\n")
	b.WriteString("Every chore starts out due. Resolve it one of three ways and it leaves the list for good.\n\n")
	b.WriteString("## Resolving\n\n")
	fmt.Fprintf(&b, "- `%s` choose from complete, obviate, abrogate or cancel\n", keys.ResolveChore)
	fmt.Fprintf(&b, "- `%s` complete: the chore got done\n", keys.CompleteChore)
	fmt.Fprintf(&b, "- `%s` obviate: the chore no longer needs doing\n", keys.ObviateChore)
	fmt.Fprintf(&b, "- `%s` abrogate: the chore was called off\n\n", keys.AbrogateChore)
	b.WriteString("Quick keys ask `[y]es [n]o` before anything moves.\n\n")
	b.WriteString("## Moving around\n\n")
	fmt.Fprintf(&b, "- `%s` / `up` previous chore\n", keys.PrevChore)
	fmt.Fprintf(&b, "- `%s` / `down` next chore\n", keys.NextChore)
	fmt.Fprintf(&b, "- `%s` toggle this help\n", keys.ShowHelp)
	fmt.Fprintf(&b, "- `%s` quit\n", keys.Quit)
	return b.String()
}

// HelpProps carries what the help overlay needs
type HelpProps struct {
	Keys  config.KeyMappings
	Width int
}

// RenderHelp renders the help overlay body as terminal markdown.
// Falls back to the raw markdown when glamour cannot render it.
func RenderHelp(props HelpProps) string {
	md := HelpMarkdown(props.Keys)
	renderer, err := getRenderer(props.Width)
	if err == nil {
		rendered, err := renderer.Render(md)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return md
}
