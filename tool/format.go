package tool

import (
	"fmt"
	"strings"

	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/mark3labs/mcp-go/mcp"
)

// FormatResult renders a successful search as the text block returned to the
// host. model is only mentioned when the caller picked one.
func FormatResult(res perplexity.SearchResult, model perplexity.Model) string {
	var b strings.Builder

	b.WriteString(`Search results for: "` + res.Query + `"`)
	if model != "" {
		b.WriteString(" using model: " + string(model))
	}
	b.WriteString("\n\n")

	switch {
	case res.Answer != "":
		b.WriteString(res.Answer)
	case len(res.Results) > 0:
		for i, item := range res.Results {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
			fmt.Fprintf(&b, "   URL: %s\n", item.URL)
			fmt.Fprintf(&b, "   %s\n\n", item.Snippet)
		}
	default:
		b.WriteString("No results found.")
	}

	return b.String()
}

// Texts returns the text blocks of a tool result in order.
func Texts(res *mcp.CallToolResult) []string {
	if res == nil {
		return nil
	}

	var texts []string
	for _, c := range res.Content {
		if t, ok := c.(mcp.TextContent); ok {
			texts = append(texts, t.Text)
		}
	}
	return texts
}
