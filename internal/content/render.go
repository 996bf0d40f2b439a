package content

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"
)

// RenderOptions tune Render. Zero values pick the defaults.
type RenderOptions struct {
	// MarkdownStyle is a glamour standard style name.
	MarkdownStyle string
	// CodeStyle is a chroma style name.
	CodeStyle string
	// Formatter is a chroma formatter name.
	Formatter string
}

// DefaultRenderOptions are used by Render.
var DefaultRenderOptions = RenderOptions{
	MarkdownStyle: "dark",
	CodeStyle:     "monokai",
	Formatter:     "terminal256",
}

// Render renders doc for a body width columns wide.
func Render(doc Document, width int) string {
	return RenderWith(doc, width, DefaultRenderOptions)
}

// RenderWith renders doc with explicit options. Rendering never fails: if a
// renderer errors the raw text is returned.
func RenderWith(doc Document, width int, opts RenderOptions) string {
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = DefaultRenderOptions.MarkdownStyle
	}
	if opts.CodeStyle == "" {
		opts.CodeStyle = DefaultRenderOptions.CodeStyle
	}
	if opts.Formatter == "" {
		opts.Formatter = DefaultRenderOptions.Formatter
	}

	src := string(doc.Data)
	switch doc.Kind {
	case Markdown:
		return renderMarkdown(src, width, opts.MarkdownStyle)
	case JSON:
		// Pretty-print JSON before highlighting
		return highlight(string(pretty.Pretty(doc.Data)), "json", width, opts)
	case Code:
		return highlight(src, doc.Lexer, width, opts)
	default:
		return wrapText(src, width)
	}
}

func renderMarkdown(src string, width int, style string) string {
	ropts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		ropts = append(ropts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(ropts...)
	if err != nil {
		return wrapText(src, width)
	}
	out, err := r.Render(src)
	if err != nil {
		return wrapText(src, width)
	}
	return strings.Trim(out, "\n")
}

// highlight applies chroma syntax highlighting to source code.
func highlight(source, lexerName string, width int, opts RenderOptions) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get(opts.CodeStyle)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get(opts.Formatter)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return wrapText(source, width)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return wrapText(source, width)
	}
	return wrapText(strings.TrimRight(buf.String(), "\n"), width)
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
