package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

const defaultCodeTheme = "monokai"

var markdownCodeTheme = defaultCodeTheme

// ConfigureMarkdownCodeTheme selects the chroma theme for code blocks.
// Unknown themes fall back to the default.
func ConfigureMarkdownCodeTheme(theme string) {
	name := strings.ToLower(strings.TrimSpace(theme))
	if _, ok := styles.Registry[name]; !ok {
		name = defaultCodeTheme
	}
	markdownCodeTheme = name
}

// RenderMarkdown renders markdown content for terminal display.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	return strings.TrimRight(rendered, "\n") + "\n", nil
}

// markdownStyle styles the grammar reference. Vocabulary words are inline
// code, so code spans take the accent color when one is set.
func markdownStyle() ansi.StyleConfig {
	muted := mdStringPtr("8")
	var accent *string
	code := mdStringPtr("203")
	if color, ok := AccentColor(); ok {
		accent = mdStringPtr(color)
		code = accent
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				BlockSuffix: "\n",
			},
			Margin: mdUintPtr(MarkdownRenderMargin),
		},
		Paragraph: ansi.StyleBlock{},
		Text:      ansi.StylePrimitive{},
		List:      ansi.StyleList{LevelIndent: 2},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       accent,
				Bold:        mdBoolPtr(true),
			},
		},
		H1:          ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Underline: mdBoolPtr(true)}},
		H2:          ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "▸ "}},
		H3:          ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: muted}},
		Emph:        ansi.StylePrimitive{Italic: mdBoolPtr(true)},
		Strong:      ansi.StylePrimitive{Bold: mdBoolPtr(true)},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: code},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: mdStringPtr("244")},
				Margin:         mdUintPtr(2),
			},
			Theme: markdownCodeTheme,
		},
		Table: ansi.StyleTable{
			CenterSeparator: mdStringPtr("│"),
			ColumnSeparator: mdStringPtr("│"),
			RowSeparator:    mdStringPtr("─"),
		},
	}
}

func mdBoolPtr(v bool) *bool { return &v }

func mdStringPtr(v string) *string { return &v }

func mdUintPtr(v uint) *uint { return &v }
