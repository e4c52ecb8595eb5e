// Package reference indexes the embedded markdown reference by section.
package reference

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/tempio/docs"
	"github.com/aidanlsb/tempio/internal/slugs"
)

// GrammarPath is the grammar reference within docs.FS.
const GrammarPath = "reference/grammar.md"

// Section is a heading and the markdown up to the next heading of the same
// or a higher level.
type Section struct {
	Level int    `json:"level" yaml:"level"`
	Title string `json:"title" yaml:"title"`
	Slug  string `json:"slug" yaml:"slug"`
	Body  string `json:"-" yaml:"-"`
}

// Grammar loads the embedded grammar reference.
func Grammar() (string, error) {
	data, err := fs.ReadFile(docs.FS, GrammarPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", GrammarPath, err)
	}
	return string(data), nil
}

// Sections splits content into sections using goldmark's heading nodes.
func Sections(content string) []Section {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	type heading struct {
		level int
		title string
		start int
	}
	var headings []heading

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		headings = append(headings, heading{
			level: h.Level,
			title: headingText(h, source),
			start: lineStart(content, h.Lines().At(0).Start),
		})
		return ast.WalkSkipChildren, nil
	})

	sections := make([]Section, 0, len(headings))
	for i, h := range headings {
		end := len(content)
		for _, next := range headings[i+1:] {
			if next.level <= h.level {
				end = next.start
				break
			}
		}
		sections = append(sections, Section{
			Level: h.level,
			Title: h.title,
			Slug:  slugs.HeadingSlug(h.title),
			Body:  strings.TrimRight(content[h.start:end], "\n") + "\n",
		})
	}
	return sections
}

// headingText joins the text of every inline under h, so code spans and
// emphasis keep their words.
func headingText(h *ast.Heading, source []byte) string {
	var title strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			title.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				title.WriteByte(' ')
			}
		case *ast.String:
			title.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title.String())
}

// Find returns the section whose slug matches name.
func Find(sections []Section, name string) (Section, bool) {
	want := slugs.HeadingSlug(name)
	for _, s := range sections {
		if s.Slug == want {
			return s, true
		}
	}
	return Section{}, false
}

// lineStart returns the offset of the line containing offset.
func lineStart(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return strings.LastIndexByte(content[:offset], '\n') + 1
}
