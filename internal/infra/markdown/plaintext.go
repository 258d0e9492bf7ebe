// Package markdown converts markdown journal files into the plain text the
// analyzer scores, and reads their YAML front matter.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// FrontMatter holds the front matter keys verve understands
type FrontMatter struct {
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
}

// Document is a parsed markdown file
type Document struct {
	Meta    FrontMatter
	HasMeta bool
	Text    string
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
}

// Parse reads optional YAML front matter and flattens the body to plain text.
// Blocks are separated by newlines, soft line breaks become spaces.
func Parse(source []byte) (Document, error) {
	ctx := parser.NewContext()
	root := newMarkdown().Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	body, err := plainText(root, source)
	if err != nil {
		return Document{}, fmt.Errorf("failed to extract text: %w", err)
	}

	doc := Document{Text: body}
	if fm := frontmatter.Get(ctx); fm != nil {
		if err := fm.Decode(&doc.Meta); err != nil {
			return Document{}, fmt.Errorf("failed to decode front matter: %w", err)
		}
		doc.HasMeta = true
	}
	return doc, nil
}

func plainText(root ast.Node, source []byte) (string, error) {
	var blocks []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			blocks = append(blocks, s)
		}
		current.Reset()
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				flush()
			}
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.Text:
			current.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				current.WriteByte(' ')
			}
		case *ast.String:
			current.Write(v.Value)
		case *ast.AutoLink:
			current.Write(v.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock, *ast.FencedCodeBlock, *ast.CodeBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	flush()

	return strings.Join(blocks, "\n"), nil
}
