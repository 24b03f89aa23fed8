package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrUnsupportedType is returned for file extensions the extractor cannot
// handle. Callers surface it as a client error, not a server fault.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor turns uploaded files into plain text for chunking.
// Markdown is flattened through its AST so formatting syntax does not leak
// into chunks; plain text passes through after a UTF-8 check.
type Extractor struct {
	parser goldmark.Markdown
}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Extract returns the text content of the file. The extension decides the
// format; extraction failures are upstream errors and are not retried here.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("file %s is not valid UTF-8 text", filename)
		}
		return string(data), nil
	case ".md", ".markdown":
		return e.flattenMarkdown(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
}

// flattenMarkdown parses markdown and reassembles the plain text, keeping
// paragraph breaks so the chunker's separator priority still applies.
func (e *Extractor) flattenMarkdown(content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	reader := text.NewReader(content)
	doc := e.parser.Parser().Parse(reader)

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n\n") {
				b.WriteString("\n\n")
			}
		case *ast.Text:
			b.Write(node.Segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.CodeBlock:
			writeLines(&b, node, content)
		case *ast.FencedCodeBlock:
			writeLines(&b, node, content)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk markdown AST: %w", err)
	}

	return strings.TrimSpace(b.String()), nil
}

func writeLines(b *strings.Builder, n ast.Node, content []byte) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(content))
	}
}
