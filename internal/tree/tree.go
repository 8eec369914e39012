package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calfit/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// DefaultHeading precedes the outline in generated documents
const DefaultHeading = "### File structure"

// Generate serializes the directory hierarchy rooted at root into a
// markdown outline. Directories appear as "- **name/**", files as "- name",
// indented two spaces per level with children sorted by name. maxDepth
// limits recursion: a maxDepth of 1 lists only the root itself. Symlinked
// directories are listed but not descended into.
func Generate(root string, maxDepth int) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", errors.IOFailure(root, err)
	}

	var b strings.Builder
	if err := walk(&b, root, filepath.Base(filepath.Clean(root)), info.IsDir(), maxDepth, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func walk(b *strings.Builder, path, name string, isDir bool, maxDepth, depth int) error {
	if depth >= maxDepth {
		return nil
	}

	indent := strings.Repeat("  ", depth)
	if !isDir {
		fmt.Fprintf(b, "%s- %s\n", indent, name)
		return nil
	}
	fmt.Fprintf(b, "%s- **%s/**\n", indent, name)

	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.IOFailure(path, err)
	}
	// os.ReadDir already sorts by filename
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if err := walk(b, child, entry.Name(), entry.IsDir(), maxDepth, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Document wraps an outline with its heading, ready to write to disk
func Document(outline string) string {
	return DefaultHeading + "\n\n" + outline + "\n"
}

// ToHTML renders a markdown outline document as HTML
func ToHTML(doc string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(doc), p, renderer)
}
