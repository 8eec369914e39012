package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func scaffold(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")

	dirs := []string{
		filepath.Join(root, "src"),
		filepath.Join(root, "data", "raw"),
	}
	files := []string{
		filepath.Join(root, "README.md"),
		filepath.Join(root, "src", "main.go"),
		filepath.Join(root, "data", "raw", "deep.txt"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestGenerate(t *testing.T) {
	root := scaffold(t)

	outline, err := Generate(root, 3)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := "" +
		"- **project/**\n" +
		"  - README.md\n" +
		"  - **data/**\n" +
		"    - **raw/**\n" +
		"  - **src/**\n" +
		"    - main.go\n"
	if outline != want {
		t.Errorf("Outline mismatch.\nGot:\n%s\nWant:\n%s", outline, want)
	}
}

func TestGenerate_DepthLimit(t *testing.T) {
	root := scaffold(t)

	outline, err := Generate(root, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if outline != "- **project/**\n" {
		t.Errorf("Expected root-only outline, got:\n%s", outline)
	}

	// deep.txt sits three levels down, outside a depth-3 walk
	outline, err = Generate(root, 3)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if strings.Contains(outline, "deep.txt") {
		t.Errorf("Depth limit not honored:\n%s", outline)
	}
}

func TestGenerate_FileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	outline, err := Generate(path, 3)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if outline != "- single.txt\n" {
		t.Errorf("Unexpected outline for file root: %q", outline)
	}
}

func TestGenerate_MissingRoot(t *testing.T) {
	if _, err := Generate(filepath.Join(t.TempDir(), "absent"), 3); err == nil {
		t.Error("Expected error for missing root")
	}
}

func TestDocument(t *testing.T) {
	doc := Document("- **p/**\n")
	if !strings.HasPrefix(doc, DefaultHeading+"\n\n") {
		t.Errorf("Document missing heading: %q", doc)
	}
	if !strings.HasSuffix(doc, "\n") {
		t.Errorf("Document missing trailing newline: %q", doc)
	}
}

func TestToHTML(t *testing.T) {
	html := string(ToHTML(Document("- **src/**\n  - main.go\n")))

	if !strings.Contains(html, "<ul>") {
		t.Errorf("Expected a list in HTML output:\n%s", html)
	}
	if !strings.Contains(html, "<strong>src/</strong>") {
		t.Errorf("Expected bold directory name in HTML output:\n%s", html)
	}
}
