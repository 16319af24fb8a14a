package upload

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("  Photosynthesis converts light into energy.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path, "txt")
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "Photosynthesis converts light into energy." {
		t.Errorf("unexpected text %q", got)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	if _, err := ExtractText("whatever.png", "png"); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestExtractDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lecture.docx")
	writeDocx(t, path, `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>The mitochondria is the </w:t></w:r><w:r><w:t>powerhouse of the cell.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Cells divide by mitosis.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := ExtractText(path, "docx")
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	if !strings.Contains(got, "powerhouse of the cell") {
		t.Errorf("missing first paragraph, got %q", got)
	}
	if !strings.Contains(got, "Cells divide by mitosis.") {
		t.Errorf("missing second paragraph, got %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 paragraphs, got %d: %q", len(lines), got)
	}
	if lines[0] != "The mitochondria is the powerhouse of the cell." {
		t.Errorf("runs within a paragraph should join without separators, got %q", lines[0])
	}
}

func TestExtractDocxMissingBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<styles/>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := ExtractText(path, "docx"); err == nil {
		t.Error("expected error when document.xml is absent")
	}
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}
