package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestTextPlain(t *testing.T) {
	got, err := Text(context.Background(), []byte("Jane Doe, Python, 5 years at Acme"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Jane Doe, Python, 5 years at Acme" {
		t.Fatalf("text = %q", got)
	}
}

func TestTextPlainByExtension(t *testing.T) {
	// Browsers sometimes upload text files as octet-stream.
	got, err := Text(context.Background(), []byte("hello"), "application/octet-stream", "notes.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hello" {
		t.Fatalf("text = %q", got)
	}
}

func TestTextUnsupportedFormat(t *testing.T) {
	_, err := Text(context.Background(), []byte("GIF89a"), "image/gif", "cat.gif")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text(context.Background(), []byte("not a pdf at all"), "application/pdf", "broken.pdf")
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("err = %v, want ErrParseFailure", err)
	}
}

func TestTextCorruptDOCX(t *testing.T) {
	// A zip without word/document.xml is not a DOCX.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), mimeDOCX, "broken.docx")
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("err = %v, want ErrParseFailure", err)
	}
}

func TestTextLegacyDocSurfacesParseFailure(t *testing.T) {
	_, err := Text(context.Background(), []byte{0xd0, 0xcf, 0x11, 0xe0}, "application/msword", "old.doc")
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("err = %v, want ErrParseFailure", err)
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Python developer</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	want := "Jane Doe\nPython developer"
	if got != want {
		t.Fatalf("stripDocxXML = %q, want %q", got, want)
	}
}
