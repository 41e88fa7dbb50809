package pdfgen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"time"
)

// Document holds a rendered PDF and the filename it should be served
// under. It exists only for the duration of building a response; nothing
// persists it.
//
// Methods never modify the underlying data, so they may be called more
// than once.
type Document struct {
	data     []byte
	filename string
}

// NewDocument wraps rendered PDF bytes. If filename is empty, a
// "{templateName}-{epochMillis}.pdf" name is generated.
func NewDocument(data []byte, templateName, filename string) *Document {
	if filename == "" {
		filename = DefaultFilename(templateName)
	}
	return &Document{data: data, filename: filename}
}

// DefaultFilename returns the generated attachment name for a template.
func DefaultFilename(templateName string) string {
	return fmt.Sprintf("%s-%d.pdf", templateName, time.Now().UnixMilli())
}

// Bytes returns the raw PDF content.
func (d *Document) Bytes() []byte {
	return d.data
}

// Filename returns the suggested attachment filename.
func (d *Document) Filename() string {
	return d.filename
}

// Len returns the size of the PDF in bytes.
func (d *Document) Len() int {
	return len(d.data)
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
func (d *Document) Base64() string {
	return base64.StdEncoding.EncodeToString(d.data)
}

// Reader returns a [*bytes.Reader] over the PDF content.
func (d *Document) Reader() *bytes.Reader {
	return bytes.NewReader(d.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed.
func (d *Document) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, d.data, perm)
}
