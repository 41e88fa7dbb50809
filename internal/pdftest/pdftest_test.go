package pdftest

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"testing"
)

// buildPDF assembles a minimal valid PDF with one page per content
// stream. Streams are embedded uncompressed.
func buildPDF(contentStreams [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	var kids []string
	for i := range contentStreams {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+i*2))
	}
	fmt.Fprintf(&buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(contentStreams))

	next := 3
	for _, cs := range contentStreams {
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R >>\nendobj\n",
			next, next+1)
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", next+1, len(cs))
		buf.Write(cs)
		buf.WriteString("\nendstream\nendobj\n")
		next += 2
	}

	buf.WriteString("trailer\n<< /Root 1 0 R >>\n%%EOF\n")
	return buf.Bytes()
}

func TestIsPDF(t *testing.T) {
	if !IsPDF(buildPDF([][]byte{[]byte("BT ET")})) {
		t.Error("built PDF not recognized")
	}
	if IsPDF([]byte("<html></html>")) {
		t.Error("HTML recognized as PDF")
	}
	if IsPDF(nil) {
		t.Error("empty input recognized as PDF")
	}
}

func TestPageCount(t *testing.T) {
	data := buildPDF([][]byte{
		[]byte("BT (Page one) Tj ET"),
		[]byte("BT (Page two) Tj ET"),
		[]byte("BT (Page three) Tj ET"),
	})
	if got := PageCount(data); got != 3 {
		t.Errorf("PageCount = %d, want 3", got)
	}
}

func TestTextTjOperator(t *testing.T) {
	data := buildPDF([][]byte{
		[]byte("BT /F1 12 Tf 100 700 Td (Hello, World!) Tj ET"),
	})
	if got := Text(data); !strings.Contains(got, "Hello, World!") {
		t.Errorf("Text = %q, want it to contain %q", got, "Hello, World!")
	}
}

func TestTextTJArray(t *testing.T) {
	data := buildPDF([][]byte{
		[]byte("BT /F1 14 Tf 50 750 Td [(Net) -2000 (Pay)] TJ ET"),
	})
	got := Text(data)
	if !strings.Contains(got, "Net") || !strings.Contains(got, "Pay") {
		t.Errorf("Text = %q, want 'Net' and 'Pay'", got)
	}
}

func TestTextEscapes(t *testing.T) {
	data := buildPDF([][]byte{
		[]byte(`BT (Salary \(net\)) Tj ET`),
	})
	if got := Text(data); !strings.Contains(got, "Salary (net)") {
		t.Errorf("Text = %q, want %q", got, "Salary (net)")
	}
}

func TestTextIgnoresNonShownStrings(t *testing.T) {
	// The string is an operand of a non-text operator and must not leak
	// into the output.
	data := buildPDF([][]byte{
		[]byte("BT (visible) Tj ET (invisible) Tz"),
	})
	got := Text(data)
	if !strings.Contains(got, "visible") {
		t.Errorf("Text = %q, want 'visible'", got)
	}
	if strings.Contains(got, "invisible") {
		t.Errorf("Text = %q, must not contain 'invisible'", got)
	}
}

func TestTextCompressedStream(t *testing.T) {
	cs := []byte("BT /F1 12 Tf 100 700 Td (Compressed payroll) Tj ET")

	var z bytes.Buffer
	w := zlib.NewWriter(&z)
	if _, err := w.Write(cs); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	fmt.Fprintf(&buf, "1 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n", z.Len())
	buf.Write(z.Bytes())
	buf.WriteString("\nendstream\nendobj\n%%EOF\n")

	if got := Text(buf.Bytes()); !strings.Contains(got, "Compressed payroll") {
		t.Errorf("Text = %q, want %q", got, "Compressed payroll")
	}
}

func TestContains(t *testing.T) {
	data := buildPDF([][]byte{
		[]byte("BT [(TOTAL) -2000 (DEDUCTION)] TJ ET"),
	})
	if !Contains(data, "TOTAL DEDUCTION") {
		t.Errorf("Contains(%q) = false, want true; text = %q", "TOTAL DEDUCTION", Text(data))
	}
	if Contains(data, "GROSS SALARY") {
		t.Error("Contains reported text that is not present")
	}
}
