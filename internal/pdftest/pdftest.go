// Package pdftest provides just enough PDF inspection for tests:
// verifying that bytes are a PDF, counting page objects, and extracting
// text drawn with literal strings through Tj and TJ, from plain or
// flate-compressed content streams.
//
// It is not a general PDF reader. Text written with subset-font glyph
// IDs (as Chrome's exporter does) is not decoded; text assertions are
// for hand-built fixtures.
package pdftest

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strings"
)

// IsPDF reports whether data starts with the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

var pageRe = regexp.MustCompile(`/Type\s*/Page[^s]`)

// PageCount counts page objects whose dictionaries appear uncompressed
// in the file.
func PageCount(data []byte) int {
	return len(pageRe.FindAll(data, -1))
}

// Text extracts the text shown by Tj/TJ operators across all content
// streams, in stream order. Glyphs that do not decode as ASCII are
// dropped, which is enough to assert on names and labels rendered from
// standard fonts.
func Text(data []byte) string {
	var sb strings.Builder
	for _, stream := range contentStreams(data) {
		extractText(&sb, stream)
	}
	return strings.TrimSpace(sb.String())
}

// Contains reports whether the extracted text contains want after
// whitespace normalization.
func Contains(data []byte, want string) bool {
	flat := strings.Join(strings.Fields(Text(data)), " ")
	return strings.Contains(flat, strings.Join(strings.Fields(want), " "))
}

// contentStreams returns every stream body, inflated where possible.
// Streams that fail to inflate are returned raw: uncompressed content
// streams are legal and some test fixtures use them.
func contentStreams(data []byte) [][]byte {
	var streams [][]byte
	rest := data
	for {
		start := bytes.Index(rest, []byte("stream"))
		if start < 0 {
			break
		}
		body := rest[start+len("stream"):]
		// The keyword is followed by CRLF or LF before the data.
		body = bytes.TrimPrefix(body, []byte("\r"))
		body = bytes.TrimPrefix(body, []byte("\n"))

		end := bytes.Index(body, []byte("endstream"))
		if end < 0 {
			break
		}
		raw := bytes.TrimRight(body[:end], "\r\n")

		if inflated, err := inflate(raw); err == nil {
			streams = append(streams, inflated)
		} else {
			streams = append(streams, raw)
		}
		rest = body[end+len("endstream"):]
	}
	return streams
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// extractText scans one content stream for literal strings followed by a
// Tj or TJ operator and appends their printable content.
func extractText(sb *strings.Builder, stream []byte) {
	i := 0
	for i < len(stream) {
		switch stream[i] {
		case '(':
			text, next := parseLiteral(stream, i)
			if showsText(stream, next) {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
			i = next
		case '[':
			text, next := parseArray(stream, i)
			if showsText(stream, next) {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
			i = next
		default:
			i++
		}
	}
}

// showsText reports whether the bytes at pos begin a Tj/TJ/quote text
// showing operator, skipping whitespace and kerning numbers first.
func showsText(stream []byte, pos int) bool {
	for pos < len(stream) {
		c := stream[pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			pos++
			continue
		}
		break
	}
	if pos >= len(stream) {
		return false
	}
	switch stream[pos] {
	case '\'', '"':
		return true
	case 'T':
		return pos+1 < len(stream) && (stream[pos+1] == 'j' || stream[pos+1] == 'J')
	}
	return false
}

// parseLiteral reads a (...)-delimited string starting at open. It
// returns the decoded printable text and the index just past the
// closing parenthesis.
func parseLiteral(stream []byte, open int) (string, int) {
	var sb strings.Builder
	depth := 0
	i := open
	for i < len(stream) {
		c := stream[i]
		switch c {
		case '\\':
			i++
			if i < len(stream) {
				switch stream[i] {
				case 'n', 'r', 't':
					sb.WriteByte(' ')
				case '(', ')', '\\':
					sb.WriteByte(stream[i])
				}
			}
		case '(':
			depth++
			if depth > 1 {
				sb.WriteByte(c)
			}
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		default:
			if c >= 32 && c < 127 {
				sb.WriteByte(c)
			}
		}
		i++
	}
	return sb.String(), i
}

// parseArray reads a TJ operand array, concatenating its string
// elements and treating large negative kerns as word spaces.
func parseArray(stream []byte, open int) (string, int) {
	var sb strings.Builder
	i := open + 1
	for i < len(stream) {
		switch stream[i] {
		case '(':
			text, next := parseLiteral(stream, i)
			sb.WriteString(text)
			i = next
		case ']':
			return sb.String(), i + 1
		case '-':
			// A kern below -100 marks an inter-word gap.
			j := i + 1
			for j < len(stream) && stream[j] >= '0' && stream[j] <= '9' {
				j++
			}
			if j-i > 3 {
				sb.WriteByte(' ')
			}
			i = j
		default:
			i++
		}
	}
	return sb.String(), i
}
