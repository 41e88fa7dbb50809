// Package assets resolves logo references from document payloads into
// embeddable data URIs.
package assets

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
)

// LogoDataURI turns a payload logo reference into a data URI the
// rendered HTML can embed. Three cases:
//
//   - empty reference: stays empty, the document renders without a logo
//   - already a data URI: passed through untouched
//   - anything else: treated as a path under publicDir and inlined
//
// Unreadable files degrade to an empty result rather than failing the
// document; a payslip without a logo is still a valid payslip.
func LogoDataURI(publicDir, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "data:") {
		return ref
	}

	rel := strings.TrimPrefix(ref, "/")
	data, err := os.ReadFile(filepath.Join(publicDir, filepath.FromSlash(rel)))
	if err != nil {
		return ""
	}

	return "data:" + contentType(rel) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
