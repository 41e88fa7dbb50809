package pdfgen

import (
	"math/rand/v2"
	"strings"
	"time"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// VerificationCode builds the traceability stamp printed in document
// footers: the first three characters of the template name uppercased, the
// current UTC date, and eight random base36 characters.
//
// The code is purely presentational. It is not unique, not persisted, and
// not checked against any store.
func VerificationCode(templateName string) string {
	prefix := strings.ToUpper(templateName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}

	return prefix + "-" + time.Now().UTC().Format("20060102") + "-" + string(suffix)
}
