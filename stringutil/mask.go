// Package stringutil provides string helpers: credential masking, ASN
// normalization, and display-width aware truncation.
package stringutil

import "strings"

// PrintableCred returns a masked form of cred safe for logs. visible runes
// are kept at each end (clamped to at least 1) with a run of maskCharCount
// mask characters between them, so the true length of the credential is
// not recoverable from the output. A negative count clamps to zero (empty
// mask run). Creds shorter than twice the visible count are returned
// unchanged rather than leaking their full value through too-small a mask.
func PrintableCred(cred string, visible int, maskChar string, maskCharCount int) string {
	if visible < 1 {
		visible = 1
	}
	if maskChar == "" {
		maskChar = "*"
	}
	if maskCharCount < 0 {
		maskCharCount = 0
	}
	runes := []rune(cred)
	if len(runes) < visible*2 {
		return cred
	}
	var b strings.Builder
	b.WriteString(string(runes[:visible]))
	b.WriteString(strings.Repeat(maskChar, maskCharCount))
	b.WriteString(string(runes[len(runes)-visible:]))
	return b.String()
}
