package stringutil

import "regexp"

var asnDigits = regexp.MustCompile(`[0-9]+`)

// StandardizeASN normalizes an autonomous-system-number string to the
// canonical "ASN<number>" form. Inputs like "AS1234", "asn 1234" or
// "1234" all normalize; anything containing zero or multiple digit runs
// is returned unchanged.
func StandardizeASN(asn string) string {
	numbers := asnDigits.FindAllString(asn, -1)
	if len(numbers) == 1 {
		return "ASN" + numbers[0]
	}
	return asn
}
