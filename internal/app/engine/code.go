package engine

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	defaultCodePrefix = "DCW-"
	defaultCodeWidth  = 4
)

var codePattern = regexp.MustCompile(`^([A-Za-z]+-?)(\d+)$`)

// NextProductCode scans the existing product codes and returns the next one
// in the series: the corpus-wide maximum number plus one, printed with the
// same prefix and zero-padded width as the entry that held the maximum.
// Codes that do not match the letters+number pattern are skipped. An empty
// corpus starts the series at DCW-0001.
//
// The maximum is global, not per prefix: a corpus mixing unrelated code
// families will get the prefix and width of whichever family holds the
// largest number. One numbering series per shop is assumed.
func NextProductCode(existing []string) string {
	prefix := defaultCodePrefix
	width := defaultCodeWidth
	max := 0

	for _, code := range existing {
		m := codePattern.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if n > max {
			max = n
			prefix = m[1]
			width = len(m[2])
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, width, max+1)
}
