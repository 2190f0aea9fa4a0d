package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRange parses a selection like "1-5,7,9-12" into the flat page list
// the converter expects. Empty or blank input selects the whole document and
// yields a nil slice. Encounter order is kept as-is, duplicates included.
//
// A descending range such as "5-2" is rejected rather than silently expanded
// to nothing.
func ParsePageRange(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var pages []int

	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)

		lo, hi, isRange := strings.Cut(token, "-")
		if !isRange {
			n, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("invalid page range token %q", token)
			}
			pages = append(pages, n)
			continue
		}

		start, errStart := strconv.Atoi(strings.TrimSpace(lo))
		end, errEnd := strconv.Atoi(strings.TrimSpace(hi))
		if errStart != nil || errEnd != nil {
			return nil, fmt.Errorf("invalid page range token %q", token)
		}
		if start > end {
			return nil, fmt.Errorf("descending page range %q", token)
		}

		for n := start; n <= end; n++ {
			pages = append(pages, n)
		}
	}

	return pages, nil
}
