package params

import "strconv"

type SearchQueryParams struct {
	Q             string `validate:"max=255,search_text"`
	CurrentOffset int    `validate:"min=0"`
}

// ParseOffset never fails: an absent, non-numeric, negative or out of range
// value yields the first page.
func ParseOffset(raw string) int {
	if raw == "" {
		return 0
	}

	offset, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || offset < 0 {
		return 0
	}

	return int(offset)
}
