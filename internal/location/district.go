package location

import "regexp"

// districtPattern matches a run of Hangul syllables ending in the 구
// (district) suffix, e.g. "강남구" in "서울시 강남구".
var districtPattern = regexp.MustCompile(`([가-힣]+구)`)

// District extracts the district token from a free-text location
// string. It reports false when no such token is present.
//
// This is a coarse substring key, not geocoding: two locations in
// different cities that share a district name will match each other.
func District(location string) (string, bool) {
	match := districtPattern.FindString(location)
	if match == "" {
		return "", false
	}
	return match, true
}
