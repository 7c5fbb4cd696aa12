package review

import "unicode/utf16"

var (
	adjectives = []string{"Happy", "Hungry", "Spicy", "Sweet", "Speedy", "Tasty", "Zesty", "Crunchy"}
	animals    = []string{"Panda", "Tiger", "Bear", "Eagle", "Koala", "Chef", "Fox", "Lion"}
)

// Pseudoname maps an id to a stable anonymous reviewer name. The hash walks
// UTF-16 code units and truncates to 32 bits before each shift.
func Pseudoname(id string) string {
	var h int64
	for _, c := range utf16.Encode([]rune(id)) {
		h = int64(c) + int64(int32(h)<<5) - h
	}
	adj := abs(h) % int64(len(adjectives))
	animal := abs(int64(int32(h)>>3)) % int64(len(animals))
	return adjectives[adj] + " " + animals[animal]
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
