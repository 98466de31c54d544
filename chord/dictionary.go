package chord

// Dictionary maps a chord type name to its ascending interval list relative
// to the root (always starting at 0, values 0-11).
type Dictionary map[string][]int

func DefaultDictionary() Dictionary {
	return Dictionary{
		"maj":   {0, 4, 7},
		"min":   {0, 3, 7},
		"dim":   {0, 3, 6},
		"aug":   {0, 4, 8},
		"sus2":  {0, 2, 7},
		"sus4":  {0, 5, 7},
		"5":     {0, 7},
		"6":     {0, 4, 7, 9},
		"m6":    {0, 3, 7, 9},
		"7":     {0, 4, 7, 10},
		"maj7":  {0, 4, 7, 11},
		"min7":  {0, 3, 7, 10},
		"dim7":  {0, 3, 6, 9},
		"m7b5":  {0, 3, 6, 10},
		"mMaj7": {0, 3, 7, 11},
		"add9":  {0, 2, 4, 7},
	}
}

// Commonness order for ranking ambiguous spellings. Anything not listed
// shares the lowest rank and falls back to match order.
var typePriority = map[string]int{
	"maj":  0,
	"min":  1,
	"7":    2,
	"maj7": 3,
	"min7": 4,
	"dim":  5,
	"aug":  6,
}

func priorityOf(chordType string) int {
	if p, ok := typePriority[chordType]; ok {
		return p
	}
	return len(typePriority)
}
