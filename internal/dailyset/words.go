package dailyset

import "strings"

// seedWords is the built-in curated list used when the catalog has no
// candidate for a letter yet. Imports and daily builds grow the catalog past
// it over time.
var seedWords = []string{
	"ameliorate", "benevolent", "candor", "dichotomy", "eloquent",
	"fastidious", "gregarious", "hapless", "iconoclast", "juxtapose",
	"kindle", "loquacious", "meticulous", "nebulous", "obfuscate",
	"pragmatic", "quintessential", "resilient", "serendipity", "tenacious",
	"ubiquitous", "vicarious", "whimsical", "xenial", "yearn",
	"zealous", "diligent", "ephemeral", "jubilant", "profound",
	"efficacious",
}

// seedsForLetter returns the seed words starting with the letter
func seedsForLetter(letter string) []string {
	prefix := strings.ToLower(letter)
	var matches []string
	for _, w := range seedWords {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	return matches
}
