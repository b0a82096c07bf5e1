package engine

import "strings"

// Lexical normalization tables. Intentionally dumb: no NLP, just token
// rewriting before verb/target dispatch.

var directionExpansions = map[string]string{
	"n": "north",
	"e": "east",
	"s": "south",
	"w": "west",
	"u": "up",
	"d": "down",
}

var directionNames = map[string]bool{
	"north": true, "east": true, "south": true,
	"west": true, "up": true, "down": true,
}

var verbAliases = map[string]string{
	"l":   "look",
	"i":   "inventory",
	"bag": "inventory",
	"inv": "inventory",
}

// Normalize lowercases, collapses whitespace, and expands the recognized
// abbreviations: "n", "north", and "go n" all become "go north"; "i" and
// "bag" become "inventory".
func Normalize(input string) string {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return ""
	}

	if full, ok := directionExpansions[words[0]]; ok {
		words[0] = full
	}
	if directionNames[words[0]] {
		words = append([]string{"go"}, words...)
	}
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}
	if words[0] == "go" && len(words) > 1 {
		if full, ok := directionExpansions[words[1]]; ok {
			words[1] = full
		}
	}

	return strings.Join(words, " ")
}

// Tokenize splits a normalized line into verb, target, and value. Only the
// first token after the verb is the target; multi-word names cannot be
// referenced. The third token feeds two-argument internal commands.
func Tokenize(line string) (verb, target, value string) {
	words := strings.Fields(line)
	if len(words) > 0 {
		verb = words[0]
	}
	if len(words) > 1 {
		target = words[1]
	}
	if len(words) > 2 {
		value = words[2]
	}
	return verb, target, value
}
