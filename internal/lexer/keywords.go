package lexer

import "sort"

// keywords is the full BASIC keyword set (spec.md section 4.1). Order does
// not affect correctness (matchKeywordAt always tries the longest textual
// match first), but the set doubles as a quick membership table.
var keywords = map[string]bool{
	"PRINT": true, "IF": true, "THEN": true, "ELSE": true, "GOTO": true,
	"GOSUB": true, "RETURN": true, "FOR": true, "TO": true, "STEP": true,
	"NEXT": true, "LET": true, "DIM": true, "INPUT": true, "CLEAR": true,
	"END": true, "STOP": true, "REM": true, "NEW": true, "RUN": true,
	"AND": true, "OR": true, "NOT": true, "DATA": true, "READ": true,
	"RESTORE": true, "RANDOMIZE": true, "DEF": true, "ON": true,
	"OPEN": true, "CLOSE": true, "AS": true, "OUTPUT": true, "APPEND": true,
}

// allowsAdjacency holds the statement-position keywords that may be
// recognized even when immediately followed by an identifier-continuation
// character, e.g. "FORI=1TO10". Logical operators (AND, OR, NOT) are
// deliberately excluded so that identifiers like "ANDY" or "NOTE" are not
// mis-split.
var allowsAdjacency = map[string]bool{
	"PRINT": true, "IF": true, "THEN": true, "ELSE": true, "GOTO": true,
	"GOSUB": true, "RETURN": true, "FOR": true, "TO": true, "STEP": true,
	"NEXT": true, "LET": true, "DIM": true, "INPUT": true, "CLEAR": true,
	"END": true, "STOP": true, "REM": true, "NEW": true, "RUN": true,
	"DATA": true, "READ": true, "RESTORE": true, "RANDOMIZE": true,
	"DEF": true, "ON": true, "OPEN": true, "CLOSE": true, "AS": true,
	"OUTPUT": true, "APPEND": true,
}

// keywordsByLengthDesc is keywords' keys sorted longest-first, so a greedy
// scan at a given position finds the longest matching keyword first.
var keywordsByLengthDesc = sortedKeywords()

func sortedKeywords() []string {
	list := make([]string, 0, len(keywords))
	for k := range keywords {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		if len(list[i]) != len(list[j]) {
			return len(list[i]) > len(list[j])
		}
		return list[i] < list[j]
	})
	return list
}

// isKeyword reports whether word (already uppercased) is a keyword.
func isKeyword(word string) bool {
	return keywords[word]
}
