package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE/ILIKE pattern matching text anywhere in a
// value. Wildcards in text match literally.
func ContainsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
