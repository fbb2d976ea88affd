package notes

import "github.com/sahilm/fuzzy"

// Filter returns the notes whose text fuzzy-matches query, best match first.
// An empty query returns notes unchanged.
func Filter(notes []Note, query string) []Note {
	if query == "" {
		return notes
	}

	texts := make([]string, len(notes))
	for i, n := range notes {
		texts[i] = n.Text
	}

	matches := fuzzy.Find(query, texts)
	out := make([]Note, len(matches))
	for i, match := range matches {
		out[i] = notes[match.Index]
	}
	return out
}
