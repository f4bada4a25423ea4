package markdown

import "strings"

// LinkMap maps source positions of link labels to their URLs.
type LinkMap struct {
	entries []LinkEntry
}

// LinkEntry tracks a link's label position in the source and its URL.
type LinkEntry struct {
	Start int    // Rune position of the label's "[" (or the "!" of an image)
	End   int    // Rune position just past the label's "]"
	URL   string // The link target, without any title
}

// NewLinkMap creates an empty LinkMap.
func NewLinkMap() *LinkMap {
	return &LinkMap{}
}

// Links returns the links of one block. Positions are block relative.
func Links(block string) *LinkMap {
	lm := NewLinkMap()
	text := []rune(block)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '[':
			end := linkEnd(text, i)
			if end < 0 {
				continue
			}
			start := i
			if i > 0 && text[i-1] == '!' {
				start = i - 1
			}
			rb := indexFrom(text, i+1, "]")
			target := string(text[rb+2 : end-1])
			url, _, _ := strings.Cut(strings.TrimSpace(target), " ")
			lm.Add(start, rb+1, url)
			i = end - 1
		}
	}
	return lm
}

// Add registers a link from start to end (exclusive) with the given URL.
func (lm *LinkMap) Add(start, end int, url string) {
	lm.entries = append(lm.entries, LinkEntry{
		Start: start,
		End:   end,
		URL:   url,
	})
}

// Entries returns the links in source order.
func (lm *LinkMap) Entries() []LinkEntry { return lm.entries }

// URLAt returns the URL if pos is within a link label, or empty string if not.
// The range is [start, end) - start is inclusive, end is exclusive.
func (lm *LinkMap) URLAt(pos int) string {
	for _, e := range lm.entries {
		if pos >= e.Start && pos < e.End {
			return e.URL
		}
	}
	return ""
}
