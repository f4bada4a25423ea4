package rich

// SourceMap maps positions in a block's rendered text back to positions
// in its source and forward again.
type SourceMap struct {
	entries []SourceMapEntry
	srcLen  int
	rendLen int
}

// SourceMapEntry maps a range of rendered text to the source range that
// produced it.
type SourceMapEntry struct {
	RenderedStart int // rune position in rendered text
	RenderedEnd   int
	SourceStart   int // rune position in source text
	SourceEnd     int

	// Hidden source runes directly before and after the entry (markup
	// such as "# " or "**").
	Lead  int
	Trail int
}

// NewSourceMap builds the map for ranges, which must partition the
// source text. Removed ranges render nothing; every other range renders
// its shown text or, for blanked and tab ranges, one rendered position
// per source rune.
func NewSourceMap(text []rune, rs []Range) *SourceMap {
	sm := &SourceMap{srcLen: len(text)}
	rend, hidden := 0, 0
	for _, r := range rs {
		if r.Transform == Removed {
			hidden += r.Len
			if n := len(sm.entries); n > 0 && sm.entries[n-1].SourceEnd+sm.entries[n-1].Trail == r.Start {
				sm.entries[n-1].Trail += r.Len
			}
			continue
		}
		n := r.Len
		if r.Transform == Replaced {
			n = len([]rune(r.Replacement))
		}
		sm.entries = append(sm.entries, SourceMapEntry{
			RenderedStart: rend,
			RenderedEnd:   rend + n,
			SourceStart:   r.Start,
			SourceEnd:     r.End(),
			Lead:          hidden,
		})
		rend += n
		hidden = 0
	}
	sm.rendLen = rend
	return sm
}

// Entries returns the map's entries in rendered order.
func (sm *SourceMap) Entries() []SourceMapEntry { return sm.entries }

// ToSource maps a range in rendered content (renderedStart, renderedEnd)
// to the corresponding range in the source. A selection that starts or
// ends on the edge of an element expands to include the element's
// hidden markup (selecting "bold" in "**bold**" returns 0-8).
func (sm *SourceMap) ToSource(renderedStart, renderedEnd int) (srcStart, srcEnd int) {
	if len(sm.entries) == 0 {
		return renderedStart, renderedEnd
	}

	startEntry := sm.find(renderedStart)
	if startEntry == nil {
		srcStart = sm.srcLen
	} else if renderedStart == startEntry.RenderedStart {
		srcStart = startEntry.SourceStart - startEntry.Lead
	} else {
		srcStart = startEntry.SourceStart + sm.offsetIn(startEntry, renderedStart-startEntry.RenderedStart)
	}

	lookupPos := renderedEnd
	if renderedEnd > renderedStart {
		lookupPos = renderedEnd - 1
	}
	endEntry := sm.find(lookupPos)
	switch {
	case endEntry == nil:
		srcEnd = sm.srcLen
	case renderedEnd == endEntry.RenderedEnd:
		srcEnd = endEntry.SourceEnd + endEntry.Trail
	default:
		srcEnd = endEntry.SourceStart + sm.offsetIn(endEntry, renderedEnd-endEntry.RenderedStart)
	}
	return srcStart, srcEnd
}

// ToRendered maps a source position to a rendered one. Positions inside
// hidden markup map to the next rendered position.
func (sm *SourceMap) ToRendered(src int) int {
	for i := range sm.entries {
		e := &sm.entries[i]
		if src < e.SourceStart {
			return e.RenderedStart
		}
		if src < e.SourceEnd {
			n := e.RenderedEnd - e.RenderedStart
			return e.RenderedStart + min(src-e.SourceStart, max(n-1, 0))
		}
	}
	return sm.rendLen
}

func (sm *SourceMap) find(rendered int) *SourceMapEntry {
	for i := range sm.entries {
		e := &sm.entries[i]
		if rendered >= e.RenderedStart && rendered < e.RenderedEnd {
			return e
		}
	}
	return nil
}

// offsetIn converts a rendered offset inside e to a source offset.
// Replacements map proportionally onto their source.
func (sm *SourceMap) offsetIn(e *SourceMapEntry, off int) int {
	src := e.SourceEnd - e.SourceStart
	rend := e.RenderedEnd - e.RenderedStart
	if src == rend || rend == 0 {
		return min(off, src)
	}
	return off * src / rend
}
