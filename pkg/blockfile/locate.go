package blockfile

import "strings"

// TitleFunc reports whether a line is a title line. The locator uses it
// to find where a section ends: the section owned by a title runs until
// the next line the TitleFunc recognizes, or end of file.
type TitleFunc func(line string) bool

// DefaultTitleFunc recognizes heading-style titles: lines starting with
// the "# " comment marker. This matches the convention used by every
// built-in module, but callers managing files with a different comment
// syntax can supply their own rule via WithTitleFunc.
func DefaultTitleFunc(line string) bool {
	return strings.HasPrefix(line, "# ")
}

// PrefixTitleFunc builds a TitleFunc recognizing lines starting with
// marker. An empty marker falls back to the default rule.
func PrefixTitleFunc(marker string) TitleFunc {
	if marker == "" {
		return DefaultTitleFunc
	}
	return func(line string) bool {
		return strings.HasPrefix(line, marker)
	}
}

// Location describes where a title and its section sit in a file's
// line sequence.
type Location struct {
	// TitleIndex is the index of the title line, or -1 if absent
	TitleIndex int

	// SectionStart is the index of the first line of the section
	SectionStart int

	// SectionEnd is the index one past the last line of the section
	SectionEnd int

	// Ambiguous is true when the title occurs more than once.
	// The first occurrence is the one acted on.
	Ambiguous bool
}

// Found reports whether the title was present
func (l Location) Found() bool {
	return l.TitleIndex >= 0
}

// Locate finds the first exact occurrence of title in lines and the
// boundaries of the section it owns. Titles are matched by exact
// string equality; isTitle decides where the section ends.
func Locate(lines []string, title string, isTitle TitleFunc) Location {
	if isTitle == nil {
		isTitle = DefaultTitleFunc
	}

	loc := Location{TitleIndex: -1}
	for i, line := range lines {
		if line == title {
			if loc.TitleIndex >= 0 {
				loc.Ambiguous = true
				break
			}
			loc.TitleIndex = i
		}
	}
	if loc.TitleIndex < 0 {
		return loc
	}

	loc.SectionStart = loc.TitleIndex + 1
	loc.SectionEnd = len(lines)
	for i := loc.SectionStart; i < len(lines); i++ {
		if isTitle(lines[i]) {
			loc.SectionEnd = i
			break
		}
	}
	return loc
}
