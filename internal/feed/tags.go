package feed

import (
	"regexp"
	"strings"
)

// tagPattern is the hashtag token grammar: '#' followed by one or more
// alphanumeric or underscore characters.
var tagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)

// boundaryTagPattern additionally requires the token to start the content or
// follow whitespace; used for inline rendering so mid-word '#' stays plain.
var boundaryTagPattern = regexp.MustCompile(`(?:^|\s)#[A-Za-z0-9_]+`)

// ExtractTags scans content and returns the set of hashtag tokens, '#'
// included, first occurrence order preserved. Called at post create and edit
// time; the result replaces any previous tag set.
func ExtractTags(content string) []string {
	matches := tagPattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, m)
	}
	return tags
}

// Segment is one piece of post content: either plain text or a single
// hashtag token. Concatenating the Text of all segments reproduces the
// original content exactly.
type Segment struct {
	Text  string
	IsTag bool
}

// Segments splits content into plain-text and tag segments using the same
// token grammar as ExtractTags, so a consumer can render each tag as an
// independently clickable search trigger without re-deriving the regex.
func Segments(content string) []Segment {
	var segs []Segment
	last := 0
	for _, loc := range boundaryTagPattern.FindAllStringIndex(content, -1) {
		start, end := loc[0], loc[1]
		// Leading whitespace captured by the boundary belongs to the
		// preceding plain segment.
		if content[start] != '#' {
			start++
		}
		if start > last {
			segs = append(segs, Segment{Text: content[last:start]})
		}
		segs = append(segs, Segment{Text: content[start:end], IsTag: true})
		last = end
	}
	if last < len(content) {
		segs = append(segs, Segment{Text: content[last:]})
	}
	return segs
}
