package scan

import "github.com/mvolk/eqsift/source"

// contextClipLen is the maximum rune length of one neighbor snippet.
const contextClipLen = 140

// Context builds a short human-readable context string for the region at
// idx in an ordered page: the normalized previous and next regions (any
// region, not only candidates), each clipped, joined with " | " when both
// exist. A boundary region yields its single neighbor alone; a lone region
// yields the empty string. Never fails.
func Context(ordered []source.Region, idx int) string {
	var prev, next string
	if idx-1 >= 0 {
		prev = clipSnippet(Normalize(ordered[idx-1].Text))
	}
	if idx+1 < len(ordered) {
		next = clipSnippet(Normalize(ordered[idx+1].Text))
	}

	switch {
	case prev != "" && next != "":
		return prev + " | " + next
	case prev != "":
		return prev
	default:
		return next
	}
}

// clipSnippet truncates s to contextClipLen runes, marking truncation
// with a trailing ellipsis.
func clipSnippet(s string) string {
	runes := []rune(s)
	if len(runes) > contextClipLen {
		return string(runes[:contextClipLen-3]) + "..."
	}
	return s
}
