package source

import "strings"

// Search returns the rectangles of literal occurrences of token in the
// page text, in top-down line order. An empty result is not an error;
// callers decide whether a miss matters. page is 0-based.
func (d *Document) Search(page int, token string) ([]Rect, error) {
	if token == "" {
		return nil, nil
	}

	frags, err := d.pageFragments(page)
	if err != nil {
		return nil, err
	}

	var rects []Rect
	for _, l := range buildLines(frags) {
		for start := 0; ; {
			i := strings.Index(l.text[start:], token)
			if i < 0 {
				break
			}
			start += i
			if r, ok := l.matchRect(start, start+len(token)); ok {
				rects = append(rects, r)
			}
			start += len(token)
		}
	}
	return rects, nil
}
