package components

import "strings"

// RenderScrollbar renders a 1-column vertical scrollbar for a list of rows.
// The gutter stays blank until the rows exceed the visible count; once
// scrollable, a track and thumb are drawn proportionally.
//
// height is the number of terminal lines the bar spans, total and visible
// are row counts, and offset is the index of the first visible row.
func RenderScrollbar(height, total, visible, offset int) string {
	if height <= 0 {
		return ""
	}

	const (
		track = "│"
		thumb = "█"
	)

	if total <= visible || visible <= 0 {
		return strings.Repeat(" \n", height-1) + " "
	}

	thumbSize := max(height*visible/total, 1)
	thumbMaxTop := height - thumbSize

	thumbTop := 0
	if maxOffset := total - visible; maxOffset > 0 {
		thumbTop = offset * thumbMaxTop / maxOffset
	}
	thumbTop = min(max(thumbTop, 0), thumbMaxTop)

	var b strings.Builder
	for i := range height {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbTop && i < thumbTop+thumbSize {
			b.WriteString(thumb)
		} else {
			b.WriteString(track)
		}
	}
	return b.String()
}
