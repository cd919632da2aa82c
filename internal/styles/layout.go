package styles

const (
	// LayoutGap is the default space between columns.
	LayoutGap = 2

	// LayoutOuterPadding keeps panels off screen edges.
	LayoutOuterPadding = 1

	// LayoutInnerPadding is the default panel content padding.
	LayoutInnerPadding = 1

	minListWidth    = 18
	maxListWidth    = 32
	minPreviewWidth = 36
)

// ColumnWidths are the widths of the scheme list and preview columns.
type ColumnWidths struct {
	List    int
	Preview int
}

// ComputeColumnWidths splits totalWidth between the list and the preview.
// Narrow terminals drop the list column.
func ComputeColumnWidths(totalWidth int) ColumnWidths {
	if totalWidth <= 0 {
		return ColumnWidths{}
	}
	list := clampInt(totalWidth/4, minListWidth, maxListWidth)
	preview := totalWidth - list - LayoutGap
	if preview < minPreviewWidth {
		return ColumnWidths{Preview: totalWidth}
	}
	return ColumnWidths{List: list, Preview: preview}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
