package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/ui/output"
	"go.trai.ch/scaledash/internal/ui/style"
	"go.trai.ch/zerr"
)

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

// writeHeading prints a styled section title.
func writeHeading(w io.Writer, title string) {
	r := output.Renderer(w)
	s := r.NewStyle().Bold(true).Foreground(style.Iris)
	_, _ = fmt.Fprintln(w, s.Render(title))
}

// writePagination prints the page position, e.g. "page 2 of 5 (48 items)".
func writePagination(w io.Writer, p domain.Pagination) {
	r := output.Renderer(w)
	muted := r.NewStyle().Foreground(style.Slate)
	icon := r.NewStyle().Foreground(style.Iris).Render(style.Dot)

	_, _ = fmt.Fprintln(w, icon+" "+muted.Render(fmt.Sprintf(
		"page %d of %d (%d items)", p.CurrentPage(), p.TotalPage(), p.Total(),
	)))
}
