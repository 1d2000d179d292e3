package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// zerrError is the part of *zerr.Error used to render a cause chain.
type zerrError interface {
	Message() string
	Metadata() map[string]any
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err from the outermost error inwards. Every zerr
// link becomes one entry; the first non-zerr error ends the walk with its full text.
// zerr links without a message only carry metadata, which is merged into the
// neighbouring entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	add := func(entry errorEntry) {
		if len(pending) > 0 {
			if entry.Metadata == nil {
				entry.Metadata = map[string]any{}
			}
			maps.Copy(entry.Metadata, pending)
			pending = nil
		}
		entries = append(entries, entry)
	}

	for current := err; current != nil; {
		z, ok := current.(zerrError)
		if !ok {
			add(errorEntry{Message: current.Error()})
			break
		}

		switch {
		case z.Message() != "":
			add(errorEntry{Message: z.Message(), Metadata: z.Metadata()})
		case len(entries) > 0:
			last := &entries[len(entries)-1]
			if last.Metadata == nil {
				last.Metadata = map[string]any{}
			}
			maps.Copy(last.Metadata, z.Metadata())
		default:
			if pending == nil {
				pending = map[string]any{}
			}
			maps.Copy(pending, z.Metadata())
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
