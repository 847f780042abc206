package progress

import (
	"fmt"
	"io"
	"strings"
)

// TreeHandler renders events as an indented tree following directory
// enter/leave events.
type TreeHandler struct {
	writer io.Writer
	depth  int
}

func NewTreeHandler(writer io.Writer) *TreeHandler {
	return &TreeHandler{writer: writer}
}

func (h *TreeHandler) Handle(event Event) {
	indent := strings.Repeat("|  ", h.depth)
	prefix := "|- "

	switch event.Type {
	case EventScanStart:
		fmt.Fprintf(h.writer, "scanning %s...\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "excluding: %s\n", event.Info)
		}
		fmt.Fprintln(h.writer)

	case EventScanComplete:
		fmt.Fprintf(h.writer, "`- completed: %d files, %d directories in %.1fs\n",
			event.FileCount, event.DirCount, event.Duration.Seconds())

	case EventEnterDirectory:
		fmt.Fprintf(h.writer, "%s%s%s\n", indent, prefix, event.Path)
		h.depth++

	case EventLeaveDirectory:
		h.depth--
		if h.depth < 0 {
			h.depth = 0
		}
		if event.Duration > 0 {
			fmt.Fprintf(h.writer, "%s`- %.2fs\n", strings.Repeat("|  ", h.depth), event.Duration.Seconds())
		}

	case EventLanguageDetected:
		fmt.Fprintf(h.writer, "%s%s%s: %s\n", indent, prefix, event.Path, event.Language)

	case EventFileProcessingStart:
		fmt.Fprintf(h.writer, "%s%sparsing: %s\n", indent, prefix, event.Path)

	case EventSkipped:
		fmt.Fprintf(h.writer, "%s%sskipping: %s (%s)\n", indent, prefix, event.Path, event.Reason)

	case EventScanInitializing:
		fmt.Fprintf(h.writer, "%s%sinitializing: %s\n", indent, prefix, event.Path)

	case EventFileWriting:
		fmt.Fprintf(h.writer, "%s%swriting results to: %s\n", indent, prefix, event.Path)

	case EventFileWritten:
		fmt.Fprintf(h.writer, "%s%sresults written: %s\n", indent, prefix, event.Path)

	case EventInfo, EventGitIgnoreEnter, EventGitIgnoreLeave:
		fmt.Fprintf(h.writer, "%s%s%s\n", indent, prefix, event.Info)
	}
}

// NullHandler discards every event; used when verbose output is disabled.
type NullHandler struct{}

func NewNullHandler() *NullHandler { return &NullHandler{} }

func (h *NullHandler) Handle(event Event) {}
