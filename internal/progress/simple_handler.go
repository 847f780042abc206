package progress

import (
	"fmt"
	"io"
	"time"
)

// SimpleHandler renders events as flat, prefixed lines with a summary
// printed once the scan completes.
type SimpleHandler struct {
	writer    io.Writer
	timings   []TimingEntry
	languages []LanguageEntry
	scanStart time.Time
}

func NewSimpleHandler(writer io.Writer) *SimpleHandler {
	return &SimpleHandler{writer: writer}
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case EventScanStart:
		h.scanStart = time.Now()
		fmt.Fprintf(h.writer, "[SCAN] starting: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[SCAN] excluding: %s\n", event.Info)
		}

	case EventScanComplete:
		fmt.Fprintf(h.writer, "[SCAN] completed: %d files, %d directories in %.1fs\n",
			event.FileCount, event.DirCount, event.Duration.Seconds())
		h.printTimingSummary()
		h.printLanguageSummary()

	case EventEnterDirectory:
		fmt.Fprintf(h.writer, "[DIR]  entering: %s\n", event.Path)

	case EventLeaveDirectory:
		if event.Duration > 0 {
			h.timings = append(h.timings, TimingEntry{Path: event.Path, Duration: event.Duration})
			fmt.Fprintf(h.writer, "[TIME] %s: %s %.2fs\n", event.Path, getTimingIcon(event.Duration.Seconds()), event.Duration.Seconds())
		}

	case EventLanguageDetected:
		h.languages = append(h.languages, LanguageEntry{Language: event.Language, Path: event.Path})
		fmt.Fprintf(h.writer, "[LANG] %s: %s\n", event.Path, event.Language)

	case EventFileProcessingStart:
		fmt.Fprintf(h.writer, "[FILE] parsing: %s\n", event.Path)

	case EventFileProcessingEnd:
		// counted via EventLanguageDetected; nothing further to render here

	case EventSkipped:
		fmt.Fprintf(h.writer, "[SKIP] %s (%s)\n", event.Path, event.Reason)

	case EventScanInitializing:
		fmt.Fprintf(h.writer, "[INIT] initializing walk: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[INIT] excluding: %s\n", event.Info)
		}

	case EventFileWriting:
		fmt.Fprintf(h.writer, "[OUT]  writing results to: %s\n", event.Path)

	case EventFileWritten:
		fmt.Fprintf(h.writer, "[OUT]  results written: %s\n", event.Path)

	case EventInfo:
		fmt.Fprintf(h.writer, "[INFO] %s\n", event.Info)

	case EventGitIgnoreEnter, EventGitIgnoreLeave:
		fmt.Fprintf(h.writer, "[GIT]  %s\n", event.Info)
	}
}

func (h *SimpleHandler) printTimingSummary() {
	if len(h.timings) == 0 {
		return
	}
	sorted := sortTimingsByDuration(h.timings)
	var total time.Duration
	for _, t := range h.timings {
		total += t.Duration
	}
	fmt.Fprintf(h.writer, "\ntiming summary: %d directories timed, average %.3fs, slowest %s (%.2fs)\n",
		len(h.timings), total.Seconds()/float64(len(h.timings)),
		shortenPath(sorted[0].Path, 50), sorted[0].Duration.Seconds())
}

func (h *SimpleHandler) printLanguageSummary() {
	if len(h.languages) == 0 {
		return
	}
	counts := map[string]int{}
	for _, l := range h.languages {
		counts[l.Language]++
	}
	fmt.Fprintf(h.writer, "language summary: %d files classified across %d languages\n", len(h.languages), len(counts))
}
