package progress

import (
	"os"
	"strings"
	"time"
)

// Progress is the centralized verbose reporter threaded through a scan.
// Disabled by default; Report is a no-op until enabled.
type Progress struct {
	enabled    bool
	handler    Handler
	dirTimings map[string]time.Time
}

// New creates a Progress reporter. A nil handler defaults to a
// SimpleHandler writing to stderr.
func New(enabled bool, handler Handler) *Progress {
	if handler == nil {
		handler = NewSimpleHandler(os.Stderr)
	}
	return &Progress{
		enabled:    enabled,
		handler:    handler,
		dirTimings: make(map[string]time.Time),
	}
}

// Report sends an event to the handler, if enabled.
func (p *Progress) Report(event Event) {
	if p == nil || !p.enabled {
		return
	}
	p.handler.Handle(event)
}

func (p *Progress) ScanStart(path string, excludePatterns []string) {
	p.Report(Event{Type: EventScanStart, Path: path, Info: strings.Join(excludePatterns, ", ")})
}

func (p *Progress) ScanComplete(files, dirs int, duration time.Duration) {
	p.Report(Event{Type: EventScanComplete, FileCount: files, DirCount: dirs, Duration: duration})
}

func (p *Progress) EnterDirectory(path string) {
	if p != nil && p.enabled {
		p.dirTimings[path] = time.Now()
	}
	p.Report(Event{Type: EventEnterDirectory, Path: path, Timestamp: time.Now()})
}

func (p *Progress) LeaveDirectory(path string) {
	var duration time.Duration
	if p != nil && p.enabled {
		if start, ok := p.dirTimings[path]; ok {
			duration = time.Since(start)
			delete(p.dirTimings, path)
		}
	}
	p.Report(Event{Type: EventLeaveDirectory, Path: path, Duration: duration})
}

func (p *Progress) LanguageDetected(path, language string) {
	p.Report(Event{Type: EventLanguageDetected, Path: path, Language: language})
}

func (p *Progress) FileProcessingStart(path string) {
	p.Report(Event{Type: EventFileProcessingStart, Path: path})
}

func (p *Progress) FileProcessingEnd(path string, duration time.Duration) {
	p.Report(Event{Type: EventFileProcessingEnd, Path: path, Duration: duration})
}

func (p *Progress) Skipped(path, reason string) {
	p.Report(Event{Type: EventSkipped, Path: path, Reason: reason})
}

func (p *Progress) ScanInitializing(path string, excludePatterns []string) {
	p.Report(Event{Type: EventScanInitializing, Path: path, Info: strings.Join(excludePatterns, ", ")})
}

func (p *Progress) FileWriting(path string) {
	p.Report(Event{Type: EventFileWriting, Path: path})
}

func (p *Progress) FileWritten(path string) {
	p.Report(Event{Type: EventFileWritten, Path: path})
}

func (p *Progress) Info(message string) {
	p.Report(Event{Type: EventInfo, Info: message})
}

func (p *Progress) GitIgnoreEnter(path string) {
	p.Report(Event{Type: EventGitIgnoreEnter, Path: path, Info: "entering .git/info/exclude scope: " + path})
}

func (p *Progress) GitIgnoreLeave(path string) {
	p.Report(Event{Type: EventGitIgnoreLeave, Path: path, Info: "leaving .git/info/exclude scope: " + path})
}
