package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSimpleHandler(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name: "scan start",
			event: Event{
				Type: EventScanStart,
				Path: "/path/to/project",
				Info: "node_modules, vendor",
			},
			expected: "[SCAN] starting: /path/to/project\n[SCAN] excluding: node_modules, vendor\n",
		},
		{
			name: "enter directory",
			event: Event{
				Type: EventEnterDirectory,
				Path: "/backend",
			},
			expected: "[DIR]  entering: /backend\n",
		},
		{
			name: "language detected",
			event: Event{
				Type:     EventLanguageDetected,
				Path:     "/backend/main.go",
				Language: "Go",
			},
			expected: "[LANG] /backend/main.go: Go\n",
		},
		{
			name: "file processing",
			event: Event{
				Type: EventFileProcessingStart,
				Path: "/package.json",
			},
			expected: "[FILE] parsing: /package.json\n",
		},
		{
			name: "skipped",
			event: Event{
				Type:   EventSkipped,
				Path:   "/node_modules",
				Reason: "excluded",
			},
			expected: "[SKIP] /node_modules (excluded)\n",
		},
		{
			name: "scan complete",
			event: Event{
				Type:      EventScanComplete,
				FileCount: 3247,
				DirCount:  412,
				Duration:  2345 * time.Millisecond,
			},
			expected: "[SCAN] completed: 3247 files, 412 directories in 2.3s\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := NewSimpleHandler(buf)
			handler.Handle(tt.event)

			if buf.String() != tt.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.expected, buf.String())
			}
		})
	}
}

func TestTreeHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewTreeHandler(buf)

	handler.Handle(Event{Type: EventScanStart, Path: "/project"})
	handler.Handle(Event{Type: EventEnterDirectory, Path: "/"})
	handler.Handle(Event{Type: EventLanguageDetected, Path: "/main.go", Language: "Go"})
	handler.Handle(Event{Type: EventEnterDirectory, Path: "/backend"})
	handler.Handle(Event{Type: EventLanguageDetected, Path: "/backend/app.py", Language: "Python"})
	handler.Handle(Event{Type: EventLeaveDirectory, Path: "/backend"})
	handler.Handle(Event{Type: EventLeaveDirectory, Path: "/"})
	handler.Handle(Event{Type: EventScanComplete, FileCount: 100, DirCount: 10, Duration: time.Second})

	output := buf.String()

	expectedParts := []string{
		"scanning /project",
		"|- /",
		"|- /main.go: Go",
		"|  |- /backend",
		"|  |- /backend/app.py: Python",
		"`- completed: 100 files, 10 directories",
	}

	for _, part := range expectedParts {
		if !strings.Contains(output, part) {
			t.Errorf("expected output to contain: %s\ngot:\n%s", part, output)
		}
	}
}

func TestNullHandlerDiscardsEvents(t *testing.T) {
	handler := NewNullHandler()
	handler.Handle(Event{Type: EventInfo, Info: "ignored"})
}

func TestProgressReporter(t *testing.T) {
	t.Run("enabled reporter calls handler", func(t *testing.T) {
		buf := &bytes.Buffer{}
		progress := New(true, NewSimpleHandler(buf))

		progress.EnterDirectory("/test")

		if buf.Len() == 0 {
			t.Error("expected handler to be called when enabled")
		}
	})

	t.Run("disabled reporter does not call handler", func(t *testing.T) {
		buf := &bytes.Buffer{}
		progress := New(false, NewSimpleHandler(buf))

		progress.EnterDirectory("/test")

		if buf.Len() > 0 {
			t.Error("expected handler not to be called when disabled")
		}
	})
}

func TestConvenienceMethods(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := New(true, NewSimpleHandler(buf))

	progress.ScanStart("/project", []string{"node_modules", "vendor"})
	progress.EnterDirectory("/backend")
	progress.LanguageDetected("/backend/main.go", "Go")
	progress.FileProcessingStart("/package.json")
	progress.Skipped("/node_modules", "excluded")
	progress.ScanComplete(3247, 412, 2*time.Second)

	output := buf.String()

	expectedLines := 8 // scan start (2 lines) + 5 other events + the language summary line
	actualLines := strings.Count(output, "\n")

	if actualLines != expectedLines {
		t.Errorf("expected %d lines, got %d\noutput:\n%s", expectedLines, actualLines, output)
	}
}

func BenchmarkSimpleHandler(b *testing.B) {
	buf := &bytes.Buffer{}
	handler := NewSimpleHandler(buf)
	event := Event{Type: EventEnterDirectory, Path: "/some/path"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.Handle(event)
	}
}

func BenchmarkProgressReporter(b *testing.B) {
	buf := &bytes.Buffer{}
	progress := New(true, NewSimpleHandler(buf))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		progress.EnterDirectory("/some/path")
	}
}

func BenchmarkProgressReporterDisabled(b *testing.B) {
	buf := &bytes.Buffer{}
	progress := New(false, NewSimpleHandler(buf))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		progress.EnterDirectory("/some/path")
	}
}
