package feedback

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecordAppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	r := NewRecorder(path)

	if err := r.Record("Very helpful for my loan papers"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := r.Record("Please add Marathi"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(data))
	}
	if !strings.HasSuffix(lines[0], "Very helpful for my loan papers") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], ": Please add Marathi") {
		t.Errorf("second line must be timestamp-prefixed, got %q", lines[1])
	}
}

func TestRecordRejectsBlankFeedback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")
	r := NewRecorder(path)

	if err := r.Record("   \n"); err == nil {
		t.Fatal("expected an error for blank feedback")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("blank feedback must not create the file")
	}
}
