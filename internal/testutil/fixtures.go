package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const (
	SenderIBAN   = "ES9121000418450200051332"
	ReceiverIBAN = "ES7921000813610123456789"
	Concept      = "monthly rent payment"
)

// Now is the reference instant used by tests: 14 October 2026, 09:15:30 UTC.
var Now = time.Date(2026, time.October, 14, 9, 15, 30, 0, time.UTC)

// Clock returns a function that reports t on every call.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TickingClock starts at t and advances by step on every call.
func TickingClock(t time.Time, step time.Duration) func() time.Time {
	current := t.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

// Today and Yesterday are Now's date and the date before it in DD/MM/YYYY.
func Today() string     { return Now.Format("02/01/2006") }
func Yesterday() string { return Now.AddDate(0, 0, -1).Format("02/01/2006") }

// TempPath returns a path named name inside a per-test directory.
func TempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func ReadFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}
