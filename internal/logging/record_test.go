package logger

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestRecordFormat(t *testing.T) {
	r := Record{
		Level:   InfoLevel,
		Message: "fetched 3 ids",
		Caller:  Caller{File: "scraper", Function: "(*Tool).Main", Line: 42},
		Time:    time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.Local),
	}

	want := "INFO     2024-05-01 10:00:00.123 fetched 3 ids at scraper#(*Tool).Main() lineno=42"
	if got := r.Format(); got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestRecordFormatPadsLongestLevel(t *testing.T) {
	r := Record{Level: CriticalLevel, Message: "x", Time: time.Now()}
	if !strings.HasPrefix(r.Format(), "CRITICAL ") {
		t.Errorf("CRITICAL should be followed by one space, got %q", r.Format())
	}
}

func TestCallerAt(t *testing.T) {
	_, file, line, _ := runtime.Caller(0)
	c := callerAt(0)

	wantFile := strings.TrimSuffix(filepath.Base(file), ".go")
	if c.File != wantFile {
		t.Errorf("File = %q, want %q", c.File, wantFile)
	}
	if c.Function != "TestCallerAt" {
		t.Errorf("Function = %q, want TestCallerAt", c.Function)
	}
	if c.Line != line+1 {
		t.Errorf("Line = %d, want %d", c.Line, line+1)
	}
}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"github.com/PolarWolf314/followscraper/internal/lifecycle.(*Runner).Run", "(*Runner).Run"},
		{"main.main", "main"},
		{"github.com/x/y.init.0", "init.0"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := shortFuncName(tt.in); got != tt.want {
			t.Errorf("shortFuncName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 2, 3, 123456789, time.UTC)
	if got := Stamp(ts); got != "20240501100203123456" {
		t.Errorf("Stamp() = %q, want 20240501100203123456", got)
	}
}

func TestResolvePathSubstitutesDate(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{File: filepath.Join(dir, "run-%DATE%.log")}

	first, err := cfg.ResolvePath(time.Date(2024, 5, 1, 10, 0, 0, 1000, time.UTC))
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	second, err := cfg.ResolvePath(time.Date(2024, 5, 1, 10, 0, 0, 2000, time.UTC))
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}

	if first == second {
		t.Errorf("expected distinct paths, both were %s", first)
	}
	if strings.Contains(first, DatePlaceholder) {
		t.Errorf("placeholder not substituted: %s", first)
	}
	if filepath.Base(first) != "run-20240501100000000001.log" {
		t.Errorf("unexpected file name %s", filepath.Base(first))
	}
}

func TestResolvePathDefaultsFile(t *testing.T) {
	got, err := Config{}.ResolvePath(time.Now())
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if !filepath.IsAbs(got) || filepath.Base(got) != "followscraper.log" {
		t.Errorf("expected absolute default path, got %s", got)
	}
}
