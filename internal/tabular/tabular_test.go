package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
)

var header = []string{"id", "name", "screen_name"}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{
		{"1", "Alice", "alice"},
		{"2", "Bob, Jr.", "bob"},
		{"003", "NA", "zero"},
	}
	if err := Write(&buf, header, rows); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := "id,name,screen_name\n1,Alice,alice\n2,\"Bob, Jr.\",bob\n003,NA,zero\n"
	if got := buf.String(); got != want {
		t.Errorf("Write output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteEmptyTableKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, header, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "id,name,screen_name\n" {
		t.Errorf("Write output = %q", got)
	}
}

func TestFrameErrors(t *testing.T) {
	if _, err := Frame(nil, nil); err == nil {
		t.Error("expected error for table without columns")
	}
	if _, err := Frame(header, [][]string{{"1", "short"}}); err == nil {
		t.Error("expected error for ragged row")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "followers.csv")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale contents\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rows := [][]string{{"10", "日本語の名前", "jp"}}
	if err := WriteFile(path, header, rows); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if strings.Join(records[0], ",") != "id,name,screen_name" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][1] != "日本語の名前" {
		t.Errorf("name = %q", records[1][1])
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.csv")
	if err := WriteFile(path, header, nil); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestWriteFileWithoutPath(t *testing.T) {
	if err := WriteFile("", header, nil); !errors.Is(err, kerrors.ErrNoOutputPath) {
		t.Errorf("error = %v, want ErrNoOutputPath", err)
	}
}
