// Package tabular writes string tables as CSV through gota data frames.
package tabular

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
)

// Frame builds a data frame with one string column per header entry.
// Every row must have exactly len(header) cells.
func Frame(header []string, rows [][]string) (dataframe.DataFrame, error) {
	if len(header) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("table has no columns")
	}

	columns := make([]series.Series, len(header))
	for i, name := range header {
		values := make([]string, len(rows))
		for j, row := range rows {
			if len(row) != len(header) {
				return dataframe.DataFrame{}, fmt.Errorf("row %d has %d cells, want %d", j, len(row), len(header))
			}
			values[j] = row[i]
		}
		columns[i] = series.New(values, series.String, name)
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("building table: %w", df.Err)
	}
	return df, nil
}

// Write writes header and rows to w as CSV. An empty table still gets its
// header line.
func Write(w io.Writer, header []string, rows [][]string) error {
	df, err := Frame(header, rows)
	if err != nil {
		return err
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}

// WriteFile writes the table to path, creating parent directories. An
// existing file is replaced.
func WriteFile(path string, header []string, rows [][]string) error {
	if path == "" {
		return kerrors.ErrNoOutputPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	if err := Write(f, header, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
