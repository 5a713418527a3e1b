package tsv

import (
	"encoding/csv"
	"os"
	"runtime"

	"tcvariant/models"
	e "tcvariant/models/errors"
)

// Write replaces the file at path with a header row followed by one
// tab-delimited row per record. The header is written even when records
// is empty.
func Write(records []models.AnnotationRecord, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &e.WriteError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &e.WriteError{Path: path, Err: closeErr}
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	w.UseCRLF = runtime.GOOS == "windows"

	if err := w.Write(models.TsvHeaders); err != nil {
		return &e.WriteError{Path: path, Err: err}
	}
	for _, record := range records {
		if err := w.Write(record.Row()); err != nil {
			return &e.WriteError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &e.WriteError{Path: path, Err: err}
	}

	return nil
}
