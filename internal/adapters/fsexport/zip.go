package fsexport

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"isrevy/internal/domain/model"
)

// Export is the content of one competition export archive.
type Export struct {
	Rows      []model.ExportRow
	Officials int
}

// ReadZip reads every XML entry inside the export archive. Entries whose
// name contains "judges" are counted as officials lists, everything else is
// parsed as competition data. A judges file that fails to parse only zeroes
// the officials count; a broken competition file is fatal to the source.
func ReadZip(path string) (Export, error) {
	zf, err := zip.OpenReader(path)
	if err != nil {
		return Export{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer zf.Close()

	var out Export
	sawXML := false
	for _, entry := range zf.File {
		name := strings.ToLower(entry.Name)
		if !strings.HasSuffix(name, ".xml") {
			continue
		}
		sawXML = true

		data, err := readEntry(entry)
		if err != nil {
			return Export{}, fmt.Errorf("%w: %s: %w", ErrParse, entry.Name, err)
		}

		if strings.Contains(name, "judges") {
			if n, err := ParseOfficials(data); err == nil {
				out.Officials += n
			}
			continue
		}

		rows, err := ParseCompetition(data)
		if err != nil {
			return Export{}, fmt.Errorf("%s: %w", entry.Name, err)
		}
		out.Rows = append(out.Rows, rows...)
	}

	if !sawXML {
		return Export{}, ErrNoXML
	}
	return out, nil
}

// ReadFile reads a single competition XML file outside an archive.
func ReadFile(path string) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	rows, err := ParseCompetition(data)
	if err != nil {
		return Export{}, err
	}
	return Export{Rows: rows}, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
