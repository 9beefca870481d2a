// Package regsheet reads the registration sheet (CSV export of the sign-up
// spreadsheet) into raw registration rows.
//
// Column discovery is header-driven with Norwegian and English aliases. A
// sheet without a given-name or family-name column is useless for
// reconciliation, so that is fatal to the source: the caller gets an empty
// set and an error, never a partial, misleading one.
package regsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"isrevy/internal/domain/model"
	"isrevy/internal/domain/normalize"
)

// Column aliases, compared against normalized header cells.
var (
	givenAliases  = []string{"fornavn", "given", "givenname", "given name", "firstname", "first name"}
	familyAliases = []string{"etternavn", "family", "familyname", "family name", "surname", "lastname", "last name"}
	genderAliases = []string{"kjonn", "gender", "sex"}
	clubAliases   = []string{"klubb", "club", "organisasjon", "organisation", "forening"}
	statusAliases = []string{"status", "pameldingsstatus", "pamelding", "registration status"}
)

type columns struct {
	given  int
	family int
	gender int
	club   int
	status int
}

func findColumn(header []string, aliases []string) int {
	for i, cell := range header {
		h := normalize.Normalize(cell)
		for _, alias := range aliases {
			if h == alias {
				return i
			}
		}
	}
	return -1
}

// ReadFile reads the registration sheet at path.
func ReadFile(path string) ([]model.RegistrationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses registration rows from r. The first non-empty record is the
// header row.
func Read(r io.Reader) ([]model.RegistrationRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	headerIdx := -1
	for i, rec := range records {
		if !blank(rec) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: sheet has no header row", ErrMissingColumns)
	}

	header := records[headerIdx]
	cols := columns{
		given:  findColumn(header, givenAliases),
		family: findColumn(header, familyAliases),
		gender: findColumn(header, genderAliases),
		club:   findColumn(header, clubAliases),
		status: findColumn(header, statusAliases),
	}
	if cols.given < 0 || cols.family < 0 {
		return nil, fmt.Errorf("%w: no given/family name columns in header %v", ErrMissingColumns, header)
	}

	var rows []model.RegistrationRow
	for _, rec := range records[headerIdx+1:] {
		if blank(rec) {
			continue
		}
		rows = append(rows, model.RegistrationRow{
			Given:      cell(rec, cols.given),
			Family:     cell(rec, cols.family),
			Gender:     cell(rec, cols.gender),
			Club:       cell(rec, cols.club),
			StatusText: cell(rec, cols.status),
		})
	}
	return rows, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
