// Package fsexport reads the competition-management system's export: a ZIP
// of XML documents describing participants, their registered events and
// assigned music, plus a judges file listing officials.
//
// A malformed XML document aborts that source with a parse error before any
// row is returned; reconciliation is never run against a partially parsed
// export.
package fsexport

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"isrevy/internal/domain/model"
)

type document struct {
	Competition competition `xml:"Competition"`
}

type competition struct {
	Participants []participant `xml:"Participant"`
	Officials    []official    `xml:"Official"`
}

type participant struct {
	GivenName    string       `xml:"GivenName,attr"`
	FamilyName   string       `xml:"FamilyName,attr"`
	PrintName    string       `xml:"PrintName,attr"`
	Gender       string       `xml:"Gender,attr"`
	Organisation string       `xml:"Organisation,attr"`
	Code         string       `xml:"Code,attr"`
	Disciplines  []discipline `xml:"Discipline"`
}

type discipline struct {
	Events []registeredEvent `xml:"RegisteredEvent"`
}

type registeredEvent struct {
	Event   string       `xml:"Event,attr"`
	Entries []eventEntry `xml:"EventEntry"`
}

type eventEntry struct {
	Code  string `xml:"Code,attr"`
	Pos   string `xml:"Pos,attr"`
	Value string `xml:"Value,attr"`
}

type official struct {
	Code string `xml:"Code,attr"`
}

// safeInt mirrors the export's lenient integer fields: junk reads as 0.
func safeInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// decodeXMLBytes returns data as UTF-8, falling back to Windows-1252 when
// the bytes are not valid UTF-8. The export tool emits either depending on
// the host machine.
func decodeXMLBytes(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder()))
	if err != nil {
		return data
	}
	return out
}

// charsetReader accepts the charset labels the export declares. The bytes
// were already converted to UTF-8 by decodeXMLBytes, so known labels pass
// the input through unchanged.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "utf-8", "utf8", "windows-1252", "cp1252", "iso-8859-1", "latin1":
		return input, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
}

func decode(data []byte) (document, error) {
	var doc document
	dec := xml.NewDecoder(bytes.NewReader(decodeXMLBytes(data)))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return document{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return doc, nil
}

// ParseCompetition extracts export rows from one competition XML document.
// A participant registered for several events yields one row per event.
func ParseCompetition(data []byte) ([]model.ExportRow, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	var rows []model.ExportRow
	for _, part := range doc.Competition.Participants {
		for _, disc := range part.Disciplines {
			for _, ev := range disc.Events {
				row := model.ExportRow{
					Given:           strings.TrimSpace(part.GivenName),
					Family:          strings.TrimSpace(part.FamilyName),
					PrintName:       strings.TrimSpace(part.PrintName),
					Gender:          strings.TrimSpace(part.Gender),
					Organisation:    strings.TrimSpace(part.Organisation),
					ParticipantCode: strings.TrimSpace(part.Code),
					Event:           strings.TrimSpace(ev.Event),
				}
				fillEntries(&row, ev.Entries)
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

type posValue struct {
	pos int
	val string
}

func fillEntries(row *model.ExportRow, entries []eventEntry) {
	var free, short []posValue
	for _, e := range entries {
		code := strings.TrimSpace(e.Code)
		pos := safeInt(e.Pos)
		val := strings.TrimSpace(e.Value)

		switch code {
		case "ENTRY_ORDER":
			row.EntryOrder = val
		case "MUSIC":
			switch pos {
			case 1:
				row.Music1 = val
			case 2:
				row.Music2 = val
			}
		case "CLUB":
			switch pos {
			case 1:
				row.Club1 = val
			case 2:
				row.Club2 = val
			}
		case "ELEMENT_CODE_FREE":
			free = append(free, posValue{pos, val})
		case "ELEMENT_CODE_SHORT":
			short = append(short, posValue{pos, val})
		}
	}
	row.ElementsFree = sorted(free)
	row.ElementsShort = sorted(short)
}

// sorted orders element codes by position and drops blanks.
func sorted(vals []posValue) []string {
	sort.SliceStable(vals, func(i, j int) bool { return vals[i].pos < vals[j].pos })
	var out []string
	for _, v := range vals {
		if v.val != "" {
			out = append(out, v.val)
		}
	}
	return out
}

// ParseOfficials counts the officials in a judges XML document.
func ParseOfficials(data []byte) (int, error) {
	doc, err := decode(data)
	if err != nil {
		return 0, err
	}
	return len(doc.Competition.Officials), nil
}
