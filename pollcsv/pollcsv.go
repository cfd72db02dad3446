// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollcsv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/danielhkuo/staffwatch/models"
)

// responseTable is the fixed bilingual spelling table of the CSV export.
// "Unkown" is misspelled on the wire; do not correct it.
var responseTable = map[string]models.ResponseValue{
	"Yes":             models.ResponseAffirmative,
	"Ja":              models.ResponseAffirmative,
	"No":              models.ResponseNegative,
	"Nein":            models.ResponseNegative,
	"Unkown":          models.ResponseUnknown,
	"Unbekannt":       models.ResponseUnknown,
	"Under reserve":   models.ResponseConditional,
	"Unter Vorbehalt": models.ResponseConditional,
}

// UnrecognizedResponseError reports a cell whose text is not in the bilingual
// response table. Row and Column are 1-based positions in the raw export.
type UnrecognizedResponseError struct {
	Text   string
	Row    int
	Column int
}

func (e *UnrecognizedResponseError) Error() string {
	return fmt.Sprintf("unrecognized response %q at row %d, column %d", e.Text, e.Row, e.Column)
}

// MalformedPollDataError reports a structural problem in the raw export,
// such as mismatched column counts or missing header rows.
type MalformedPollDataError struct {
	Reason string
}

func (e *MalformedPollDataError) Error() string {
	return "malformed poll data: " + e.Reason
}

// Column is one surviving time-slot column of the export: the merged two-row
// header and the normalized response of every respondent, in row order.
type Column struct {
	Label     string
	Responses []models.ResponseValue
}

// NormalizeResponse maps one raw cell to its response value. Row and column
// are the 1-based cell position, carried into the error on failure. Blank
// cells are not in the table and fail like any other unknown text; callers
// that want tolerance must pre-filter.
func NormalizeResponse(text string, row, column int) (models.ResponseValue, error) {
	v, ok := responseTable[text]
	if !ok {
		return "", &UnrecognizedResponseError{Text: text, Row: row, Column: column}
	}
	return v, nil
}

// Parse consumes the raw CSV export: two header rows, then one row per
// respondent, first column holding respondent names. The header rows are
// zipped positionally into slot labels. Columns that are empty across all
// data rows are dropped; every remaining cell is normalized.
//
// The returned columns are in export order and all hold the same number of
// responses. Structural problems fail with *MalformedPollDataError, unknown
// cell text with *UnrecognizedResponseError; in both cases no partial result
// is returned.
func Parse(raw string) ([]Column, error) {
	r := csv.NewReader(strings.NewReader(raw))
	records, err := r.ReadAll()
	if err != nil {
		// csv.Reader rejects rows whose field count differs from the first.
		return nil, &MalformedPollDataError{Reason: err.Error()}
	}
	if len(records) < 3 {
		return nil, &MalformedPollDataError{
			Reason: fmt.Sprintf("need two header rows and at least one data row, got %d rows", len(records)),
		}
	}

	header1, header2 := records[0], records[1]
	body := records[2:]

	columns := make([]Column, 0, len(header1)-1)
	for col := 1; col < len(header1); col++ {
		empty := true
		for _, row := range body {
			if row[col] != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		c := Column{
			Label:     header1[col] + " " + header2[col],
			Responses: make([]models.ResponseValue, 0, len(body)),
		}
		for i, row := range body {
			// Rows are 1-based and offset by the two header rows.
			v, err := NormalizeResponse(row[col], i+3, col+1)
			if err != nil {
				return nil, err
			}
			c.Responses = append(c.Responses, v)
		}
		columns = append(columns, c)
	}

	return columns, nil
}
