// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pollcsv parses the CSV export of a scheduling poll into normalized
columns.

# Export Format

UTF-8, comma-separated, double-quote-wrapped cells. Exactly two header rows,
then one row per respondent. The first column holds respondent names and is
excluded from the output. The two header cells of every other column join
with a single space into the slot label:

	"","2025-01-10","2025-01-10"
	"","09:00","12:00-14:00"
	"Alice","Ja","Yes"
	"Bob","Nein","No"

Cell values are one of eight bilingual spellings (Yes/Ja, No/Nein,
Unkown/Unbekannt, Under reserve/Unter Vorbehalt) mapping onto the four
models.ResponseValue constants.

# Failure Modes

  - *MalformedPollDataError: mismatched column counts, missing header rows
  - *UnrecognizedResponseError: cell text outside the spelling table,
    carrying the text and its 1-based row/column position

Both are fatal to the parse; no partial column set is returned.
*/
package pollcsv
