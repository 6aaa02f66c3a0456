package excel

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
)

var ErrUnrecognizedDate = errors.New("unrecognized date value")

// Spreadsheets arrive with dates typed by hand in whatever format the author
// favored, or as raw Excel serial numbers when the cell carried date
// formatting. NormalizeDate maps all of those onto the canonical YYYY-MM-DD
// storage form.
var dateLayouts = []string{
	constants.DateLayout,
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// excelEpoch is day zero of Excel's 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeDate converts a spreadsheet cell value to YYYY-MM-DD.
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrUnrecognizedDate
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 59 && serial < 200000 {
		return excelEpoch.AddDate(0, 0, int(serial)).Format(constants.DateLayout), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(constants.DateLayout), nil
		}
	}
	return "", ErrUnrecognizedDate
}
