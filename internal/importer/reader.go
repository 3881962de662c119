package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

// Spreadsheet columns, in export order
const (
	colCheckIn = iota + 1
	colCheckOut
	colNights
	colGuest
	colLanguage
	colTripReason
	colGross
	colMunicipalTax
	colCommission
	colBankFee
	colNetOfCommissions
	colNetOfVAT
	colVAT
	colPlatform

	minColumns   = colPlatform + 1
	colRemarks   = 18
	cancelMarker = "cancelada"
)

var ErrReadCSV = errors.New("importer: failed to read csv")

// Row is one reservation line of the spreadsheet
type Row struct {
	Line        int
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	PrimaryName string
	Nationality string
	Notes       string
	Financials  domain.Financials
}

// Skip is a line that was recognised as a reservation but not imported
type Skip struct {
	Line   int
	Reason string
}

// ReadRows parses a semicolon separated export. The header, summary lines and lines
// without both dates are ignored; cancelled reservations are reported as skipped.
func ReadRows(r io.Reader) ([]Row, []Skip, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		rows    []Row
		skipped []Skip
		header  = true
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrReadCSV, err)
		}
		if header {
			header = false
			continue
		}
		if len(record) < minColumns {
			continue
		}

		line, _ := reader.FieldPos(0)
		field := func(i int) string { return strings.TrimSpace(record[i]) }

		checkIn, errIn := ParseDate(field(colCheckIn))
		checkOut, errOut := ParseDate(field(colCheckOut))
		if errIn != nil || errOut != nil {
			continue
		}

		if len(record) > colRemarks && strings.Contains(strings.ToLower(record[colRemarks]), cancelMarker) {
			skipped = append(skipped, Skip{Line: line, Reason: "cancelled"})
			continue
		}
		if !checkOut.After(checkIn) {
			skipped = append(skipped, Skip{Line: line, Reason: "check-out is not after check-in"})
			continue
		}

		name, guests := ParseGuests(field(colGuest))

		var platform *string
		if p := field(colPlatform); p != "" {
			platform = &p
		}

		rows = append(rows, Row{
			Line:        line,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Guests:      guests,
			PrimaryName: name,
			Nationality: MapNationality(field(colLanguage)),
			Notes:       field(colTripReason),
			Financials: domain.Financials{
				GrossValue:   ParseMoney(field(colGross)),
				MunicipalTax: ParseMoney(field(colMunicipalTax)),
				Commission:   ParseMoney(field(colCommission)),
				BankFee:      ParseMoney(field(colBankFee)),
				VAT:          ParseMoney(field(colVAT)),
				Platform:     platform,
			},
		})
	}

	return rows, skipped, nil
}

// Booking turns the row into a confirmed booking with derived values filled in
func (r Row) Booking(accommodationID int64) *domain.Booking {
	b := &domain.Booking{
		AccommodationID: accommodationID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Guests:          r.Guests,
		Nationality:     r.Nationality,
		PrimaryName:     r.PrimaryName,
		Notes:           r.Notes,
		Status:          domain.StatusConfirmed,
		Financials:      r.Financials,
	}
	b.Financials.Derive()
	return b
}
