package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ohada-dev/fisc/internal/money"
)

// Header is the CSV header for exported entries. One row per line;
// lines sharing a piece reference form one entry.
const Header = "piece,date,journal,entry_label,account,line_label,debit,credit,vat_base,vat_rate"

const (
	numFields     = 10
	dateFormat    = "2006-01-02"
	colPiece      = 0
	colDate       = 1
	colJournal    = 2
	colEntryLabel = 3
	colAccount    = 4
	colLineLabel  = 5
	colDebit      = 6
	colCredit     = 7
	colVATBase    = 8
	colVATRate    = 9
)

// WriteEntries writes entries as CSV, header included.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		for _, l := range e.Lines {
			if err := cw.Write(marshalLine(e, l)); err != nil {
				return fmt.Errorf("writing entry %s: %w", e.Piece, err)
			}
		}
	}
	return cw.Error()
}

// ReadEntries reads CSV rows back into entries, grouping consecutive
// rows by piece reference.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading entries CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		piece := rec[colPiece]
		line, date, journal, entryLabel, err := unmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		if n := len(entries); n > 0 && entries[n-1].Piece == piece {
			entries[n-1].Lines = append(entries[n-1].Lines, line)
			continue
		}
		entries = append(entries, Entry{
			Date:    date,
			Journal: journal,
			Piece:   piece,
			Label:   entryLabel,
			Lines:   []Line{line},
		})
	}
	return entries, nil
}

func marshalLine(e Entry, l Line) []string {
	row := make([]string, numFields)
	row[colPiece] = e.Piece
	row[colDate] = e.Date.Format(dateFormat)
	row[colJournal] = e.Journal
	row[colEntryLabel] = e.Label
	row[colAccount] = l.Account
	row[colLineLabel] = l.Label

	if !l.Debit.IsZero() {
		row[colDebit] = l.Debit.String()
	}
	if !l.Credit.IsZero() {
		row[colCredit] = l.Credit.String()
	}
	if !l.VATBase.IsZero() {
		row[colVATBase] = l.VATBase.String()
	}
	if l.VATRate != 0 {
		row[colVATRate] = strconv.FormatFloat(l.VATRate, 'f', -1, 64)
	}
	return row
}

func unmarshalLine(rec []string) (Line, time.Time, string, string, error) {
	date, err := time.Parse(dateFormat, rec[colDate])
	if err != nil {
		return Line{}, time.Time{}, "", "", fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	line := Line{Account: rec[colAccount], Label: rec[colLineLabel]}

	if rec[colDebit] != "" {
		if line.Debit, err = money.Parse(rec[colDebit]); err != nil {
			return Line{}, time.Time{}, "", "", fmt.Errorf("parsing debit %q: %w", rec[colDebit], err)
		}
	}
	if rec[colCredit] != "" {
		if line.Credit, err = money.Parse(rec[colCredit]); err != nil {
			return Line{}, time.Time{}, "", "", fmt.Errorf("parsing credit %q: %w", rec[colCredit], err)
		}
	}
	if rec[colVATBase] != "" {
		if line.VATBase, err = money.Parse(rec[colVATBase]); err != nil {
			return Line{}, time.Time{}, "", "", fmt.Errorf("parsing vat_base %q: %w", rec[colVATBase], err)
		}
	}
	if rec[colVATRate] != "" {
		if line.VATRate, err = strconv.ParseFloat(rec[colVATRate], 64); err != nil {
			return Line{}, time.Time{}, "", "", fmt.Errorf("parsing vat_rate %q: %w", rec[colVATRate], err)
		}
	}

	return line, date, rec[colJournal], rec[colEntryLabel], nil
}
