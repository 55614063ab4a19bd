package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPiece returns a piece reference like "VT-202501-001".
func FormatPiece(journal string, year, month, seq int) string {
	return fmt.Sprintf("%s-%04d%02d-%03d", strings.ToUpper(journal), year, month, seq)
}

// PieceForDate is FormatPiece keyed on the entry date.
func PieceForDate(journal string, date time.Time, seq int) string {
	return FormatPiece(journal, date.Year(), int(date.Month()), seq)
}

// ParsePiece parses "VT-202501-001" into journal, year, month, seq.
func ParsePiece(piece string) (journal string, year, month, seq int, err error) {
	parts := strings.SplitN(piece, "-", 3)
	if len(parts) != 3 {
		return "", 0, 0, 0, fmt.Errorf("invalid piece reference format: %q", piece)
	}

	journal = parts[0]
	if journal == "" {
		return "", 0, 0, 0, fmt.Errorf("missing journal in piece reference %q", piece)
	}

	if len(parts[1]) != 6 {
		return "", 0, 0, 0, fmt.Errorf("invalid period in piece reference %q", piece)
	}
	year, err = strconv.Atoi(parts[1][:4])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid year in piece reference %q: %w", piece, err)
	}
	month, err = strconv.Atoi(parts[1][4:])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid month in piece reference %q: %w", piece, err)
	}
	if month < 1 || month > 12 {
		return "", 0, 0, 0, fmt.Errorf("month out of range in piece reference %q", piece)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid sequence in piece reference %q: %w", piece, err)
	}

	return journal, year, month, seq, nil
}

// Next returns the piece reference following the given one, within the
// same journal and period.
func Next(piece string) (string, error) {
	journal, year, month, seq, err := ParsePiece(piece)
	if err != nil {
		return "", err
	}
	return FormatPiece(journal, year, month, seq+1), nil
}
