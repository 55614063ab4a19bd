package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesCSVRoundTrip(t *testing.T) {
	purchase, err := Generate(testDate, "AC-202503-001", PurchaseGoods{
		ExclTax: 1_000_000, VAT: 180_000, VATRate: 18, Supplier: "SOTRA",
	})
	require.NoError(t, err)
	sale, err := Generate(testDate, "VT-202503-001", SaleServices{
		ExclTax: 500_000, VAT: 90_000, VATRate: 18, Customer: "CFAO",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, []Entry{purchase, sale}))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assertSameEntry(t, purchase, got[0])
	assertSameEntry(t, sale, got[1])
}

func assertSameEntry(t *testing.T, want, got Entry) {
	t.Helper()
	assert.Equal(t, want.Piece, got.Piece)
	assert.Equal(t, want.Journal, got.Journal)
	assert.Equal(t, want.Label, got.Label)
	assert.True(t, want.Date.Equal(got.Date))
	require.Len(t, got.Lines, len(want.Lines))
	for i, wl := range want.Lines {
		gl := got.Lines[i]
		assert.Equal(t, wl.Account, gl.Account)
		assert.Equal(t, wl.Label, gl.Label)
		assert.True(t, wl.Debit.Equal(gl.Debit), "line %d debit", i)
		assert.True(t, wl.Credit.Equal(gl.Credit), "line %d credit", i)
		assert.True(t, wl.VATBase.Equal(gl.VATBase), "line %d vat base", i)
		assert.Equal(t, wl.VATRate, gl.VATRate)
	}
}

func TestReadEntries_Empty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadEntries_BadRow(t *testing.T) {
	input := Header + "\nP-1,not-a-date,AC,label,601,achats,100,,,\n"
	_, err := ReadEntries(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadEntries_GroupsByPiece(t *testing.T) {
	input := Header + "\n" +
		"P-1,2025-03-15,AC,achat,601,achats,100,,,\n" +
		"P-1,2025-03-15,AC,achat,401,fournisseur,,100,,\n" +
		"P-2,2025-03-16,BQ,règlement,401,fournisseur,100,,,\n" +
		"P-2,2025-03-16,BQ,règlement,521,banque,,100,,\n"
	got, err := ReadEntries(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Lines, 2)
	assert.True(t, got[0].Balanced())
	assert.Equal(t, "BQ", got[1].Journal)
}
