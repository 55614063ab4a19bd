package auditlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		RunID:     "f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		Tool:      "is_calculate",
		Status:    "ok",
		Summary:   "country=CM turnover=50000000",
	}
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	err := Append(path, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "is_calculate", entries[0].Tool)
}

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Tool = "vat_compute"
	e2.Status = "error"
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "is_calculate", entries[0].Tool)
	assert.Equal(t, "vat_compute", entries[1].Tool)
	assert.Equal(t, "error", entries[1].Status)
}

func TestRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	original := testEntry()
	require.NoError(t, Append(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.RunID, got.RunID)
	assert.Equal(t, original.Tool, got.Tool)
	assert.Equal(t, original.Status, got.Status)
	assert.Equal(t, original.Summary, got.Summary)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "audit.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	require.NoError(t, os.WriteFile(path, []byte(Header+"\n"), 0o644))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}

func TestNewRunID_Unique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSummarize_StableOrder(t *testing.T) {
	kwargs := map[string]any{
		"turnover": 50_000_000.0,
		"country":  "CM",
	}
	s := Summarize(kwargs)
	assert.Equal(t, "country=CM turnover=5e+07", s)
	assert.Equal(t, s, Summarize(kwargs), "same inputs, same summary")
	assert.Empty(t, Summarize(nil))
}
