package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohada-dev/fisc/internal/config"
	"github.com/ohada-dev/fisc/internal/ledger"
)

// run executes the CLI in-process and returns everything it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// runJSON executes the CLI and decodes its JSON output.
func runJSON(t *testing.T, args ...string) map[string]any {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
	return result
}

func TestISCommand_Cameroon(t *testing.T) {
	result := runJSON(t, "is",
		"--country", "CM",
		"--accounting-result", "10000000",
		"--turnover", "50000000",
	)

	assert.Equal(t, "CM", result["country"])
	assert.Equal(t, 33.0, result["rate"])
	assert.Equal(t, 3_300_000.0, result["gross_tax"])
	assert.Equal(t, 1_100_000.0, result["minimum_tax"])
	assert.Equal(t, 3_300_000.0, result["tax_due"])
	assert.Equal(t, 825_000.0, result["installment"])
}

func TestVATCommand_FlatRate(t *testing.T) {
	result := runJSON(t, "vat", "--amount", "1000000", "--rate", "18")

	assert.Equal(t, 180_000.0, result["vat"])
	assert.Equal(t, 1_180_000.0, result["amount_incl_tax"])
}

func TestVATCommand_Inclusive(t *testing.T) {
	result := runJSON(t, "vat", "--amount", "1180000", "--rate", "18", "--inclusive")

	assert.Equal(t, 1_000_000.0, result["amount_excl_tax"])
	assert.Equal(t, 180_000.0, result["vat"])
}

func TestVATCommand_CountrySurtax(t *testing.T) {
	result := runJSON(t, "vat", "--amount", "1000000", "--country", "CM")

	assert.Equal(t, 17.5, result["rate"])
	assert.Equal(t, 175_000.0, result["vat"])
	assert.Equal(t, 17_500.0, result["surtax"])
	assert.Equal(t, 192_500.0, result["total_vat"])
	assert.Equal(t, 1_192_500.0, result["amount_incl_tax"])
}

func TestCashflowCommand(t *testing.T) {
	result := runJSON(t, "cashflow",
		"--equity", "20000000",
		"--long-term-debt", "5000000",
		"--fixed-assets", "15000000",
		"--inventory", "8000000",
		"--receivables", "4000000",
		"--payables", "6000000",
		"--tax-social", "2000000",
		"--net-income", "3000000",
		"--depreciation", "1200000",
	)

	assert.Equal(t, 10_000_000.0, result["working_capital"])
	assert.Equal(t, 4_000_000.0, result["working_capital_need"])
	assert.Equal(t, 6_000_000.0, result["net_cash"])
	assert.Equal(t, 4_200_000.0, result["caf"])
}

func TestWithholdingCommand_TypeRequired(t *testing.T) {
	_, err := run(t, "withholding", "--gross", "100000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", dir, "--name", "Ets Kouassi", "--country", "CM")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	cfg, err := config.Load(filepath.Join(dir, "fisc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Ets Kouassi", cfg.Business.Name)
	assert.Equal(t, "CM", cfg.Business.Country)

	data, err := os.ReadFile(filepath.Join(dir, "entries.csv"))
	require.NoError(t, err)
	assert.Equal(t, ledger.Header+"\n", string(data))

	for _, sub := range []string{"exports", "logs"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), "logs/")
}

func TestInitCommand_RefusesExistingProject(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "init", dir, "--name", "First")
	require.NoError(t, err)

	_, err = run(t, "init", dir, "--name", "Second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestEntryGenerateThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.csv")

	result := runJSON(t, "entry", "generate",
		"--operation", "sale_goods",
		"--date", "2025-01-15",
		"--excl-tax", "1000000",
		"--vat-rate", "18",
		"--customer", "ACME",
		"--out", path,
	)

	assert.Equal(t, "VT", result["journal"])
	assert.Equal(t, "VT-202501-001", result["piece"])
	assert.Equal(t, 1_180_000.0, result["total_debit"])
	assert.Equal(t, 1_180_000.0, result["total_credit"])
	assert.Equal(t, true, result["balanced"])

	out, err := run(t, "validate", path, "--country", "CI")
	require.NoError(t, err)
	assert.Contains(t, out, "VT-202501-001: OK")
	assert.Contains(t, out, "1 entries checked, 0 with errors")
}

func TestEntryGenerateVATReturnThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.csv")

	result := runJSON(t, "entry", "generate",
		"--operation", "vat_return",
		"--date", "2025-04-30",
		"--collected", "450000",
		"--deductible", "225000",
		"--out", path,
	)
	assert.Equal(t, true, result["balanced"])

	out, err := run(t, "validate", path, "--country", "CI")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestEntryGenerate_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.csv")

	for _, seq := range []string{"1", "2"} {
		_ = runJSON(t, "entry", "generate",
			"--operation", "purchase_goods",
			"--date", "2025-02-01",
			"--seq", seq,
			"--excl-tax", "500000",
			"--vat-rate", "18",
			"--supplier", "SODECI",
			"--out", path,
		)
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	entries, err := ledger.ReadEntries(f)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "AC-202502-001", entries[0].Piece)
	assert.Equal(t, "AC-202502-002", entries[1].Piece)
}

func TestValidateCommand_ReportsUnbalanced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.csv")
	csv := ledger.Header + "\n" +
		"OD-202501-001,2025-01-10,OD,Ecriture bancale,601,Achats,1000,0,0,0\n" +
		"OD-202501-001,2025-01-10,OD,Ecriture bancale,401,Fournisseur,0,900,0,0\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "1 entries checked, 1 with errors")
}

func TestBenfordCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amounts.txt")
	content := "# montants factures\n\n123.45\n1890\n250000\n3100\n987\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result := runJSON(t, "benford", path)

	assert.Equal(t, 5.0, result["total_amounts"])
	digits, ok := result["digits"].([]any)
	require.True(t, ok)
	assert.Len(t, digits, 9)
}

func TestBenfordCommand_FromEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.csv")
	_ = runJSON(t, "entry", "generate",
		"--operation", "sale_goods",
		"--date", "2025-03-01",
		"--excl-tax", "1000000",
		"--vat-rate", "18",
		"--out", path,
	)

	result := runJSON(t, "benford", path, "--entries")

	// One amount per line of the sale entry: client, revenue, VAT.
	assert.Equal(t, 3.0, result["total_amounts"])
}

func TestBenfordCommand_NonFiniteLinesAreIgnored(t *testing.T) {
	// strconv.ParseFloat accepts "inf" and "nan"; they carry no first
	// digit and must not derail the analysis.
	path := filepath.Join(t.TempDir(), "amounts.txt")
	require.NoError(t, os.WriteFile(path, []byte("100\ninf\nnan\n250\n"), 0o644))

	result := runJSON(t, "benford", path)
	assert.Equal(t, 2.0, result["total_amounts"])
}

func TestBenfordCommand_RejectsBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amounts.txt")
	require.NoError(t, os.WriteFile(path, []byte("100\nabc\n"), 0o644))

	_, err := run(t, "benford", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}
