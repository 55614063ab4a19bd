package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ohada-dev/fisc/internal/ledger"
)

func newBenfordCommand() *cobra.Command {
	var fromEntries bool

	cmd := &cobra.Command{
		Use:   "benford <file>",
		Short: "Run a first-digit distribution test over a set of amounts",
		Long: `Reads amounts from a file, one per line, and compares their leading
digit distribution against Benford's law. With --entries the file is
parsed as an entries CSV and every line amount is included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				amounts []float64
				err     error
			)
			if fromEntries {
				amounts, err = entryAmounts(args[0])
			} else {
				amounts, err = readAmounts(args[0])
			}
			if err != nil {
				return err
			}
			return runTool(cmd, "benford_analyze", map[string]any{"amounts": amounts})
		},
	}

	cmd.Flags().BoolVar(&fromEntries, "entries", false, "treat the file as an entries CSV")

	return cmd
}

func readAmounts(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var amounts []float64
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %q is not a number", path, lineNo, text)
		}
		amounts = append(amounts, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return amounts, nil
}

func entryAmounts(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ledger.ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var amounts []float64
	for _, e := range entries {
		for _, l := range e.Lines {
			amounts = append(amounts, l.Amount().Float64())
		}
	}
	return amounts, nil
}
