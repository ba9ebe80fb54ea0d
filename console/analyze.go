package console

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-curp/app/services"
	"github.com/km-arc/go-curp/curp"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// report is the machine-readable form of one analysis.
type report struct {
	CURP       string           `json:"curp" yaml:"curp"`
	Valid      bool             `json:"valid" yaml:"valid"`
	Tokens     []curp.Token     `json:"tokens" yaml:"tokens"`
	Errors     []string         `json:"errors" yaml:"errors"`
	Violations []curp.Violation `json:"violations" yaml:"violations"`
}

func newReport(res curp.Result) report {
	return report{
		CURP:       res.Input,
		Valid:      res.IsValid(),
		Tokens:     res.Tokens,
		Errors:     res.Errors,
		Violations: res.Violations,
	}
}

func newAnalyzeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze CURP...",
		Short: "Tokenize and validate one or more CURPs",
		Long: `Analyze each CURP and print its tokens followed by the syntax messages.
Input is trimmed and uppercased first. The command exits with status 1 when
any CURP is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := services.NewAnalyzer(0, nil)
			if err != nil {
				return err
			}

			reports := make([]report, 0, len(args))
			invalid := 0
			for _, arg := range args {
				r := newReport(analyzer.Analyze(arg))
				if !r.Valid {
					invalid++
				}
				reports = append(reports, r)
			}

			if err := writeReports(cmd.OutOrStdout(), output, reports); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d CURPs invalid", invalid, len(args))
			}
			return nil
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	return cmd
}

func addOutputFlag(flags *pflag.FlagSet, p *string) {
	flags.StringVarP(p, "output", "o", outputTable, "Output format (table|json|yaml)")
}

func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case outputTable:
		return writeTable(w, reports)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func writeTable(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "CURP: %s\n", r.CURP)

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "TIPO\tTOKEN")
		for _, tok := range r.Tokens {
			fmt.Fprintf(tw, "%s\t%s\n", tok.Label, tok.Text)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		for _, msg := range r.Errors {
			fmt.Fprintf(w, "- %s\n", msg)
		}
	}
	return nil
}
