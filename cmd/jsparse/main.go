package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/arborjs/jsparse/internal/arena"
	"github.com/arborjs/jsparse/internal/lexer"
	"github.com/arborjs/jsparse/pkg/parser"
	"github.com/spf13/cobra"
)

var (
	// Version information (set during build via ldflags, or detected from build info)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						GitCommit = setting.Value[:7]
					}
				case "vcs.time":
					BuildTime = setting.Value
				}
			}
		}
	}
}

var (
	outputFile  string
	withLoc     bool
	withRange   bool
	tolerant    bool
	prettyPrint bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsparse",
		Short: "jsparse: a JavaScript lexer and Pratt parser",
		Long: `jsparse parses the JavaScript core grammar (ES5 expressions and
statements, plus classes, arrow functions, template literals, and
destructuring) and outputs an AST compatible with the ESTree convention.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JavaScript file and output its ESTree AST",
		Long: `Parse a JavaScript file and output the Abstract Syntax Tree (AST) as
ESTree-shaped JSON. If no file is specified or '-' is given, reads from
stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().BoolVar(&withLoc, "loc", false, "Include location information (line/column)")
	parseCmd.Flags().BoolVar(&withRange, "range", false, "Include character range information")
	parseCmd.Flags().BoolVar(&tolerant, "tolerant", false, "Tolerant mode (accepted; parsing always continues and reports the first error)")
	parseCmd.Flags().BoolVarP(&prettyPrint, "pretty", "p", true, "Pretty print JSON output")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate JavaScript syntax",
		Long: `Validate the syntax of a JavaScript file without producing AST output.
Returns exit code 0 if valid, 1 if there are syntax errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}

	tokensCmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the raw token stream",
		Long: `Dump the lexer's token stream (kind, source slice, span, and ASI
state) without parsing. Useful for debugging the lexer directly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTokens,
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tokensCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := &parser.Options{
		Tolerant: tolerant,
		Loc:      withLoc,
		Range:    withRange,
	}

	mod, err := parser.Parse(input, opts)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	output, err := parser.ToJSON(mod, input, opts, prettyPrint)
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	return writeOutput(output)
}

func runValidate(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := &parser.Options{Tolerant: true}

	_, err = parser.Parse(input, opts)
	if err != nil {
		if parserErr, ok := err.(*parser.ParserError); ok {
			fmt.Fprintf(os.Stderr, "Syntax errors found:\n")
			for _, e := range parserErr.Errors {
				fmt.Fprintf(os.Stderr, "  line %d:%d: %s\n", e.Line, e.Column, e.Message)
			}
			os.Exit(1)
		}
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Println("Syntax OK")
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(arena.New(input))
	for {
		tok := l.Token()
		fmt.Printf("%-24s %-20q [%d,%d) asi=%d\n", tok.Type, sliceOf(input, tok.Start, tok.End), tok.Start, tok.End, tok.ASI())
		if tok.Type == lexer.EOF {
			break
		}
		l.Advance()
	}
	return nil
}

func readInput(args []string) (string, error) {
	var reader io.Reader

	if len(args) == 0 || args[0] == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("cannot open file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}

	return string(content), nil
}

func writeOutput(data []byte) error {
	var writer io.Writer

	if outputFile == "" {
		writer = os.Stdout
	} else {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	_, err := writer.Write(data)
	if err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}

	if outputFile == "" {
		fmt.Println()
	}

	return nil
}

func sliceOf(s string, start, end int) string {
	if start < 0 || end > len(s) || start > end {
		return ""
	}
	return s[start:end]
}
