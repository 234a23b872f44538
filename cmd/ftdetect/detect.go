package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackvity/ftdetect/internal/cli/config"
	"github.com/stackvity/ftdetect/pkg/scanner"
	"github.com/stackvity/ftdetect/pkg/scanner/encoding"
)

// stdinArg selects standard input as the file to detect.
const stdinArg = "-"

func newDetectCmd(g *globalFlags) *cobra.Command {
	var (
		explain   bool
		stdinName string
	)
	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "Print the type of each file",
		Long: `detect prints "path: type" for every argument. With --explain the
detection stage that decided is appended. The argument "-" reads the content
from standard input; --name supplies the path used for detection.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := config.Load(g.cfgFile, g.profileName, version, g.verbose, cmd.Flags())
			if err != nil {
				return err
			}
			if opts.MaxContentBytes <= 0 {
				return fmt.Errorf("%w: max-bytes must be positive (got %d)", scanner.ErrConfigValidation, opts.MaxContentBytes)
			}
			detector, err := scanner.NewDetector(opts, opts.Logger)
			if err != nil {
				return err
			}
			decoder := encoding.NewHandler(opts.DefaultEncoding)

			out := cmd.OutOrStdout()
			var errs []error
			for _, arg := range args {
				path := arg
				var content []byte
				if arg == stdinArg {
					path = stdinName
					content, err = readPrefix(cmd.InOrStdin(), opts.MaxContentBytes)
				} else {
					content, err = readFilePrefix(arg, opts.MaxContentBytes)
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
					errs = append(errs, err)
					continue
				}

				text, _ := decoder.Decode(content)
				ft, stage, _ := detector.Explain(path, text)
				if explain {
					fmt.Fprintf(out, "%s: %s (%s)\n", arg, ft, stage)
				} else {
					fmt.Fprintf(out, "%s: %s\n", arg, ft)
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "Also print the detection stage that decided")
	cmd.Flags().StringVar(&stdinName, "name", "", "Path used to detect content read from stdin")
	cmd.Flags().Int("max-bytes", scanner.DefaultMaxContentBytes, "Maximum number of bytes read from each file")
	cmd.Flags().String("ruleset", "", "YAML heuristics ruleset consulted before the built-in rules")
	return cmd
}

func readFilePrefix(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("is a directory")
	}
	return readPrefix(f, limit)
}

func readPrefix(r io.Reader, limit int) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, int64(limit)))
}
