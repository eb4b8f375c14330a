package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/denismitr/dmidecode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	inputFile string
	format    string
	verbose   bool
	strict    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dmiparse",
	Short: "Parse dmidecode output and print it as text, markdown, json or yaml",
	Long: `dmiparse reads a saved dmidecode report (or stdin) and renders the parsed records.

  dmidecode | dmiparse all
  dmiparse -f report.txt type 17 --format markdown
  dmiparse -f report.txt get 0 Vendor`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Print every record, ascending by DMI type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := load(cmd.InOrStdin())
		if err != nil {
			return err
		}

		out, err := exportAll(s, format)
		if err != nil {
			return err
		}

		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

var typeCmd = &cobra.Command{
	Use:   "type <id>",
	Short: "Print the records of one DMI type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "invalid type id %s", args[0])
		}

		s, err := load(cmd.InOrStdin())
		if err != nil {
			return err
		}

		out, err := exportType(s, id, format)
		if err != nil {
			return err
		}

		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id> <key>",
	Short: "Print the value of the first property named key within a DMI type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "invalid type id %s", args[0])
		}

		s, err := load(cmd.InOrStdin())
		if err != nil {
			return err
		}

		v, err := s.Value(id, args[1])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "dmidecode report to read (default stdin)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on any malformed section")

	allCmd.Flags().StringVar(&format, "format", formatText, "output format: text, markdown, json, yaml")
	typeCmd.Flags().StringVar(&format, "format", formatText, "output format: text, markdown")

	rootCmd.AddCommand(allCmd, typeCmd, getCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func load(stdin io.Reader) (*dmidecode.Store, error) {
	r := stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %s", inputFile)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read report")
	}

	opts := []dmidecode.Option{dmidecode.WithLogger(logger)}
	if strict {
		opts = append(opts, dmidecode.WithStrict())
	}

	return dmidecode.New(string(b), opts...)
}
