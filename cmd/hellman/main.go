package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"hellman/internal/config"
	"hellman/internal/logging"
	"hellman/internal/style"
	"hellman/internal/token"
	"hellman/pkg/outputlog"
	"hellman/pkg/report"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	colorMode  string

	reportFormat string
	reportTitle  string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hellman",
	Short: "hellman - build and collect OUTPUT result lines",
	Long: `hellman builds result lines of the form

  OUTPUT :Fresh Avacado: 13 :Fresh Avacado: 1.1

and collects such lines from the output of other programs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// setup loads the config, applies flag overrides and creates the logger.
func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("color") {
		cfg.Color = config.ColorMode(colorMode)
	}
	if flags.Changed("format") {
		cfg.Report.Format = reportFormat
	}
	if flags.Changed("title") {
		cfg.Report.Title = reportTitle
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Debug("Loaded config", "source", cfg.Source, "color", cfg.Color)
	return nil
}

var renderCmd = &cobra.Command{
	Use:   "render [value...]",
	Short: "Print one result line built from the arguments",
	Long: `Print one result line built from the arguments, in order.

An argument that parses as a number becomes a numeric fragment, anything
else becomes a text fragment. Use the prefixes n: and t: to force the kind:

  hellman render "Fresh Avacado" 13 t:42 n:1.1

Put negative numbers after -- or write them as n:-4.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := token.Build(args)
		if err != nil {
			return err
		}

		styles := style.New(cmd.OutOrStdout(), cfg.Color)
		w := outputlog.NewWriter(cmd.OutOrStdout(), logger)
		w.Channel() <- styles.Line(o.Render())
		return w.Close()
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Print the result lines found in a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := scanInput(cmd, args)
		if err != nil {
			return err
		}

		w := outputlog.NewWriter(cmd.OutOrStdout(), logger)
		for _, line := range lines {
			w.Channel() <- line
		}
		return w.Close()
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Summarize the result lines found in a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(cfg.Report.Format)
		if err != nil {
			return err
		}

		lines, err := scanInput(cmd, args)
		if err != nil {
			return err
		}

		out, err := report.Render(format, cfg.Report.Title, lines)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

// scanInput collects result lines from the file named in args, or from the
// command's stdin when args is empty or "-".
func scanInput(cmd *cobra.Command, args []string) ([]string, error) {
	r := cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
		name = args[0]
	}

	lines, err := outputlog.Scan(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("Scanned input", "input", name, "lines", len(lines))
	return lines, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $HELLMAN_CONFIG, $XDG_CONFIG_HOME/hellman.yaml or ~/.hellman.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default: warn)")

	renderCmd.Flags().StringVar(&colorMode, "color", "", "Color the line: auto, always or never (default: auto)")

	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Report format: markdown or html (default: markdown)")
	reportCmd.Flags().StringVarP(&reportTitle, "title", "t", "", "Report title (default: \""+report.DefaultTitle+"\")")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
