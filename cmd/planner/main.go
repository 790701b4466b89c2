package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/planner/internal/calendar"
	"github.com/username/planner/internal/config"
	"github.com/username/planner/internal/pdfsurface"
	"github.com/username/planner/internal/planner"
	"github.com/username/planner/internal/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Half-week paper planner generator",
		Long:          "Generate a printable PDF planner with one page per half-week (Mon-Wed, Thu-Sun)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log settings
			cfg, err := config.Load(configPath, nil)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else if err == nil {
				initLogger(cfg.Log.Level)
			} else {
				initLogger("info")
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.planner, /etc/planner)")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(pagesCmd())

	return rootCmd
}

// addRangeFlags registers the flags shared by every command that reads a date range
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "First day to print (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End of the range (YYYY-MM-DD)")
	cmd.Flags().Bool("double-sided", false, "Insert a blank page so half-weeks face each other when printed duplex")
	cmd.Flags().Bool("trailing-blank", false, "Pad a double-sided document to an even page count")
}

func generateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the planner PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Load config
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			gen, err := initializeGenerator(cfg)
			if err != nil {
				return err
			}

			surface, err := pdfsurface.New(pdfsurface.Options{
				Paper:     cfg.Paper.Size,
				Landscape: cfg.Landscape(),
				Title:     cfg.Output.Title,
				Author:    cfg.Output.Author,
				Creator:   "planner",
			}, logger)
			if err != nil {
				return fmt.Errorf("failed to create PDF: %w", err)
			}

			if dryRun {
				rec := render.NewRecorder(surface.Size())
				summary, err := gen.Generate(rec)
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
				printSummary(out, summary, cfg.Output.File, true)
				fmt.Fprintf(out, "  Draw commands:  %d\n", rec.CommandCount())
				fmt.Fprintln(out, "\n[DRY RUN] No file was written")
				return nil
			}

			summary, err := gen.Generate(surface)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			if err := surface.Save(cfg.Output.File); err != nil {
				return fmt.Errorf("failed to save planner: %w", err)
			}

			printSummary(out, summary, cfg.Output.File, false)
			return nil
		},
	}

	addRangeFlags(cmd)
	cmd.Flags().String("paper", "", "Paper size: letter, legal, a4, a5")
	cmd.Flags().StringP("output", "o", "", "Output PDF file")
	cmd.Flags().String("footer", "", "Footer text printed on every page")
	cmd.Flags().StringSlice("notes", nil, "Day-note files (holidays, events, birthdays)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Lay out every page without writing the PDF")

	return cmd
}

func initializeGenerator(cfg *config.Config) (*planner.Generator, error) {
	var cal calendar.Calendar = calendar.Empty{}
	if len(cfg.Notes.Files) > 0 {
		cc, err := calendar.NewFromFiles(cfg.Notes.Files, logger)
		if err != nil {
			return nil, err
		}
		cal = cc
	}

	gen, err := planner.New(cfg, logger, planner.WithCalendar(cal))
	if err != nil {
		return nil, err
	}
	return gen, nil
}

func printSummary(w io.Writer, summary planner.Summary, file string, dryRun bool) {
	icon := "✅"
	if dryRun {
		icon = "📋"
	}

	fmt.Fprintf(w, "\n%s Planner %s to %s\n", icon,
		summary.First.Format("2006-01-02"),
		summary.Last.Format("2006-01-02"))
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Pages:          %d\n", summary.Pages)
	fmt.Fprintf(w, "  Mon-Wed pages:  %d\n", summary.LeftPages)
	fmt.Fprintf(w, "  Thu-Sun pages:  %d\n", summary.RightPages)
	fmt.Fprintf(w, "  Blank pages:    %d\n", summary.BlankPages)
	if !dryRun {
		fmt.Fprintf(w, "  File:           %s\n", file)
	}
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
