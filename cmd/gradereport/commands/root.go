package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wonny/gradereport/internal/ingest"
	"github.com/wonny/gradereport/internal/report"
	"github.com/wonny/gradereport/internal/reportconfig"
	"github.com/wonny/gradereport/pkg/config"
	"github.com/wonny/gradereport/pkg/logger"
)

// options holds the parsed command line
type options struct {
	files     []string
	report    string
	profile   string
	logLevel  string
	logFormat string

	kind report.Kind
}

// Execute builds the root command and runs it against the OS file system.
// This is called by main.main().
func Execute() error {
	return NewRootCommand(afero.NewOsFs()).Execute()
}

// NewRootCommand returns the gradereport command reading files from fsys
func NewRootCommand(fsys afero.Fs) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gradereport --files <path> [<path> ...] --report <kind>",
		Short: "Генерация отчетов по оценкам студентов",
		Long: `gradereport reads student grade CSV files and prints a ranking table.

Every file needs the columns student_name, subject, teacher_name, date, grade.
Files that fail validation and rows with a non-numeric grade are skipped
with a diagnostic; the report is printed from whatever remains.

Examples:
  gradereport --files students1.csv students2.csv --report student-performance
  gradereport --files a.csv --files b.csv --report student-performance --profile en.yaml`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			kind, err := report.ParseKind(opts.report)
			if err != nil {
				return err
			}
			opts.kind = kind

			// "--files a.csv b.csv": trailing paths arrive as positional args
			opts.files = append(opts.files, args...)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, fsys, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.files, "files", nil, "CSV files to read (one or more)")
	cmd.Flags().StringVar(&opts.report, "report", "", fmt.Sprintf("report kind (%s)", joinKinds()))
	cmd.Flags().StringVar(&opts.profile, "profile", "", "YAML report profile (default: $REPORT_PROFILE or built-in labels)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "log format override (json|console)")
	_ = cmd.MarkFlagRequired("files")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func runReport(cmd *cobra.Command, fsys afero.Fs, opts *options) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewWithWriter(cfg, cmd.ErrOrStderr())

	// 2. Report profile
	profilePath := opts.profile
	if profilePath == "" {
		profilePath = cfg.ProfilePath
	}
	profile, err := reportconfig.Resolve(fsys, profilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	// 3. Ingest
	store := ingest.NewStore(fsys, log)
	summary := store.LoadAll(opts.files)

	// 4. Report
	r, err := report.New(opts.kind, *profile, log)
	if err != nil {
		return err
	}
	if _, err := report.Generate(r, store.Records(), cmd.OutOrStdout(), log); err != nil {
		return err
	}

	// 5. Diagnostics summary
	PrintLoadSummary(cmd.ErrOrStderr(), summary)
	if sp, ok := r.(*report.StudentPerformance); ok {
		PrintRowSkips(cmd.ErrOrStderr(), sp.Aggregation())
	}

	return nil
}

func joinKinds() string {
	return strings.Join(report.KindNames(), "|")
}
