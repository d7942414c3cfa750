package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/goluigi/internal/cli"
	"github.com/bnema/goluigi/internal/cli/styles"
	"github.com/bnema/goluigi/internal/config"
	"github.com/bnema/goluigi/internal/infrastructure/ffi"
	"github.com/bnema/goluigi/internal/infrastructure/fonts"
	"github.com/bnema/goluigi/internal/logging"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the native library and configuration are usable",
	Long: `Report where the luigi shared library is searched for, whether it loads
with every exported symbol, and whether the configuration file is valid.

The toolkit itself is not initialised, so no window is opened. The command
exits with status 1 when something needs attention.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	report := styles.DoctorReport{}

	// Loaded here rather than in the root pre-run so a broken config file is
	// reported instead of aborting the command.
	cfg := config.DefaultConfig()
	a, err := cli.NewApp(appOpts)
	if err != nil {
		report.Config.Error = err.Error()
	} else {
		a.BuildInfo = buildInfo
		app = a
		cfg = a.Manager.Get()
		report.Config = styles.DoctorConfigReport{
			File:    a.Manager.GetConfigFile(),
			Created: a.Manager.CreatedFile() != "",
		}
	}

	report.Config.FontName = cfg.Font.Name
	path, err := fonts.NewResolver().Resolve(cmd.Context(), cfg.Font.Name)
	if err != nil {
		report.Config.FontError = err.Error()
	}
	report.Config.FontPath = path

	report.Library = inspectLibrary(cfg)
	report.OverallOK = report.Library.Error == "" && report.Config.Error == ""

	renderer := styles.NewDoctorRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(report))

	if !report.OverallOK {
		exitCode = 1
	}
	return nil
}

func inspectLibrary(cfg *config.Config) styles.DoctorLibraryReport {
	opts := ffi.Options{
		Path:        cfg.Library.Path,
		SearchPaths: cfg.Library.SearchPaths,
		Logger:      logging.NewFromEnv(),
	}
	report := styles.DoctorLibraryReport{
		Override:   os.Getenv(ffi.LibraryEnv),
		Candidates: ffi.Candidates(opts),
	}

	toolkit, err := ffi.Load(opts)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Loaded = toolkit.Path()
	report.Symbols = len(ffi.SymbolNames())
	return report
}
