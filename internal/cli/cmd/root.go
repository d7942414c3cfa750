// Package cmd provides Cobra CLI commands for the luigi tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/goluigi/internal/cli"
	"github.com/bnema/goluigi/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	// exitCode is the message loop's result, returned to the shell by Execute.
	exitCode int
	rootCmd  = &cobra.Command{
		Use:   "luigi",
		Short: "Run and inspect Go programs built on the Luigi UI toolkit",
		Long: `luigi drives the Luigi C UI toolkit from Go through a runtime-loaded
shared library (libluigi.so on Linux, luigi.dll on Windows).

Use 'luigi run' to open one of the bundled demos, 'luigi doctor' to check that
the native library can be found, and 'luigi config' to inspect settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema", "doctor":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&appOpts.ConfigFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/goluigi/luigi.toml)")
	rootCmd.PersistentFlags().BoolVar(&appOpts.Watch, "watch-config", false, "reload the config file on change")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
