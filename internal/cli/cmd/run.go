package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/goluigi/internal/demo"
	"github.com/bnema/goluigi/internal/infrastructure/fonts"
	"github.com/bnema/goluigi/internal/logging"
	"github.com/bnema/goluigi/pkg/luigi"
)

const defaultDemo = "sample"

var runFlags struct {
	width  int
	height int
}

var runCmd = &cobra.Command{
	Use:   "run [demo]",
	Short: "Open one of the bundled demos",
	Long: fmt.Sprintf(`Initialise the toolkit, build a demo window and run the message loop until
every window is closed. The process exits with the loop's exit code.

Available demos: %s (default %q).`, strings.Join(demo.Names(), ", "), defaultDemo),
	Example: `  luigi run
  luigi run counter
  luigi run gallery --width 1024 --height 768`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: demo.Names(),
	RunE:      runDemo,
}

func init() {
	runCmd.Flags().IntVar(&runFlags.width, "width", 0, "window width (default from config)")
	runCmd.Flags().IntVar(&runFlags.height, "height", 0, "window height (default from config)")
	rootCmd.AddCommand(runCmd)
}

func runDemo(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	name := defaultDemo
	if len(args) == 1 {
		name = args[0]
	}

	cfg := app.Config
	opts := demo.Options{Width: cfg.Window.Width, Height: cfg.Window.Height}
	if runFlags.width > 0 {
		opts.Width = runFlags.width
	}
	if runFlags.height > 0 {
		opts.Height = runFlags.height
	}

	ctx := logging.WithComponent(app.Ctx(), "demo")
	log := logging.FromContext(ctx)

	envOpts := []luigi.Option{
		luigi.WithLogger(*logging.FromContext(app.Ctx())),
		luigi.WithLibrary(cfg.Library.Path, cfg.Library.SearchPaths...),
	}
	font, err := fonts.NewResolver().Resolve(ctx, cfg.Font.Name)
	if err != nil {
		log.Warn().Err(err).Str("font", cfg.Font.Name).Msg("font not found, keeping built-in font")
	}
	if font != "" {
		envOpts = append(envOpts, luigi.WithFont(font, cfg.Font.Size))
	}

	env, err := luigi.Init(envOpts...)
	if err != nil {
		return err
	}
	if err := demo.Build(ctx, name, env, opts); err != nil {
		return fmt.Errorf("build %s demo: %w", name, err)
	}

	log.Info().Str("demo", name).Int("width", opts.Width).Int("height", opts.Height).Msg("running message loop")
	exitCode = env.MessageLoop()
	log.Debug().Int("exit_code", exitCode).Msg("message loop returned")
	return nil
}
