package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
	"github.com/ironsheep/palette-tools-mcp/internal/logging"
	"github.com/ironsheep/palette-tools-mcp/internal/server"
)

// nowFunc stamps exported documents.
var nowFunc = time.Now

// app carries state shared by every command.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *logrus.Logger
	stdout     io.Writer
	stderr     io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "palette-mcp",
		Short:   "Color palette engine and MCP server",
		Version: Version,
		Long: `palette-mcp converts colors between hex, RGB and HSL, generates palettes
from color-wheel schemes, samples colors from images and exports palettes.

Without a subcommand it serves the engine over MCP on stdin/stdout.
Logs go to stderr.`,
		PersistentPreRunE: a.setup,
		RunE:              a.runServe,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("palette-mcp {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./.palette-mcp.yaml or $HOME/.palette-mcp.yaml)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "text", "log format: text, json")
	flags.String("export-dir", "", "directory palette exports are written to")
	flags.Float64("mono-min-lightness", 0, "lower lightness bound for monochromatic shades")
	flags.Float64("mono-max-lightness", 0, "upper lightness bound for monochromatic shades")
	flags.Int("sample-target", 0, "approximate number of pixels sampled per image")
	flags.Int("max-colors", 0, "maximum colors sampled from an image")
	flags.Int("alpha-threshold", 0, "pixels with alpha at or below this are skipped")
	flags.Float64("merge-distance", 0, "CIEDE2000 distance below which sampled colors merge")

	for key, flag := range map[string]string{
		config.KeyLogLevel:         "log-level",
		config.KeyLogFormat:        "log-format",
		config.KeyExportDir:        "export-dir",
		config.KeyMonoMinLightness: "mono-min-lightness",
		config.KeyMonoMaxLightness: "mono-max-lightness",
		config.KeySampleTarget:     "sample-target",
		config.KeyMaxColors:        "max-colors",
		config.KeyAlphaThreshold:   "alpha-threshold",
		config.KeyMergeDistance:    "merge-distance",
	} {
		// Only flags the user set override lower layers.
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.serveCommand(),
		a.generateCommand(),
		a.convertCommand(),
		a.extractCommand(),
		a.schemesCommand(),
		a.presetsCommand(),
		a.versionCommand(),
	)
	return root
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	log, err := logging.New(a.stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log

	if cfg.ConfigFile != "" {
		log.WithField("file", cfg.ConfigFile).Debug("loaded config")
	}
	return nil
}

func (a *app) newServer() *server.Server {
	server.Version = Version
	return server.New(
		server.WithGenerator(a.cfg.Generator()),
		server.WithExtractor(a.cfg.Extractor()),
		server.WithExportDir(a.cfg.ExportDir),
		server.WithLogger(a.log),
	)
}

// printJSON writes v to stdout as indented JSON.
func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
