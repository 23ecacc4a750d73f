package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette tools over MCP stdio (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	a.log.WithFields(map[string]interface{}{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Info("palette MCP server starting")

	err := a.newServer().Run(cmd.Context())
	if err != nil && cmd.Context().Err() != nil {
		// Interrupted by a signal.
		return nil
	}
	return err
}

func (a *app) generateCommand() *cobra.Command {
	var (
		scheme string
		name   string
		export string
	)
	cmd := &cobra.Command{
		Use:   "generate [base]",
		Short: "Generate a palette from a base color",
		Long: `Generate derives a palette from a base color using a color-wheel scheme.
The base defaults to ` + palette.DefaultBaseColor + `.

With --export the palette document is written to the export directory.`,
		Example: `  palette-mcp generate "#FF0000" --scheme triadic
  palette-mcp generate 3366CC --scheme monochromatic --export yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := palette.DefaultBaseColor
			if len(args) == 1 {
				base = args[0]
			}
			sch, err := palette.ParseScheme(scheme)
			if err != nil {
				return err
			}
			p, err := a.cfg.Generator().Generate(base, sch)
			if err != nil {
				return err
			}
			if name != "" {
				p.Name = name
			}
			a.log.WithField("colors", p.Hexes()).Debug("palette generated")

			if export != "" {
				if err := a.writeExport(p, export); err != nil {
					return err
				}
			}
			return a.printJSON(p)
		},
	}
	cmd.Flags().StringVarP(&scheme, "scheme", "s", palette.Complementary.String(), "scheme id (see 'palette-mcp schemes')")
	cmd.Flags().StringVar(&name, "name", "", "palette name (default \"<scheme> palette\")")
	cmd.Flags().StringVar(&export, "export", "", "also write the palette document: json or yaml")
	return cmd
}

// writeExport writes p to the configured export directory.
func (a *app) writeExport(p *palette.Palette, format string) error {
	f, err := palette.ParseFormat(format)
	if err != nil {
		return err
	}
	dir := a.cfg.ExportDir
	if dir == "" {
		dir = "."
	}
	doc := palette.NewExportDocument(p.Name, p.Colors, nowFunc())
	path, err := palette.WriteExport(dir, doc, f)
	if err != nil {
		return err
	}
	a.log.WithField("path", path).Info("palette exported")
	return nil
}

func (a *app) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <hex>...",
		Short:   "Convert hex colors to RGB and HSL",
		Example: `  palette-mcp convert "#00FF41" 1E3A5F`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]palette.Color, len(args))
			for i, hex := range args {
				c, err := palette.ParseColor(hex)
				if err != nil {
					return err
				}
				colors[i] = c
			}
			return a.printJSON(colors)
		},
	}
}

func (a *app) extractCommand() *cobra.Command {
	var region []int
	cmd := &cobra.Command{
		Use:     "extract <image>",
		Short:   "Sample distinct colors from an image file",
		Example: `  palette-mcp extract screenshot.png --max-colors 5 --region 0,0,200,100`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := a.cfg.Extractor()
			if len(region) > 0 {
				if len(region) != 4 {
					return fmt.Errorf("region needs x1,y1,x2,y2, got %d values", len(region))
				}
				e.Region = &imaging.Region{X1: region[0], Y1: region[1], X2: region[2], Y2: region[3]}
			}
			p, err := e.ExtractFile(cmd.Context(), imaging.NewImageCache(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(p)
		},
	}
	cmd.Flags().IntSliceVar(&region, "region", nil, "sample only x1,y1,x2,y2")
	return cmd
}

func (a *app) schemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List palette generation schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printJSON(palette.DescribeSchemes())
		},
	}
}

func (a *app) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in palettes or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p, err := palette.LookupPreset(args[0])
				if err != nil {
					return err
				}
				return a.printJSON(p)
			}
			return a.printJSON(palette.Presets())
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "palette-mcp %s\n", Version)
			fmt.Fprintf(a.stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			return nil
		},
	}
}
