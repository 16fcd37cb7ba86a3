package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/entropy-lab/entropy"
	"github.com/entropy-lab/entropy/imageutil"
	"github.com/spf13/cobra"
)

func newRenderCmd(g *globalOptions) *cobra.Command {
	var (
		pf      paramFlags
		output  string
		preview string
		width   int
		height  int
		ansi    int
	)
	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Render one image at native resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load()
			if err != nil {
				return err
			}
			params, err := pf.apply(cmd.Flags(), cfg.Params())
			if err != nil {
				return err
			}

			src, err := g.loadSource(args[0])
			if err != nil {
				return err
			}
			r := entropy.NewRenderer(entropy.WithLogger(logger))

			exp, err := r.Export(src, params)
			if err != nil {
				return err
			}
			if output == "" {
				output = exp.Filename
			}
			if err := os.WriteFile(output, exp.PNG, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			logger.Info().Str("file", output).Msg("saved")

			if preview != "" {
				frame, err := r.Render(src, params, entropy.RenderTarget{
					Width: width, Height: height, Camera: cfg.PreviewCamera(),
				})
				if err != nil {
					return err
				}
				if err := imageutil.SavePNG(frame, preview); err != nil {
					return err
				}
				logger.Info().Str("file", filepath.Clean(preview)).Msg("preview saved")
			}

			if ansi > 0 {
				rows := max(2, int(math.Round(float64(ansi*src.Height)/float64(src.Width))))
				frame, err := r.Render(src, params, entropy.RenderTarget{
					Width: ansi, Height: rows, Camera: cfg.PreviewCamera(),
				})
				if err != nil {
					return err
				}
				return entropy.WriteANSI(cmd.OutOrStdout(), frame)
			}
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG (default: generated export name)")
	cmd.Flags().StringVar(&preview, "preview", "", "also write a letterboxed preview PNG, viewed through the config [camera]")
	cmd.Flags().IntVar(&width, "preview-width", 1280, "preview width")
	cmd.Flags().IntVar(&height, "preview-height", 720, "preview height")
	cmd.Flags().IntVar(&ansi, "ansi", 0, "print a truecolor preview this many columns wide to stdout")
	return cmd
}
