package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/entropy-lab/entropy"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

func newBatchCmd(g *globalOptions) *cobra.Command {
	var (
		pf      paramFlags
		pattern string
		outDir  string
	)
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Render every matching image in a directory",
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
			match, err := glob.Compile(strings.ToLower(pattern), '/')
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}

			entries, err := os.ReadDir(args[0])
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = args[0]
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			r := entropy.NewRenderer(entropy.WithLogger(logger))
			var done, failed int
			for _, e := range entries {
				if e.IsDir() || !match.Match(strings.ToLower(e.Name())) {
					continue
				}
				in := filepath.Join(args[0], e.Name())
				log := logger.With().Str("input", in).Logger()

				src, err := g.loadSource(in)
				if err != nil {
					log.Warn().Err(err).Msg("skipped")
					failed++
					continue
				}
				exp, err := r.Export(src, params)
				if err != nil {
					log.Error().Err(err).Msg("export failed")
					failed++
					continue
				}
				base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
				out := filepath.Join(outDir, fmt.Sprintf("%s_%s.png", base, params.Tool))
				if err := os.WriteFile(out, exp.PNG, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
				done++
			}
			logger.Info().Int("rendered", done).Int("failed", failed).Msg("batch finished")
			if failed > 0 {
				return fmt.Errorf("%d of %d images failed", failed, done+failed)
			}
			return nil
		},
	}
	pf.register(cmd.Flags())
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "*.{png,jpg,jpeg,gif,bmp,tif,tiff,webp}", "file name glob")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: input directory)")
	return cmd
}
