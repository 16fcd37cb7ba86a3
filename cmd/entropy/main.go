// Command entropy applies the dither, datamosh and terminal effects to
// images from the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/entropy-lab/entropy"
	"github.com/entropy-lab/entropy/imageutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	maxWidth   int
	resample   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "entropy",
		Short:         "Dither, datamosh and ASCII image effects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")
	pf.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")
	pf.IntVar(&opts.maxWidth, "max-width", 0, "downsample wider sources to this width before rendering (0 keeps native size)")
	pf.StringVar(&opts.resample, "resample", "catmull-rom", "--max-width filter: "+strings.Join(imageutil.InterpolationNames(), ", "))

	root.AddCommand(
		newRenderCmd(opts),
		newBatchCmd(opts),
		newPresetsCmd(),
	)
	return root
}

// load returns the config named by --config, or the defaults.
func (o *globalOptions) load() (entropy.Config, zerolog.Logger, error) {
	cfg := entropy.DefaultConfig()
	if o.configPath != "" {
		var err error
		cfg, err = entropy.LoadConfig(o.configPath)
		if err != nil {
			return cfg, zerolog.Nop(), err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logJSON {
		cfg.Log.Format = "json"
	}
	logger, err := cfg.Log.Logger(nil)
	return cfg, logger, err
}
