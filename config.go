package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	allowRepeat bool
	noEnter     bool
	seed        int64
	timeout     int
	verbose     bool
	version     bool

	// derived in resolveMode, immutable afterward
	autoClear bool
	seeded    bool
}

func (c *Config) validate() error {
	if c.timeout < 0 {
		return fmt.Errorf("invalid timeout (must be >= 0 seconds): %d", c.timeout)
	}
	return nil
}

// resolveMode settles the post-reveal behavior. Priority order is
// no-enter > timeout > wait-for-Enter default.
func (c *Config) resolveMode(timeoutSet, seedSet bool) {
	switch {
	case c.noEnter:
		c.autoClear = true
		c.timeout = 0
	case timeoutSet:
		c.autoClear = true
	}

	c.seeded = seedSet
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TRUSTEE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "trustee [names...]",
		Short:         "A single-run, privacy-first Secret Santa helper for a shared terminal.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			cfg.resolveMode(cmd.Flags().Changed("timeout"), cmd.Flags().Changed("seed"))
			return run(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.BoolVar(&cfg.allowRepeat, "allow-repeat", false, "allow repeated views by the same participant (env: TRUSTEE_ALLOW_REPEAT)")
	fs.BoolVar(&cfg.noEnter, "no-enter", false, "clear immediately after each reveal, same as --timeout 0 (env: TRUSTEE_NO_ENTER)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for reproducible assignments (env: TRUSTEE_SEED)")
	fs.IntVar(&cfg.timeout, "timeout", 0, "auto-clear each reveal after N seconds instead of waiting for Enter (env: TRUSTEE_TIMEOUT)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: TRUSTEE_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: TRUSTEE_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("trustee v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
