package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbrueffer/bowtie2/internal/core"
	"github.com/cbrueffer/bowtie2/internal/profiles"
	"github.com/cbrueffer/bowtie2/pkg/policy"
)

// NewCompileCmd creates the compile subcommand. It parses a policy
// string under the given mode flags and prints the compiled record; a
// missing argument compiles the pure defaults.
func NewCompileCmd() *cobra.Command {
	var (
		mode        modeFlags
		profilePath string
		format      string
	)
	cmd := &cobra.Command{
		Use:          "compile [policy]",
		Short:        "Compile a policy string and print the resulting record",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var policyStr string
			if len(args) == 1 {
				policyStr = args[0]
			}

			cfg, err := core.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := core.NewLogger(cfg.LogLevel)

			runID, err := core.NewRunID()
			if err != nil {
				return fmt.Errorf("generating run ID: %w", err)
			}

			defaults, err := resolveProfile(profilePath, cfg)
			if err != nil {
				return err
			}

			rec, err := policy.Parse(policyStr, mode.local, mode.noisyHpolymer, defaults)
			if err != nil {
				logger.Error("policy rejected", "run_id", runID, "error", err.Error())
				return err
			}
			if err := policy.ValidateRecord(rec); err != nil {
				logger.Error("policy rejected", "run_id", runID, "error", err.Error())
				return fmt.Errorf("invalid policy %q: %w", policyStr, err)
			}

			logger.Debug("policy compiled",
				"run_id", runID,
				"local", mode.local,
				"noisy_hpolymer", mode.noisyHpolymer,
				"policy", policyStr)

			return writeRecord(cmd.OutOrStdout(), rec, format)
		},
	}
	mode.register(cmd)
	cmd.Flags().StringVar(&profilePath, "profile", "",
		"YAML default-profile overlay (defaults to $BT2_PROFILE)")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

// resolveProfile loads the overlay named by the flag or the
// environment; with neither set, a nil profile means the builtin
// defaults.
func resolveProfile(flagPath string, cfg *core.Config) (*policy.Profile, error) {
	path := flagPath
	if path == "" {
		path = cfg.ProfilePath
	}
	if path == "" {
		return nil, nil
	}
	return profiles.Load(path)
}
