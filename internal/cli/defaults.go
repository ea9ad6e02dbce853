package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbrueffer/bowtie2/internal/core"
	"github.com/cbrueffer/bowtie2/pkg/policy"
)

// NewDefaultsCmd creates the defaults subcommand, which prints the
// default record a policy string would override for the given mode
// flags. Equivalent to compiling an empty policy.
func NewDefaultsCmd() *cobra.Command {
	var (
		mode        modeFlags
		profilePath string
		format      string
	)
	cmd := &cobra.Command{
		Use:          "defaults",
		Short:        "Print the default scoring record for the given mode flags",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := core.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			prof, err := resolveProfile(profilePath, cfg)
			if err != nil {
				return err
			}
			if prof == nil {
				prof = policy.Builtin()
			}
			return writeRecord(cmd.OutOrStdout(), prof.Record(mode.local, mode.noisyHpolymer), format)
		},
	}
	mode.register(cmd)
	cmd.Flags().StringVar(&profilePath, "profile", "",
		"YAML default-profile overlay (defaults to $BT2_PROFILE)")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}
