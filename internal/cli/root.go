// Package cli implements the bt2policy CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cbrueffer/bowtie2/pkg/policy"
)

// NewRootCmd creates the root bt2policy command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bt2policy",
		Short:         "bt2policy - compile alignment-policy strings into scoring records",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewCompileCmd())
	root.AddCommand(NewDefaultsCmd())
	return root
}

func rootRunE(_ *cobra.Command, _ []string) error {
	return nil
}

// modeFlags are the two alignment-mode switches every subcommand takes.
// They select the default profile variant the policy string overrides.
type modeFlags struct {
	local         bool
	noisyHpolymer bool
}

func (m *modeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&m.local, "local", false,
		"compile for local alignment mode")
	cmd.Flags().BoolVar(&m.noisyHpolymer, "noisy-hpolymer", false,
		"penalize gaps less, for technologies prone to homopolymer errors")
}

// writeRecord emits a compiled record in the requested format.
func writeRecord(w io.Writer, rec *policy.Policy, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}
