package cli

import (
	"fmt"

	"github.com/reqcheck-labs/reqcheck/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a requirements.yaml manifest against its schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		// Parse to get the name and dependency count for the success message.
		m, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "  [ OK ] Valid manifest")
			return nil
		}
		name := m.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] Valid manifest: %s (%d dependencies)\n", name, len(m.Dependencies))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
