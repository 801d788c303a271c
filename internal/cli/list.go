package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/reqcheck-labs/reqcheck/internal/checker"
	"github.com/spf13/cobra"
)

var (
	listManifestPath string
	listPython       string
	listSitePackages []string
	listOptional     bool
	listJSON         bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List declared dependencies and their installed versions",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listManifestPath, "requirements", "r", "", "Manifest path (requirements.txt, pyproject.toml, or requirements.yaml)")
	listCmd.Flags().StringVar(&listPython, "python", "", "Python interpreter used to query pip")
	listCmd.Flags().StringSliceVar(&listSitePackages, "site-packages", nil, "Scan these site-packages directories instead of asking pip")
	listCmd.Flags().BoolVar(&listOptional, "optional", false, "Include optional dependency groups")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reqs, _, err := loadManifest(listManifestPath, listOptional)
	if err != nil {
		return err
	}

	if len(reqs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No dependencies declared.")
		return nil
	}

	reg, err := buildRegistry(cmd.Context(), listPython, listSitePackages)
	if err != nil {
		return err
	}

	report := checker.Check(reqs, reg)

	if listJSON {
		return report.WriteJSON(cmd.OutOrStdout())
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSPECIFIER\tINSTALLED\tSTATUS")
	for _, res := range report.Results {
		specifier := res.Specifier
		if specifier == "" {
			specifier = "-"
		}
		installed := res.Installed
		if installed == "" {
			installed = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Name, specifier, installed, res.Status)
	}
	return w.Flush()
}
