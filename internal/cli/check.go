package cli

import (
	"fmt"

	"github.com/reqcheck-labs/reqcheck/internal/checker"
	"github.com/reqcheck-labs/reqcheck/internal/config"
	"github.com/reqcheck-labs/reqcheck/internal/installer"
	"github.com/reqcheck-labs/reqcheck/internal/requirement"
	"github.com/spf13/cobra"
)

var (
	checkManifestPath string
	checkPython       string
	checkSitePackages []string
	checkOptional     bool
	checkJSON         bool
	checkFix          bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkManifestPath, "requirements", "r", "", "Manifest path (requirements.txt, pyproject.toml, or requirements.yaml)")
	checkCmd.Flags().StringVar(&checkPython, "python", "", "Python interpreter used to query pip")
	checkCmd.Flags().StringSliceVar(&checkSitePackages, "site-packages", nil, "Scan these site-packages directories instead of asking pip")
	checkCmd.Flags().BoolVar(&checkOptional, "optional", false, "Include optional dependency groups")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output results as JSON")
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "Install missing/mismatched dependencies, then re-verify")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify declared dependencies against installed distributions",
	Long: `Parse the requirements manifest, look up each declared distribution in the
installed-package registry, and report missing or version-conflicting entries.
Exits non-zero when any requirement is unsatisfied.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	reqs, manifestPath, err := loadManifest(checkManifestPath, checkOptional)
	if err != nil {
		return err
	}

	report, err := verify(cmd, manifestPath, reqs)
	if err != nil {
		return err
	}

	if report.OK() || !checkFix {
		if checkJSON {
			if err := report.WriteJSON(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return report.Err()
	}

	// --fix: hand the manifest to pip, then verify again.
	installPath, cleanup, err := installablePath(manifestPath, reqs)
	if err != nil {
		return err
	}
	defer cleanup()

	python := checkPython
	if python == "" {
		python = config.Python()
	}
	inst := &installer.Installer{Python: python}
	if !checkJSON {
		fmt.Fprintln(cmd.OutOrStdout(), "Installing missing dependencies...")
	}
	if err := inst.Install(cmd.Context(), installPath); err != nil {
		return err
	}

	report, err = verify(cmd, manifestPath, reqs)
	if err != nil {
		return err
	}
	if checkJSON {
		if err := report.WriteJSON(cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return report.Err()
}

// verify runs one check pass against a freshly built registry and renders
// the text report. JSON rendering is left to runCheck so that --fix emits a
// single document for the final pass only.
func verify(cmd *cobra.Command, manifestPath string, reqs []requirement.Requirement) (*checker.Report, error) {
	reg, err := buildRegistry(cmd.Context(), checkPython, checkSitePackages)
	if err != nil {
		return nil, err
	}

	report := checker.Check(reqs, reg)

	if !checkJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "Dependency check: %s\n", manifestPath)
		report.Write(cmd.OutOrStdout())
	}
	return report, nil
}
