package cli

import (
	"fmt"

	"github.com/reqcheck-labs/reqcheck/internal/config"
	"github.com/reqcheck-labs/reqcheck/internal/installer"
	"github.com/spf13/cobra"
)

var (
	installManifestPath string
	installPython       string
	installUpgrade      bool
	installQuiet        bool
	installOptional     bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install declared dependencies via pip",
	Long: `Invoke '<python> -m pip install -r <manifest>' for the requirements manifest.
Manifests in pyproject.toml or requirements.yaml form are rendered to a
temporary requirements file first.`,
	RunE: runInstallDeps,
}

func init() {
	installCmd.Flags().StringVarP(&installManifestPath, "requirements", "r", "", "Manifest path (requirements.txt, pyproject.toml, or requirements.yaml)")
	installCmd.Flags().StringVar(&installPython, "python", "", "Python interpreter used to invoke pip")
	installCmd.Flags().BoolVar(&installUpgrade, "upgrade", false, "Pass --upgrade to pip")
	installCmd.Flags().BoolVarP(&installQuiet, "quiet", "q", false, "Suppress pip output")
	installCmd.Flags().BoolVar(&installOptional, "optional", false, "Include optional dependency groups")
	rootCmd.AddCommand(installCmd)
}

func runInstallDeps(cmd *cobra.Command, args []string) error {
	reqs, manifestPath, err := loadManifest(installManifestPath, installOptional)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to install — the manifest declares no dependencies.")
		return nil
	}

	installPath, cleanup, err := installablePath(manifestPath, reqs)
	if err != nil {
		return err
	}
	defer cleanup()

	python := installPython
	if python == "" {
		python = config.Python()
	}

	inst := &installer.Installer{
		Python:  python,
		Upgrade: installUpgrade,
		Quiet:   installQuiet,
	}

	if err := inst.Install(cmd.Context(), installPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed dependencies from %s.\n", manifestPath)
	return nil
}
