package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/solohq/soloist/internal/config"
	"github.com/solohq/soloist/internal/editor"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>...",
	Short: "Open files in the configured editor",
	Long: `Open the given files in the editor from editor.command, falling back to
VISUAL, EDITOR, and finally a list of common editors found on PATH.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	base := editor.Resolve()
	if cfg.Editor.Command != "" {
		base = strings.Fields(cfg.Editor.Command)
	}
	argv := append(append([]string{}, base...), args...)

	c := exec.Command(argv[0], argv[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
