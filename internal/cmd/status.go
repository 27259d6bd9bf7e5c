package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/solohq/soloist/internal/config"
	"github.com/solohq/soloist/internal/single"
	"github.com/solohq/soloist/internal/termcolor"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a primary instance is running",
	Long: `Display whether a primary instance is currently reachable for this
user and group, and the address it answers on.`,
	RunE: runStatus,
}

var statusColor string

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusColor, "color", "", `accent color for the running marker ("#rrggbb" or "rgb:rr/gg/bb")`)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	id := single.CurrentIdentity(cfg.Instance.Name, cfg.Instance.Group)
	running, addr := single.Probe(id)

	// Plain output for pipes and scripts
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		if running {
			fmt.Fprintf(cmd.OutOrStdout(), "running %s\n", addr)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "not running")
		}
		return nil
	}

	accent := lipgloss.Color("42")
	if statusColor != "" {
		c, err := termcolor.ParseSpec(statusColor)
		if err != nil {
			return err
		}
		accent = lipgloss.Color(c.Hex())
	}
	label := lipgloss.NewStyle().Bold(true)

	if running {
		marker := lipgloss.NewStyle().Foreground(accent).Render("●")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s\n  address: %s\n",
			marker, label.Render("running"), id.Name(), addr)
	} else {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("○")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s\n",
			marker, label.Render("not running"), id.Name())
	}
	return nil
}
