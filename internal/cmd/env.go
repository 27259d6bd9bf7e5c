package cmd

import (
	"fmt"

	"github.com/solohq/soloist/internal/config"
	"github.com/solohq/soloist/internal/natsort"
	"github.com/solohq/soloist/internal/shellenv"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the login shell's environment",
	Long: `Env starts the configured shell as a login shell on a pty, captures the
environment its startup files produce, and prints it sorted. Useful for
inspecting what processes launched outside a shell would inherit.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shell := shellenv.ResolvedShell(cfg.Shell.Command)
	env, err := shellenv.Capture(shell, cfg.Shell.EnvTimeout())
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	natsort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, env[k])
	}
	return nil
}
