package cmd

import (
	"strings"

	"github.com/solohq/soloist/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "soloist",
	Short: "Single-instance process coordination",
	Long: `Soloist ensures that at most one primary instance of an application
runs per user. The first invocation becomes the primary and listens on a
local socket; later invocations detect it, hand their arguments over,
and exit.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/soloist/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().StringP("group", "g", "", "instance group (each group gets its own primary)")
	_ = viper.BindPFlag("instance.group", rootCmd.PersistentFlags().Lookup("group"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/soloist")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SOLOIST")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SOLOIST_INSTANCE_GROUP for instance.group
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
