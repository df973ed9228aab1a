// Package cmd implements the chatkit command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ebenfield/chatkit/config"
)

var rootCmd = &cobra.Command{
	Use:   "chatkit",
	Short: "Terminal chat UI toolkit",
	Long: `Chatkit is a toolkit of composable bubbletea components for building
chat interfaces in the terminal: a scrolling message list, a growing
input bar, mode-aware key bindings, and YAML themes with live reload.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/chatkit/config.yaml)")
	rootCmd.PersistentFlags().StringP("theme", "t", "", "color theme (overrides the config file)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("ui.theme", rootCmd.PersistentFlags().Lookup("theme"))
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
		viper.AddConfigPath("$HOME/.config/chatkit")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHATKIT")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CHATKIT_UI_THEME for ui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
