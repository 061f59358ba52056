package cmd

import (
	"fmt"
	"os"

	"github.com/pss-admin/config"
	"github.com/spf13/cobra"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pss-admin",
	Short: "Browse and delete object-detection crops",
	Long: `Run the PSS admin backend or manage its image gallery from the terminal:
list cameras and clusters, page through crops, and delete images or whole clusters.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitCLIConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pss-admin.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
