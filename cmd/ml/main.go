package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ml",
		Short: "ml is a tool to grow CART decision trees",
		Long:  `A tool to grow binary decision trees from your data and use them to classify samples and rank feature importances`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug details while running")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), importanceCmd(config))
	return rootCmd
}
