package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func importanceCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "importance",
		Short: "Rank columns by their importance for a prediction",
		Long:  `Grow a tree from a set of data and print its columns ranked by the normalized impurity decrease their splits achieved.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, schema, err := config.grow(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			for _, fi := range t.FeatureImportances() {
				fmt.Printf("%-20s %.4f\n", schema.Columns()[fi.Column].Name(), fi.Importance)
			}
		},
	}
	config.registerFlags(cmd)
	return cmd
}
