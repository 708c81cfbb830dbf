package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	treeCmdConfig
	output string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{treeCmdConfig: treeCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict a certain column and print it along with its complexity and feature importances.`,
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
			w, done, err := outputWriter(config.output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer done()
			fmt.Fprint(w, t)
			fmt.Fprintf(w, "\ncomplexity: %d splits\n", t.Complexity())
			fmt.Fprintln(w, "feature importances:")
			for _, fi := range t.FeatureImportances() {
				fmt.Fprintf(w, "  %-20s %.4f\n", schema.Columns()[fi.Column].Name(), fi.Importance)
			}
		},
	}
	config.registerFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written (defaults to STDOUT)")
	return cmd
}
