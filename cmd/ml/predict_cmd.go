package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/dataset/csv"
	"github.com/MacGruber91/ML/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	treeCmdConfig
	samplesInput string
	output       string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{treeCmdConfig: treeCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label of samples with a tree grown in-run",
		Long:  `Grow a tree from a set of training data and use it to predict the label column for a CSV of samples, written back out as CSV with the predicted labels filled in.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			t, schema, err := config.grow(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			samples, err := config.samples(schema)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			rows, err := samples.Rows(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			labels := make([]feature.Value, 0, len(rows))
			for _, row := range rows {
				if leaf := t.Search(row); leaf != nil {
					labels = append(labels, leaf.Prediction().Value())
				} else {
					labels = append(labels, nil)
				}
			}
			labeled, err := dataset.New(rows, labels)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			w, done, err := outputWriter(config.output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer done()
			if err := csv.Write(ctx, w, schema, labeled); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	config.registerFlags(cmd)
	cmd.PersistentFlags().StringVar(&(config.samplesInput), "samples", "", "path to a CSV file with the samples to predict (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the predicted samples will be written as CSV (defaults to STDOUT)")
	return cmd
}

func (pcc *predictCmdConfig) samples(schema *feature.Schema) (dataset.Dataset, error) {
	if pcc.samplesInput == "" {
		return csv.Read(os.Stdin, schema)
	}
	return csv.ReadFromFilePath(pcc.samplesInput, schema)
}

func (pcc *predictCmdConfig) Validate() error {
	if err := pcc.treeCmdConfig.Validate(); err != nil {
		return err
	}
	if pcc.dataInput == "" && pcc.samplesInput == "" {
		return fmt.Errorf("training data and samples cannot both come from STDIN")
	}
	return nil
}
