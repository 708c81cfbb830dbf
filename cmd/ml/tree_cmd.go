package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	ml "github.com/MacGruber91/ML"
	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/dataset/csv"
	"github.com/MacGruber91/ML/dataset/mongodataset"
	"github.com/MacGruber91/ML/dataset/redisdataset"
	"github.com/MacGruber91/ML/dataset/sqldataset"
	"github.com/MacGruber91/ML/dataset/sqldataset/pgadapter"
	"github.com/MacGruber91/ML/dataset/sqldataset/sqlite3adapter"
	"github.com/MacGruber91/ML/feature"
	"github.com/MacGruber91/ML/feature/yaml"
	"github.com/MacGruber91/ML/tree"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

// treeCmdConfig gathers the flags every tree-growing command shares:
// where the training data and its schema come from and how the tree
// is bounded.
type treeCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	impurity      string
	maxDepth      int
	maxLeafSize   int
	maxDBConns    int
	redisKey      string
}

func (tcc *treeCmdConfig) registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(tcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(tcc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the columns of the input data (required)")
	cmd.PersistentFlags().StringVar(&(tcc.impurity), "impurity", "gini", "impurity measure driving the split search, one of: gini, entropy, variance")
	cmd.PersistentFlags().IntVarP(&(tcc.maxDepth), "max-depth", "d", 10, "maximum number of splits between the root and a leaf")
	cmd.PersistentFlags().IntVarP(&(tcc.maxLeafSize), "max-leaf-size", "s", 1, "maximum number of samples a branch may hold without being split further")
	cmd.PersistentFlags().IntVar(&(tcc.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.PersistentFlags().StringVar(&(tcc.redisKey), "redis-key", "samples", "redis list holding the samples when the input is a Redis URL")
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

// grow reads the schema and the training data, grows a tree bounded by
// the configured limits and returns it along with the schema.
func (tcc *treeCmdConfig) grow(ctx context.Context) (*tree.Tree, *feature.Schema, error) {
	logger := tcc.Logger()
	schema, err := yaml.ReadSchemaFromFile(tcc.metadataInput)
	if err != nil {
		return nil, nil, err
	}
	if schema.Label() == nil {
		return nil, nil, fmt.Errorf("schema at %s declares no label column", tcc.metadataInput)
	}
	t, err := ml.NewTree(schema, tcc.impurity, tcc.maxDepth, tcc.maxLeafSize)
	if err != nil {
		return nil, nil, err
	}
	trainingSet, err := tcc.trainingSet(ctx, schema)
	if err != nil {
		return nil, nil, err
	}
	count, err := trainingSet.Count(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("counting training set samples: %v", err)
	}
	logger.Info().
		Int("samples", count).
		Int("columns", len(schema.Columns())).
		Str("label", schema.Label().Name()).
		Msg("growing tree")
	if err := t.Grow(ctx, trainingSet); err != nil {
		return nil, nil, fmt.Errorf("growing the tree: %v", err)
	}
	logger.Info().Int("splits", t.Complexity()).Msg("tree grown")
	return t, schema, nil
}

func (tcc *treeCmdConfig) trainingSet(ctx context.Context, schema *feature.Schema) (dataset.Dataset, error) {
	logger := tcc.Logger()
	switch {
	case tcc.dataInput == "":
		logger.Debug().Msg("reading training set from STDIN")
		return csv.Read(os.Stdin, schema)
	case strings.HasPrefix(tcc.dataInput, "postgresql://"):
		logger.Debug().Str("url", tcc.dataInput).Msg("reading training set from PostgreSQL")
		adapter, err := pgadapter.New(tcc.dataInput)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Read(ctx, adapter, schema)
	case strings.HasPrefix(tcc.dataInput, "mongodb://"):
		logger.Debug().Str("url", tcc.dataInput).Msg("reading training set from MongoDB")
		session, err := mgo.Dial(tcc.dataInput)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB at %s: %v", tcc.dataInput, err)
		}
		defer session.Close()
		return mongodataset.Read(ctx, session, schema)
	case strings.HasPrefix(tcc.dataInput, "redis://"):
		logger.Debug().Str("url", tcc.dataInput).Str("key", tcc.redisKey).Msg("reading training set from Redis")
		opts, err := redis.ParseURL(tcc.dataInput)
		if err != nil {
			return nil, fmt.Errorf("parsing Redis URL %s: %v", tcc.dataInput, err)
		}
		rc := redis.NewClient(opts)
		defer rc.Close()
		return redisdataset.Read(ctx, rc, tcc.redisKey, schema)
	case strings.HasSuffix(tcc.dataInput, ".db"):
		logger.Debug().Str("path", tcc.dataInput).Msg("reading training set from SQLite3")
		adapter, err := sqlite3adapter.New(tcc.dataInput, tcc.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Read(ctx, adapter, schema)
	}
	logger.Debug().Str("path", tcc.dataInput).Msg("reading training set from CSV file")
	return csv.ReadFromFilePath(tcc.dataInput, schema)
}

func outputWriter(outputPath string) (*os.File, func(), error) {
	if outputPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
