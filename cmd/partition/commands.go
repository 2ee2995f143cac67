package main

import (
	"database/sql"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go-ml.dev/pkg/partition/partition"
	"go-ml.dev/pkg/partition/tables"
	"go-ml.dev/pkg/zorros/zorros"
	"path/filepath"
	"strings"
)

const envPrefix = "PARTITION"

// output file extensions tables.WriteCSV can produce
var formats = map[string]bool{"csv": true, "csv.xz": true}

type config struct {
	*viper.Viper
}

func (c config) partitioner() partition.Partitioner {
	return partition.Partitioner{Seed: c.GetUint64("seed")}
}

func (c config) output(name string) string {
	return filepath.Join(c.GetString("out"), name)
}

func (c config) load() (dataframe.DataFrame, error) {
	if db := c.GetString("sqlite"); db != "" {
		query := c.GetString("query")
		if query == "" {
			return dataframe.DataFrame{}, zorros.Errorf("--query is required with --sqlite")
		}
		conn, err := sql.Open("sqlite3", db)
		if err != nil {
			return dataframe.DataFrame{}, zorros.Trace(err)
		}
		defer conn.Close()
		return tables.ReadSQL(conn, query)
	}
	input := c.GetString("input")
	if input == "" {
		return dataframe.DataFrame{}, zorros.Errorf("either --input or --sqlite is required")
	}
	return tables.Open(input)
}

/*
NewRootCommand creates the partition command with its subcommands.
Flags can be set by PARTITION_* environment variables as well.
*/
func NewRootCommand() *cobra.Command {
	cfg := config{viper.New()}
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:           "partition",
		Short:         "Split datasets for model training and cross-validation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.BindPFlags(cmd.InheritedFlags()); err != nil {
				return err
			}
			if f := cfg.GetString("format"); !formats[f] {
				return zorros.Errorf("unsupported --format %q, use csv or csv.xz", f)
			}
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.String("input", "", "csv or csv.xz dataset file")
	flags.String("sqlite", "", "sqlite database to read the dataset from")
	flags.String("query", "", "query selecting the dataset from --sqlite")
	flags.Uint64("seed", partition.DefaultSeed, "shuffling seed")
	flags.String("out", ".", "output directory")
	flags.String("format", "csv", "output file extension, csv or csv.xz")

	root.AddCommand(foldsCommand(cfg), holdoutCommand(cfg), labelsCommand(cfg), encodeCommand(cfg))
	return root
}

func (c config) write(cmd *cobra.Command, df dataframe.DataFrame, name string) error {
	path := c.output(name + "." + c.GetString("format"))
	if err := tables.WriteCSV(df, path); err != nil {
		return err
	}
	cmd.Printf("%s: %d rows\n", path, df.Nrow())
	return nil
}

func foldsCommand(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folds",
		Short: "Split the dataset into k folds",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := cfg.load()
			if err != nil {
				return err
			}
			folds, err := cfg.partitioner().Folds(df, cfg.GetInt("k"))
			if err != nil {
				return err
			}
			for i, f := range folds {
				if err = cfg.write(cmd, f, fmt.Sprintf("fold_%02d", i)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("k", 5, "number of folds")
	return cmd
}

func holdoutCommand(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holdout",
		Short: "Split the dataset into training and test sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := cfg.load()
			if err != nil {
				return err
			}
			train, test, err := cfg.partitioner().TrainTest(df, cfg.GetFloat64("test"))
			if err != nil {
				return err
			}
			if err = cfg.write(cmd, train, "train"); err != nil {
				return err
			}
			return cfg.write(cmd, test, "test")
		},
	}
	cmd.Flags().Float64("test", 0.2, "fraction of rows in the test set")
	return cmd
}

func labelsCommand(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Separate feature columns from the label column",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := cfg.load()
			if err != nil {
				return err
			}
			features, labels, err := partition.ExtractLabels(df, cfg.GetString("label"))
			if err != nil {
				return err
			}
			if err = cfg.write(cmd, features, "features"); err != nil {
				return err
			}
			return cfg.write(cmd, labels, "labels")
		},
	}
	cmd.Flags().String("label", "label", "label column")
	return cmd
}

func encodeCommand(cfg config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Replace labels with integer codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := cfg.load()
			if err != nil {
				return err
			}
			enc := &partition.LabelEncoder{}
			if err = enc.EncodeInPlace(&df, cfg.GetString("label")); err != nil {
				return err
			}
			for code, c := range enc.Classes() {
				cmd.Printf("%d\t%s\n", code, c)
			}
			return cfg.write(cmd, df, "encoded")
		},
	}
	cmd.Flags().String("label", "label", "label column")
	return cmd
}
