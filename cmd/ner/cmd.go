package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nearbyfyi/ner/config"
	"github.com/nearbyfyi/ner/internal"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool

	tagFile       string
	tagClassifier string
	tagFormat     string
)

var cmd = &cobra.Command{
	Use:   "ner",
	Short: "ner serves named entity recognition over HTTP",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for the ner configuration file",
	Example: "ner json-schema > ner_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:     "tag",
	Short:   "Classifies text from a file or stdin and prints the entities",
	Example: "echo 'Alice lives in Paris' | ner tag --format json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		config.SetLogLevel(cfg)

		in := cmd.InOrStdin()
		if tagFile != "" {
			f, err := os.Open(tagFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		return tag(cmd.Context(), cfg, tagOptions{
			Classifier: tagClassifier,
			Format:     tagFormat,
		}, in, cmd.OutOrStdout())
	},
}

func init() {
	cmd.AddCommand(dumpJsonSchemaCmd)
	cmd.AddCommand(tagCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")

	tagCmd.Flags().StringVarP(&tagFile, "file", "f", "", "file to classify (default stdin)")
	tagCmd.Flags().
		StringVarP(&tagClassifier, "classifier", "c", "", "classifier to use (default from config)")
	tagCmd.Flags().StringVar(&tagFormat, "format", "csv", "output format: csv or json")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
