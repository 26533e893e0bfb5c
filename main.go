package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/silvercare-lab/doll-pipeline/config"
	"github.com/silvercare-lab/doll-pipeline/orchestrator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "doll-pipeline",
		Short:         "Care-doll utterance preprocessing and risk scoring",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yaml")

	setup := func() (*orchestrator.Pipeline, error) {
		_ = godotenv.Load()
		conf, err := cfg.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		log := logrus.New()
		if lvl, err := logrus.ParseLevel(conf.Pipeline.LogLvl); err == nil {
			log.SetLevel(lvl)
		}
		return orchestrator.NewPipeline(conf, log), nil
	}

	score := &cobra.Command{
		Use:   "score <utterances.csv>",
		Short: "Score texts with the sentiment classifier and keyword lexicon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup()
			if err != nil {
				return err
			}
			return p.RunScore(cmd.Context(), args[0])
		},
	}

	segment := &cobra.Command{
		Use:   "segment <utterances.csv>",
		Short: "Window raw utterances and emit the cleaned sentence table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup()
			if err != nil {
				return err
			}
			return p.RunSentences(cmd.Context(), args[0])
		},
	}

	root.AddCommand(score, segment)
	return root
}
