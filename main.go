package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sagarmenon/writing-coach-agent/coach"
	"github.com/sagarmenon/writing-coach-agent/config"
	"github.com/sagarmenon/writing-coach-agent/logging"
	"github.com/sagarmenon/writing-coach-agent/metrics"
	"github.com/sagarmenon/writing-coach-agent/server"
	"github.com/sagarmenon/writing-coach-agent/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "coach",
		Short:         "Writing coach webhook agent",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/config.json", "path to config.json")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newScoreCmd())
	root.AddCommand(newWeeklyCmd())
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			llm, err := buildLLM(cfg.LLM)
			if err != nil {
				return err
			}
			var search coach.LLMClient
			if cfg.SearchLLM != nil {
				s, err := coach.NewSearchLLMFromConfig(settings(cfg.SearchLLM))
				if err != nil {
					return err
				}
				search = s
			}

			var orc *coach.Orchestrator
			if cfg.StorePath != "" {
				log, err := store.Open(cfg.StorePath)
				if err != nil {
					return err
				}
				defer log.Close()
				orc, err = coach.New(llm, search, coach.DefaultProfile(), log, logger)
				if err != nil {
					return err
				}
			} else {
				logger.Warn("no store_path configured, history disabled")
				orc, err = coach.New(llm, search, coach.DefaultProfile(), nil, logger)
				if err != nil {
					return err
				}
			}

			srv, err := server.New(orc, cfg, logger)
			if err != nil {
				return err
			}

			listen := cfg.ServerAddr
			if addr != "" {
				listen = addr
			}
			if listen == "" {
				listen = ":8080"
			}
			logger.Info("starting webhook server", zap.String("addr", listen))
			return http.ListenAndServe(listen, srv.Routes())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "http listen address (overrides config.server_addr)")
	return cmd
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <file>",
		Short: "Run the heuristic metrics over a draft file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sc, ok := metrics.Score(string(data))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "too short to score (under 50 words)")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "word count:        %d\n", sc.WordCount)
			fmt.Fprintf(out, "concrete/abstract: %.2f\n", sc.ConcreteAbstractRatio)
			fmt.Fprintf(out, "sentence stddev:   %.2f\n", sc.SentenceStdDev)
			fmt.Fprintf(out, "qualifiers/500:    %.1f\n", sc.QualifierPer500)
			fmt.Fprintf(out, "scene ratio:       %.1f%%\n", sc.SceneRatioPct)
			fmt.Fprintf(out, "proper nouns/500:  %.1f\n", sc.ProperNounPer500)
			if sc.EdgesJudged {
				fmt.Fprintf(out, "opening strong:    %v\n", sc.OpeningStrong)
				fmt.Fprintf(out, "closing strong:    %v\n", sc.ClosingStrong)
			}
			return nil
		},
	}
}

func newWeeklyCmd() *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Print the fixed weekly check-in for a week number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, body := coach.RotationPrompt(week)
			fmt.Fprintf(cmd.OutOrStdout(), "Subject: %s\n\n%s\n", subject, body)
			return nil
		},
	}
	cmd.Flags().IntVar(&week, "week", 1, "week number (rotation wraps)")
	return cmd
}

func buildLLM(cfg *config.LLMConfig) (coach.LLMClient, error) {
	if cfg == nil || cfg.Provider == "" {
		return nil, fmt.Errorf("llm config missing; set llm.provider/model/api_key in config")
	}
	switch cfg.Provider {
	case "openai":
		return coach.NewOpenAILLMFromConfig(settings(cfg))
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url is required.
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return coach.NewOpenAILLMFromConfig(settings(cfg))
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}

func settings(cfg *config.LLMConfig) *coach.LLMSettings {
	return &coach.LLMSettings{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
	}
}
