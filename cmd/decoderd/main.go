package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	serverun "github.com/hamid4356/MMT/internal/cmd/serve"
	cfgpkg "github.com/hamid4356/MMT/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "decoderd",
		Short: "Line-oriented translation decoder server",
		Long: "decoderd serves translation requests forever: one JSON request per stdin line,\n" +
			"one JSON response per stdout line. Diagnostics go to stderr.",
	}

	serveCmd := &cobra.Command{
		Use:   "serve MODEL",
		Short: "Serve translation requests with the given decoder model",
		Long: "Serve reads JSON requests from stdin and streams JSON responses to stdout\n" +
			"until the input closes or the process is interrupted.\n\n" +
			"MODEL is an engine reference: identity:[N], http(s)://host, or lambda://function.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)

			// Flags override file and env.
			if cmd.Flags().Changed("pool-size") {
				cfg.PoolSize, _ = cmd.Flags().GetInt("pool-size")
			}
			if cmd.Flags().Changed("queue-capacity") {
				cfg.QueueCapacity, _ = cmd.Flags().GetInt("queue-capacity")
			}
			if cmd.Flags().Changed("queue-full-policy") {
				cfg.QueueFullPolicy, _ = cmd.Flags().GetString("queue-full-policy")
			}
			if cmd.Flags().Changed("on-malformed") {
				cfg.OnMalformed, _ = cmd.Flags().GetString("on-malformed")
			}
			if cmd.Flags().Changed("cache-dir") {
				cfg.CacheDir, _ = cmd.Flags().GetString("cache-dir")
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
			}

			return serverun.Run(context.Background(), serverun.Options{
				Model:  args[0],
				Config: cfg,
			})
		},
	}
	serveCmd.Flags().String("config", os.Getenv("DECODERD_CONFIG"), "Path to a JSON config file")
	serveCmd.Flags().Int("pool-size", 0, "Worker pool size (default: engine-reported thread count)")
	serveCmd.Flags().Int("queue-capacity", 0, "Request queue capacity (0 = unbounded)")
	serveCmd.Flags().String("queue-full-policy", "block", "Producer behavior on a full queue: block|reject")
	serveCmd.Flags().String("on-malformed", "respond", "Bad input line policy: respond|skip|fail")
	serveCmd.Flags().String("cache-dir", "", "Enable the on-disk translation cache at this directory")
	serveCmd.Flags().String("log-level", os.Getenv("DECODERD_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serveCmd.Flags().String("log-format", os.Getenv("DECODERD_LOG_FORMAT"), "Log format: text|json")
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "decoderd:", err)
		os.Exit(1)
	}
}
