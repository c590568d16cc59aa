package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"restodash/internal/auth"
	"restodash/internal/console"
	"restodash/internal/models"
	"restodash/internal/storage"
	"restodash/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restodash",
	Short: "Terminal admin dashboard for a restaurant",
	Long:  `restodash is an interactive admin console for managing a restaurant's menu, categories, user directory, orders, notifications and settings, persisted through a local key-value state file or Postgres.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		kv, err := storage.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("error opening storage: %w", err)
		}
		log.Printf("Using %s storage", cfg.StorageDriver)

		st, err := store.New(ctx, kv, store.WithToastDuration(cfg.ToastDuration))
		if err != nil {
			kv.Close()
			return fmt.Errorf("error loading state: %w", err)
		}
		defer st.Close()

		if err := seed(ctx, st, cfg); err != nil {
			return fmt.Errorf("error seeding state: %w", err)
		}

		svc := auth.NewService(st, cfg.LoginDelay)
		return console.New(st, svc, os.Stdin, os.Stdout).Run(ctx)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./restodash.yaml)")

	rootCmd.Flags().String("storage-driver", models.StorageDriverFile, "Storage backend: file, memory or postgres")
	rootCmd.Flags().String("storage-path", "restodash.state.json", "State file path for the file backend")
	rootCmd.Flags().String("database-url", "", "Postgres connection string for the postgres backend")
	rootCmd.Flags().Duration("toast-duration", 0, "How long toasts stay up (0 uses the default)")
	rootCmd.Flags().Duration("login-delay", 0, "Simulated submit delay for login and signup")
	rootCmd.Flags().Int("seed-users", 0, "Generate this many extra sample users on first run")
	rootCmd.Flags().Int("seed-menu-items", 0, "Generate this many extra sample menu items")
	rootCmd.Flags().Int("seed-orders", 0, "Generate this many extra sample orders on first run")

	viper.BindPFlag("storage_driver", rootCmd.Flags().Lookup("storage-driver"))
	viper.BindPFlag("storage_path", rootCmd.Flags().Lookup("storage-path"))
	viper.BindPFlag("database_url", rootCmd.Flags().Lookup("database-url"))
	viper.BindPFlag("toast_duration", rootCmd.Flags().Lookup("toast-duration"))
	viper.BindPFlag("login_delay", rootCmd.Flags().Lookup("login-delay"))
	viper.BindPFlag("seed_users", rootCmd.Flags().Lookup("seed-users"))
	viper.BindPFlag("seed_menu_items", rootCmd.Flags().Lookup("seed-menu-items"))
	viper.BindPFlag("seed_orders", rootCmd.Flags().Lookup("seed-orders"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
