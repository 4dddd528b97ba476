// Package cli は管理用コマンド vocabctl のサブコマンドを定義する。
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_4_vocab_scan/internal/client"
	"go_4_vocab_scan/internal/config"
	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/repository"
	"go_4_vocab_scan/internal/service"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type options struct {
	configDir     string
	dbDriver      string
	dbURL         string
	translatorURL string
	verbose       bool
}

// app はサブコマンドが共有する依存関係
type app struct {
	db     *gorm.DB
	logger *slog.Logger

	users  service.UserService
	ingest service.IngestService
	stats  service.StatsService
}

// NewRootCmd はサブコマンドを登録したルートコマンドを返す
func NewRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Admin tool for the vocab-scan word store",
		Long:          "vocabctl migrates the database, provisions users, ingests documents\nand prints learning statistics against the configured database.",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configDir, "config", "configs", "directory containing config.yaml")
	flags.StringVar(&opts.dbDriver, "db-driver", "", "database driver override (postgres or sqlite)")
	flags.StringVar(&opts.dbURL, "db-url", "", "database URL override")
	flags.StringVar(&opts.translatorURL, "translator-url", "", "translation API URL override")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newMigrateCmd(a),
		newUserCmd(a),
		newIngestCmd(a),
		newStatsCmd(a),
	)
	return rootCmd
}

// Execute は os.Args でルートコマンドを実行する
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command, opts *options) error {
	if err := config.LoadConfig(opts.configDir); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Cfg
	if opts.dbDriver != "" {
		cfg.Database.Driver = opts.dbDriver
	}
	if opts.dbURL != "" {
		cfg.Database.URL = opts.dbURL
	}
	if opts.translatorURL != "" {
		cfg.Translator.BaseURL = opts.translatorURL
	}

	level := slog.LevelInfo
	if opts.verbose || strings.EqualFold(cfg.Log.Level, "debug") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	cmd.SetContext(middleware.WithLogger(cmd.Context(), a.logger))

	db, err := repository.NewDB(cfg.Database, a.logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a.db = db

	userRepo := repository.NewGormUserRepository()
	wordRepo := repository.NewGormWordRepository()
	testRepo := repository.NewGormTestRepository()

	a.users = service.NewUserService(db, userRepo)
	wordStore := service.NewWordStore(db, wordRepo, userRepo)
	translator := client.NewCachedTranslator(client.NewMyMemoryAPI(cfg.Translator))
	extractor := client.NewDocumentExtractor(cfg.Extractor)
	a.ingest = service.NewIngestService(extractor, translator, wordStore, a.users)
	a.stats = service.NewStatsService(db, userRepo, wordRepo, testRepo)
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	a.db = nil
	return sqlDB.Close()
}
