package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"ArcadeFlow/internal/adtext"
	"ArcadeFlow/internal/config"
	"ArcadeFlow/internal/logging"
	"ArcadeFlow/internal/repository"
	"ArcadeFlow/internal/service"

	"github.com/spf13/cobra"
)

// newMigrateCmd 只对 sqlite/postgres 有意义
func newMigrateCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgFile)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log)
			if cfg.Database.Driver == config.DriverMemory {
				return fmt.Errorf("database.driver is memory, nothing to migrate")
			}
			_, closeRepos, err := openRepositories(cfg, logger)
			if err != nil {
				return err
			}
			closeRepos()
			return nil
		},
	}
}

func newSeedCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalogue into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgFile)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log)
			if cfg.Database.Driver == config.DriverMemory {
				logger.Warn("内存仓储在进程退出后不保留数据，serve 启动时会按 store.seed 自动写入")
			}
			repos, closeRepos, err := openRepositories(cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepos()

			seeded, err := repository.Seed(cmd.Context(), repos, time.Now())
			if err != nil {
				return err
			}
			if !seeded {
				logger.Info("游戏目录非空，跳过演示数据")
				return nil
			}
			logger.Info("演示数据写入完成")
			return nil
		},
	}
}

// newSweepCmd 手动执行一次孤儿数据清理
func newSweepCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove ratings and comments of deleted games once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgFile)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log)
			repos, closeRepos, err := openRepositories(cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepos()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Sweeper.Timeout)
			defer cancel()
			res, err := service.NewOrphanSweeper(repos, logger).Run(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

// newAdTextCmd 离线解析广告代码片段，便于排查后台粘贴的内容
func newAdTextCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "adtext", Short: "Ad snippet tools"}
	cmd.AddCommand(&cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a meta tag / ads.txt snippet from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 1 && args[0] != "-" {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			res := adtext.Parse(string(raw))
			if res.AdUnitIDs == nil {
				res.AdUnitIDs = []string{}
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	})
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
