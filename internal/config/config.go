package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config 全局配置结构体（对应 config/config.yaml）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`   // 服务器配置
	Database DatabaseConfig `mapstructure:"database"` // 存储配置
	Store    StoreConfig    `mapstructure:"store"`    // 内存仓储行为
	Session  SessionConfig  `mapstructure:"session"`  // 匿名会话
	Sweeper  SweeperConfig  `mapstructure:"sweeper"`  // 孤儿数据清理
	Admin    AdminConfig    `mapstructure:"admin"`    // 管理后台
	Log      LogConfig      `mapstructure:"log"`      // 日志
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int      `mapstructure:"port"`         // 服务端口
	Mode        string   `mapstructure:"mode"`         // Gin运行模式：debug/release/test
	CORSOrigins []string `mapstructure:"cors_origins"` // 允许跨域的前端地址，空表示全部
}

// DatabaseConfig 存储驱动：memory / sqlite / postgres
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`               // sqlite 为文件路径，postgres 为 URL 形式
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

type StoreConfig struct {
	Latency time.Duration `mapstructure:"latency"` // 模拟后端延迟，仅 memory 驱动生效
	Seed    bool          `mapstructure:"seed"`    // 空库启动时写入演示数据
}

type SessionConfig struct {
	Driver   string        `mapstructure:"driver"` // memory / redis
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type SweeperConfig struct {
	Cron    string        `mapstructure:"cron"` // 为空则不启动
	Timeout time.Duration `mapstructure:"timeout"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"` // 为空则管理接口不鉴权
	Password string `mapstructure:"password"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`  // debug/info/warn/error
	Format     string `mapstructure:"format"` // text/json
	File       string `mapstructure:"file"`   // 为空输出到 stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("store.latency", 0)
	v.SetDefault("store.seed", true)
	v.SetDefault("session.driver", DriverMemory)
	v.SetDefault("session.ttl", 30*24*time.Hour)
	v.SetDefault("sweeper.cron", "@hourly")
	v.SetDefault("sweeper.timeout", time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
}

// LoadConfig 加载配置文件，path 为空时读取 ./config/config.yaml（不存在则全部使用默认值）。
// 敏感项从环境变量或 .env 覆盖（不提交 git）
func LoadConfig(path string) (*Config, error) {
	// 1. 加载 .env（若存在）
	_ = godotenv.Load()

	// 2. 读取 config.yaml
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Session.RedisURL = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}

// Validate 检查驱动名与必填项
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %s", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}

	c.Session.Driver = strings.ToLower(strings.TrimSpace(c.Session.Driver))
	switch c.Session.Driver {
	case DriverMemory:
	case DriverRedis:
		if c.Session.RedisURL == "" {
			return errors.New("session.redis_url is required for the redis session driver")
		}
	default:
		return fmt.Errorf("unknown session.driver %q", c.Session.Driver)
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	if c.Admin.Username != "" && c.Admin.Password == "" {
		return errors.New("admin.password is required when admin.username is set")
	}
	return nil
}

// GetGORMConfig SQL 日志级别跟随 log.level：debug 打印全部 SQL，其余只打印慢查询和错误
func (d *DatabaseConfig) GetGORMConfig(logLevel string) *gorm.Config {
	level := logger.Warn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = logger.Info
	case "error":
		level = logger.Error
	}
	return &gorm.Config{Logger: logger.Default.LogMode(level)}
}
