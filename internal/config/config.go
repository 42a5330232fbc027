package config

import (
	"fmt"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Log        LogConfig        `koanf:"log"`
	Subject    SubjectConfig    `koanf:"subject"`
	Resource   ResourceConfig   `koanf:"resource"`
	Pagination PaginationConfig `koanf:"pagination"`
	Metrics    MetricsConfig    `koanf:"metrics"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Addr            string          `koanf:"addr"`
	Mode            string          `koanf:"mode"` // gin mode: debug, release, test
	ReadTimeout     time.Duration   `koanf:"read_timeout"`
	WriteTimeout    time.Duration   `koanf:"write_timeout"`
	ShutdownTimeout time.Duration   `koanf:"shutdown_timeout"`
	SlowRequest     time.Duration   `koanf:"slow_request"` // 超过该耗时的请求记 warn
	RateLimit       RateLimitConfig `koanf:"rate_limit"`
	CORS            CORSConfig      `koanf:"cors"`
}

// RateLimitConfig 按客户端 IP 限流
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

// DatabaseConfig SQLite 配置
type DatabaseConfig struct {
	Path         string `koanf:"path"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
	Seed         bool   `koanf:"seed"` // 是否写入演示数据
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json / console
	Caller bool   `koanf:"caller"`
}

// SubjectConfig 主人物（黄宾虹）缺省信息，数据库缺失时使用
type SubjectConfig struct {
	PersonID  int    `koanf:"person_id"`
	Name      string `koanf:"name"`
	BirthYear int    `koanf:"birth_year"`
	DeathYear int    `koanf:"death_year"`
}

// ResourceConfig 图片等静态资源的访问地址
type ResourceConfig struct {
	StorageType  string `koanf:"storage_type"` // local / oss
	LocalBaseURL string `koanf:"local_base_url"`
	OSSBaseURL   string `koanf:"oss_base_url"`
}

// PaginationConfig 分页上限
type PaginationConfig struct {
	MaxPageSize int `koanf:"max_page_size"`
}

// MetricsConfig Prometheus 指标配置
type MetricsConfig struct {
	LatencyBuckets []float64 `koanf:"latency_buckets"` // 请求耗时直方图分桶（秒），为空时用默认分桶
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			SlowRequest:     time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: 20,
				Burst:             40,
			},
			CORS: CORSConfig{
				AllowedOrigins: []string{"*"},
				MaxAge:         3600,
			},
		},
		Database: DatabaseConfig{
			Path:         "./data/huangbinhong.db",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			AutoMigrate:  true,
			Seed:         false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Subject: SubjectConfig{
			PersonID:  1,
			Name:      "黄宾虹",
			BirthYear: 1865,
			DeathYear: 1955,
		},
		Resource: ResourceConfig{
			StorageType:  "local",
			LocalBaseURL: "http://localhost:8080/static",
		},
		Pagination: PaginationConfig{
			MaxPageSize: 1000,
		},
		Metrics: MetricsConfig{
			LatencyBuckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Server.Addr) == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.RequestsPerSecond <= 0 || c.Server.RateLimit.Burst <= 0) {
		problems = append(problems, "server.rate_limit needs positive requests_per_second and burst when enabled")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		problems = append(problems, "database.path must not be empty")
	}
	if c.Subject.PersonID <= 0 {
		problems = append(problems, "subject.person_id must be positive")
	}
	switch c.Resource.StorageType {
	case "local", "oss":
	default:
		problems = append(problems, fmt.Sprintf("resource.storage_type %q must be local or oss", c.Resource.StorageType))
	}
	if c.Pagination.MaxPageSize <= 0 {
		problems = append(problems, "pagination.max_page_size must be positive")
	}
	for i := 1; i < len(c.Metrics.LatencyBuckets); i++ {
		if c.Metrics.LatencyBuckets[i] <= c.Metrics.LatencyBuckets[i-1] {
			problems = append(problems, "metrics.latency_buckets must be strictly increasing")
			break
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
