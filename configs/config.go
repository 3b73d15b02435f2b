package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"eventPlanner/internal/enums"
	redisModels "eventPlanner/internal/models/redis"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "EVENT_PLANNER"
	envConfigFile = "EVENT_PLANNER_CONFIG"
)

type Config struct {
	Viper *viper.Viper
}

// Load reads defaults, then configs/config.yml (or the file named by
// EVENT_PLANNER_CONFIG), then .env and EVENT_PLANNER_* environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Warn("no config file found, using defaults and environment")
	}

	return &Config{Viper: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "event_planner")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", redisModels.REDIS_CHANNEL_EVENT_UPDATES)

	v.SetDefault("realtime.layer", "memory")
	v.SetDefault("realtime.send_buffer", 256)
	v.SetDefault("realtime.write_wait", 10*time.Second)
	v.SetDefault("realtime.pong_wait", 60*time.Second)
	v.SetDefault("realtime.max_message_size", 64*1024)

	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.expiration_time", 24*60*60)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.external_endpoint", "localhost:9000")
	v.SetDefault("minio.access_key_id", "minioadmin")
	v.SetDefault("minio.secret_access_key", "minioadmin")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", enums.FILE_BUCKET_VENDOR_LOGO)
}

// LogLevel maps log.level onto a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Viper.GetString("log.level")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) JwtKey() []byte {
	return []byte(c.Viper.GetString("jwt.secret"))
}
