package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"storerating/internal/app/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	DSN         string `mapstructure:"-"`
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
	Auth        AuthConfig
	CORS        CORSConfig
	Log         LogConfig
}

type JWTConfig struct {
	Token     string
	ExpiresIn time.Duration
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// Enabled is false when no redis host is configured; login throttling is then off.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled is false when no endpoint is configured; store image upload is then off.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

type AuthConfig struct {
	BcryptCost int
	// AdminCanCreateAdmins lets ADMIN accounts create further admins.
	AdminCanCreateAdmins bool
	// DistinctLoginErrors answers 404 for an unknown email and 401 for a
	// wrong password. When false both become the same 401.
	DistinctLoginErrors bool
	MaxLoginAttempts    int
	LoginLockout        time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envJWTSecret    = "JWT_SECRET"
	envJWTExpiresIn = "JWT_EXPIRES_IN"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"
	envMinioBucket    = "MINIO_BUCKET"
	envMinioUseSSL    = "MINIO_USE_SSL"
)

var ErrMissingJWTSecret = errors.New(envJWTSecret + " must be set")

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindings := map[string]string{
		"jwt.token":       envJWTSecret,
		"jwt.expiresin":   envJWTExpiresIn,
		"redis.host":      envRedisHost,
		"redis.port":      envRedisPort,
		"redis.user":      envRedisUser,
		"redis.password":  envRedisPass,
		"minio.endpoint":  envMinioEndpoint,
		"minio.accesskey": envMinioAccessKey,
		"minio.secretkey": envMinioSecretKey,
		"minio.bucket":    envMinioBucket,
		"minio.usessl":    envMinioUseSSL,
	}
	for key, env := range bindings {
		if err = v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Infof("config file %q not found, using defaults and environment", configName)
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWT.Token == "" {
		return nil, ErrMissingJWTSecret
	}
	cfg.DSN = dsn.FromEnv()

	log.Info("config parsed")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("servicehost", "0.0.0.0")
	v.SetDefault("serviceport", 5000)

	v.SetDefault("jwt.token", "")
	v.SetDefault("jwt.expiresin", 24*time.Hour)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.user", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.dialtimeout", 10*time.Second)
	v.SetDefault("redis.readtimeout", 10*time.Second)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.accesskey", "")
	v.SetDefault("minio.secretkey", "")
	v.SetDefault("minio.bucket", "store-images")
	v.SetDefault("minio.usessl", false)

	v.SetDefault("auth.bcryptcost", 10)
	v.SetDefault("auth.admincancreateadmins", false)
	v.SetDefault("auth.distinctloginerrors", true)
	v.SetDefault("auth.maxloginattempts", 5)
	v.SetDefault("auth.loginlockout", 15*time.Minute)

	v.SetDefault("cors.alloworigins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Apply configures the global logrus logger.
func (l LogConfig) Apply() {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", l.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(l.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
