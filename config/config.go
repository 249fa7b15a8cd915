package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultEnvFile            = ".env"

	defaultFCMProvider       = "http"
	defaultFCMTokenURL       = "https://oauth2.googleapis.com/token"
	defaultFCMSendURL        = "https://fcm.googleapis.com"
	defaultFCMRequestTimeout = 10 * time.Second
	defaultWebhookHeader     = "X-Webhook-Secret"
	defaultTimezone          = "UTC"
	defaultWorkers           = 8
	defaultMetricsPath       = "/metrics"
	defaultSlowThreshold     = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	GormLog *GormLogConfig `json:"gormLog" yaml:"gormLog"`

	// FCM configuration for push delivery
	FCM *FCMConfig `json:"fcm" yaml:"fcm"`

	// Webhook configuration for the database change-event endpoint
	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	// Leaderboard configuration for the weekly job
	Leaderboard *LeaderboardConfig `json:"leaderboard" yaml:"leaderboard"`

	// PubSub configuration for notification re-entry
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GormLogConfig tunes the slog adapter used for SQL logging
type GormLogConfig struct {
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`
}

// FCMConfig defines Firebase Cloud Messaging delivery configuration
type FCMConfig struct {
	// Provider type: "http" for the HTTP v1 client or "firebase" for the Admin SDK
	Provider string `json:"provider" yaml:"provider"`

	// Path to the service account JSON file
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Base64 encoded service account JSON, takes precedence over CredentialsPath
	CredentialsBase64 string `json:"credentialsBase64" yaml:"credentialsBase64"`

	// OAuth token endpoint used for the JWT-bearer exchange
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`

	// Base URL of the FCM HTTP v1 API
	SendURL string `json:"sendUrl" yaml:"sendUrl"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Outbound send throttle, zero disables it
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// WebhookConfig defines ingress protection for database webhooks
type WebhookConfig struct {
	// Shared secret expected in Header, empty disables the check
	Secret string `json:"secret" yaml:"secret"`
	Header string `json:"header" yaml:"header"`

	// Ingress limiter, zero disables it
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// LeaderboardConfig defines the weekly leaderboard job configuration
type LeaderboardConfig struct {
	// IANA zone used to truncate "now" to the current day
	Timezone string `json:"timezone" yaml:"timezone"`

	// Number of concurrent per-user completion queries
	Workers int `json:"workers" yaml:"workers"`

	// Republish inserted notifications as change events through PubSub
	PublishNotifications bool `json:"publishNotifications" yaml:"publishNotifications"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus exposition endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(defaultEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so callers never see nil sub-configs
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.GormLog == nil {
		cfg.GormLog = &GormLogConfig{}
	}
	if cfg.GormLog.SlowThreshold <= 0 {
		cfg.GormLog.SlowThreshold = defaultSlowThreshold
	}

	if cfg.FCM == nil {
		cfg.FCM = &FCMConfig{}
	}
	if cfg.FCM.Provider == "" {
		cfg.FCM.Provider = defaultFCMProvider
	}
	if cfg.FCM.TokenURL == "" {
		cfg.FCM.TokenURL = defaultFCMTokenURL
	}
	if cfg.FCM.SendURL == "" {
		cfg.FCM.SendURL = defaultFCMSendURL
	}
	cfg.FCM.SendURL = strings.TrimRight(cfg.FCM.SendURL, "/")
	if cfg.FCM.RequestTimeout <= 0 {
		cfg.FCM.RequestTimeout = defaultFCMRequestTimeout
	}

	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}
	if cfg.Webhook.Header == "" {
		cfg.Webhook.Header = defaultWebhookHeader
	}

	if cfg.Leaderboard == nil {
		cfg.Leaderboard = &LeaderboardConfig{}
	}
	if cfg.Leaderboard.Timezone == "" {
		cfg.Leaderboard.Timezone = defaultTimezone
	}
	if cfg.Leaderboard.Workers <= 0 {
		cfg.Leaderboard.Workers = defaultWorkers
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func (cfg *Config) validate() error {
	if cfg.Postgres == nil {
		return errors.New("postgres config is required")
	}

	if _, err := time.LoadLocation(cfg.Leaderboard.Timezone); err != nil {
		return errors.Wrapf(err, "invalid leaderboard timezone %q", cfg.Leaderboard.Timezone)
	}

	if cfg.FCM.RequestsPerSecond < 0 || cfg.Webhook.RequestsPerSecond < 0 {
		return errors.New("requestsPerSecond must not be negative")
	}

	return nil
}

// Location returns the zone the leaderboard week is computed in
func (c *LeaderboardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
