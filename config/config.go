package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"alertacordon/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
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
	defaultWorkerPort         = 8081
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
		// Public URL of the report form, encoded in the flyer QR code
		PublicURL string `json:"publicUrl" yaml:"publicUrl"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configures the alert worker process
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds schema management options
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Admin configures the moderator login
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Reports configures listing limits
	Reports *ReportsConfig `json:"reports" yaml:"reports"`

	// Geocoding configures the known-location table and the online geocoder
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Alerts configures alert dispatch and retries
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	// X credentials for republishing alerts
	X *XConfig `json:"x" yaml:"x"`

	// Telegram channel for republishing alerts
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// Firebase configuration for topic push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for the form flyer
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for async alert dispatch
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema management options
type DatabaseConfig struct {
	// Run gorm AutoMigrate for the report tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AdminConfig defines the single moderator account
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	// bcrypt hash, produced by `alertctl hash-password`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// ReportsConfig defines listing limits
type ReportsConfig struct {
	DefaultLimit  int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit      int `json:"maxLimit" yaml:"maxLimit"`
	MapWindowDays int `json:"mapWindowDays" yaml:"mapWindowDays"`
	// Upper bound of the nearby search radius in meters
	MaxNearbyRadius float64 `json:"maxNearbyRadius" yaml:"maxNearbyRadius"`
}

// GeocodingConfig defines location resolution
type GeocodingConfig struct {
	// Enable the online geocoder for locations the static table cannot place
	Enabled bool `json:"enabled" yaml:"enabled"`

	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Appended to every query to bias results toward the city
	CitySuffix string        `json:"citySuffix" yaml:"citySuffix"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	CacheSize  int           `json:"cacheSize" yaml:"cacheSize"`

	// Optional YAML file with extra known locations
	KnownLocationsFile string `json:"knownLocationsFile" yaml:"knownLocationsFile"`
}

// AlertsConfig defines alert dispatch
type AlertsConfig struct {
	// "sync" dispatches inside the request, "async" publishes an event for the worker
	Mode string `json:"mode" yaml:"mode"`

	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryDelay  time.Duration `json:"retryDelay" yaml:"retryDelay"`

	// Cron expression of the worker retry job
	RetrySchedule string `json:"retrySchedule" yaml:"retrySchedule"`
	Timezone      string `json:"timezone" yaml:"timezone"`

	// Timeout of a single channel publish
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

// XConfig defines the OAuth 1.0a user credentials of the X account
type XConfig struct {
	AppKey       string `json:"appKey" yaml:"appKey"`
	AppSecret    string `json:"appSecret" yaml:"appSecret"`
	AccessToken  string `json:"accessToken" yaml:"accessToken"`
	AccessSecret string `json:"accessSecret" yaml:"accessSecret"`
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
}

// Complete reports whether every credential is set.
func (c *XConfig) Complete() bool {
	return c != nil && c.AppKey != "" && c.AppSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// TelegramConfig defines the Telegram channel
type TelegramConfig struct {
	Token  string `json:"token" yaml:"token"`
	ChatID int64  `json:"chatId" yaml:"chatId"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	Topic           string `json:"topic" yaml:"topic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Expected audience of push OIDC tokens received by the worker (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka brokers and topic (for kafka provider)
	KafkaBrokers []string `json:"kafkaBrokers" yaml:"kafkaBrokers"`
	KafkaTopic   string   `json:"kafkaTopic" yaml:"kafkaTopic"`
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	applyXCredentialsFromEnv(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}

	if cfg.Reports == nil {
		cfg.Reports = &ReportsConfig{}
	}
	if cfg.Reports.DefaultLimit <= 0 {
		cfg.Reports.DefaultLimit = 10
	}
	if cfg.Reports.MaxLimit <= 0 {
		cfg.Reports.MaxLimit = 100
	}
	if cfg.Reports.MapWindowDays <= 0 {
		cfg.Reports.MapWindowDays = 30
	}
	if cfg.Reports.MaxNearbyRadius <= 0 {
		cfg.Reports.MaxNearbyRadius = 5000
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = "alertacordon/1.0"
	}
	if cfg.Geocoding.CitySuffix == "" {
		cfg.Geocoding.CitySuffix = ", Montevideo, Uruguay"
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = 5 * time.Second
	}
	if cfg.Geocoding.CacheSize <= 0 {
		cfg.Geocoding.CacheSize = 512
	}

	if cfg.Alerts == nil {
		cfg.Alerts = &AlertsConfig{}
	}
	if cfg.Alerts.Mode == "" {
		cfg.Alerts.Mode = constants.AlertModeSync
	}
	if cfg.Alerts.MaxAttempts <= 0 {
		cfg.Alerts.MaxAttempts = 5
	}
	if cfg.Alerts.RetryDelay <= 0 {
		cfg.Alerts.RetryDelay = 2 * time.Minute
	}
	if cfg.Alerts.RetrySchedule == "" {
		cfg.Alerts.RetrySchedule = "*/5 * * * *"
	}
	if cfg.Alerts.Timezone == "" {
		cfg.Alerts.Timezone = "America/Montevideo"
	}
	if cfg.Alerts.PublishTimeout <= 0 {
		cfg.Alerts.PublishTimeout = 10 * time.Second
	}

	if cfg.Admin != nil && cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = 12 * time.Hour
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}
}

// applyXCredentialsFromEnv honours the X_APP_KEY style variables used by
// existing deployments. Their underscores split into separate config segments,
// so the generic env mapping cannot reach x.appKey on its own.
func applyXCredentialsFromEnv(cfg *Config) {
	if cfg.X == nil {
		cfg.X = &XConfig{}
	}

	fill := func(dst *string, envKey string) {
		if *dst == "" {
			*dst = os.Getenv(envKey)
		}
	}
	fill(&cfg.X.AppKey, "X_APP_KEY")
	fill(&cfg.X.AppSecret, "X_APP_SECRET")
	fill(&cfg.X.AccessToken, "X_ACCESS_TOKEN")
	fill(&cfg.X.AccessSecret, "X_ACCESS_SECRET")
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
