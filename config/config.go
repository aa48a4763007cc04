package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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
		// TrustProxyHeaders takes the client IP from X-Forwarded-For; enable only behind a load balancer
		TrustProxyHeaders bool `json:"trustProxyHeaders" yaml:"trustProxyHeaders"`
		Timeouts          struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Storage selects the repository driver
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		// Internal signs the service-to-service tokens accepted by the dispatch and device routes
		Internal string `json:"internal" yaml:"internal"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	GeoIndex *GeoIndexConfig `json:"geoIndex" yaml:"geoIndex"`

	Fanout *FanoutConfig `json:"fanout" yaml:"fanout"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Witness *WitnessConfig `json:"witness" yaml:"witness"`

	Triangulation *TriangulationConfig `json:"triangulation" yaml:"triangulation"`

	// DeviceFeed configures the LISTEN/NOTIFY consumer that keeps the geo index in sync
	DeviceFeed *DeviceFeedConfig `json:"deviceFeed" yaml:"deviceFeed"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which repository implementation is wired
type StorageConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// DryRun validates messages with FCM without delivering them
	DryRun bool `json:"dryRun" yaml:"dryRun"`
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

	// PushAudience is the expected OIDC audience on push requests; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// GeoIndexConfig defines the in-memory device index
type GeoIndexConfig struct {
	// Grid cell edge in degrees
	CellSizeDeg float64 `json:"cellSizeDeg" yaml:"cellSizeDeg"`

	// Devices silent for longer than this are dropped from the index
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`

	// How often the stale sweeper runs
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// FanoutConfig defines alert fanout policy and dispatcher bounds
type FanoutConfig struct {
	DefaultRadiusKm float64       `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64       `json:"maxRadiusKm" yaml:"maxRadiusKm"`
	MaxInFlight     int64         `json:"maxInFlight" yaml:"maxInFlight"`
	SendTimeout     time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
	MaxRetries      int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBackoff    time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// RateLimitConfig defines the per-device rolling alert window
type RateLimitConfig struct {
	// Backend is "memory" or "redis"
	Backend   string        `json:"backend" yaml:"backend"`
	MaxAlerts int           `json:"maxAlerts" yaml:"maxAlerts"`
	Window    time.Duration `json:"window" yaml:"window"`
	Redis     RedisConfig   `json:"redis" yaml:"redis"`
}

// RedisConfig defines the shared limiter store
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// WitnessConfig defines witness confirmation and aggregation limits
type WitnessConfig struct {
	// Number of most recent confirmations returned in an aggregation
	MaxListed int `json:"maxListed" yaml:"maxListed"`

	HeatMapCellSizeDeg float64 `json:"heatMapCellSizeDeg" yaml:"heatMapCellSizeDeg"`

	// Per-IP token bucket on the confirm endpoint
	ConfirmRatePerSecond float64 `json:"confirmRatePerSecond" yaml:"confirmRatePerSecond"`
	ConfirmBurst         int     `json:"confirmBurst" yaml:"confirmBurst"`
}

// TriangulationConfig defines the bearing fit limits
type TriangulationConfig struct {
	// An estimate farther than this from every witness is discarded
	MaxIntersectionKm float64 `json:"maxIntersectionKm" yaml:"maxIntersectionKm"`

	// RMS bearing-line residual at which confidence drops by about 63%
	SpreadScaleKm float64 `json:"spreadScaleKm" yaml:"spreadScaleKm"`
}

// DeviceFeedConfig defines the Postgres notification listener
type DeviceFeedConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DSN for the dedicated LISTEN connection
	DSN string `json:"dsn" yaml:"dsn"`

	Channel string `json:"channel" yaml:"channel"`
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every unset tunable so components can read config without nil checks.
func applyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "postgres"
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.GeoIndex == nil {
		cfg.GeoIndex = &GeoIndexConfig{}
	}
	setIfZero(&cfg.GeoIndex.CellSizeDeg, 0.2)
	setIfZero(&cfg.GeoIndex.StaleAfter, 7*24*time.Hour)
	setIfZero(&cfg.GeoIndex.SweepInterval, 10*time.Minute)

	if cfg.Fanout == nil {
		cfg.Fanout = &FanoutConfig{}
	}
	setIfZero(&cfg.Fanout.DefaultRadiusKm, 1.0)
	setIfZero(&cfg.Fanout.MaxRadiusKm, 50.0)
	setIfZero(&cfg.Fanout.MaxInFlight, 200)
	setIfZero(&cfg.Fanout.SendTimeout, 3*time.Second)
	setIfZero(&cfg.Fanout.MaxRetries, 2)
	setIfZero(&cfg.Fanout.RetryBackoff, 500*time.Millisecond)

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Backend == "" {
		cfg.RateLimit.Backend = "memory"
	}
	setIfZero(&cfg.RateLimit.MaxAlerts, 3)
	setIfZero(&cfg.RateLimit.Window, 15*time.Minute)
	if cfg.RateLimit.Redis.KeyPrefix == "" {
		cfg.RateLimit.Redis.KeyPrefix = "ufobeep:alerts:"
	}

	if cfg.Witness == nil {
		cfg.Witness = &WitnessConfig{}
	}
	setIfZero(&cfg.Witness.MaxListed, 50)
	setIfZero(&cfg.Witness.HeatMapCellSizeDeg, 0.01)
	setIfZero(&cfg.Witness.ConfirmRatePerSecond, 1.0)
	setIfZero(&cfg.Witness.ConfirmBurst, 5)

	if cfg.Triangulation == nil {
		cfg.Triangulation = &TriangulationConfig{}
	}
	setIfZero(&cfg.Triangulation.MaxIntersectionKm, 100.0)
	setIfZero(&cfg.Triangulation.SpreadScaleKm, 2.0)

	if cfg.DeviceFeed == nil {
		cfg.DeviceFeed = &DeviceFeedConfig{}
	}
	if cfg.DeviceFeed.Channel == "" {
		cfg.DeviceFeed.Channel = "device_location_changed"
	}
}

func setIfZero[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
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
