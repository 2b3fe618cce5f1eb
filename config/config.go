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
	productionEnv             = "production"
)

// Backend names accepted by the challenge and lockout sections.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
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
		// PublicBaseURL is the externally reachable origin of this service; provider
		// redirect URIs are built from it.
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		Timeouts      struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Frontend FrontendConfig `json:"frontend" yaml:"frontend"`

	Mobile MobileConfig `json:"mobile" yaml:"mobile"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database struct {
		// AutoMigrate creates or updates the schema on startup.
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
		// SlowQueryThreshold logs statements slower than this at WARN.
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	} `json:"database" yaml:"database"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Session SessionConfig `json:"session" yaml:"session"`

	OAuth OAuthConfig `json:"oauth" yaml:"oauth"`

	Challenge ChallengeConfig `json:"challenge" yaml:"challenge"`

	Lockout LockoutConfig `json:"lockout" yaml:"lockout"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`
}

// FrontendConfig points browser redirects at the web app.
type FrontendConfig struct {
	BaseURL      string `json:"baseUrl" yaml:"baseUrl"`
	CallbackPath string `json:"callbackPath" yaml:"callbackPath"`
}

// MobileConfig defines the deep-link target for native clients.
type MobileConfig struct {
	Scheme string `json:"scheme" yaml:"scheme"`
}

// RedisConfig is optional; it is only dialed when a backend selects redis.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// SessionConfig defines session token lifetimes and the browser cookie.
type SessionConfig struct {
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	RememberMeTTL time.Duration `json:"rememberMeTtl" yaml:"rememberMeTtl"`
	CookieName    string        `json:"cookieName" yaml:"cookieName"`
	CookieDomain  string        `json:"cookieDomain" yaml:"cookieDomain"`
}

// OAuthConfig holds per-provider credentials. A provider with missing
// credentials stays supported but reports itself as not configured.
type OAuthConfig struct {
	CallbackPath string            `json:"callbackPath" yaml:"callbackPath"`
	Google       GoogleOAuthConfig `json:"google" yaml:"google"`
	Apple        AppleOAuthConfig  `json:"apple" yaml:"apple"`
}

type GoogleOAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	Scopes       string `json:"scopes" yaml:"scopes"`
	AuthURL      string `json:"authUrl" yaml:"authUrl"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
	UserInfoURL  string `json:"userInfoUrl" yaml:"userInfoUrl"`
}

// AppleOAuthConfig carries the material used to mint the client assertion.
// PrivateKey takes precedence over PrivateKeyPath.
type AppleOAuthConfig struct {
	ClientID       string `json:"clientId" yaml:"clientId"`
	TeamID         string `json:"teamId" yaml:"teamId"`
	KeyID          string `json:"keyId" yaml:"keyId"`
	PrivateKey     string `json:"privateKey" yaml:"privateKey"`
	PrivateKeyPath string `json:"privateKeyPath" yaml:"privateKeyPath"`
	Scopes         string `json:"scopes" yaml:"scopes"`
	AuthURL        string `json:"authUrl" yaml:"authUrl"`
	TokenURL       string `json:"tokenUrl" yaml:"tokenUrl"`
	Audience       string `json:"audience" yaml:"audience"`
}

// ChallengeConfig defines the PKCE challenge store.
type ChallengeConfig struct {
	Backend       string        `json:"backend" yaml:"backend"`
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// LockoutConfig defines password brute-force protection.
type LockoutConfig struct {
	Backend   string        `json:"backend" yaml:"backend"`
	Threshold int           `json:"threshold" yaml:"threshold"`
	Window    time.Duration `json:"window" yaml:"window"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IsProduction reports whether the service runs in a production deployment.
// Session cookies are only set in production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, productionEnv)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// OAUTH_GOOGLE_CLIENTID -> oauth.google.clientId, aligned with the keys already in YAML.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every zero-valued tunable with its default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.Frontend.CallbackPath == "" {
		c.Frontend.CallbackPath = "/auth/callback"
	}
	if c.Mobile.Scheme == "" {
		c.Mobile.Scheme = "app"
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 7 * 24 * time.Hour
	}
	if c.Session.RememberMeTTL <= 0 {
		c.Session.RememberMeTTL = 30 * 24 * time.Hour
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "session"
	}
	if c.OAuth.CallbackPath == "" {
		c.OAuth.CallbackPath = "/auth/oauth/callback"
	}
	if c.Database.SlowQueryThreshold <= 0 {
		c.Database.SlowQueryThreshold = 200 * time.Millisecond
	}
	if c.Challenge.Backend == "" {
		c.Challenge.Backend = BackendMemory
	}
	if c.Challenge.TTL <= 0 {
		c.Challenge.TTL = 10 * time.Minute
	}
	if c.Challenge.SweepInterval <= 0 {
		c.Challenge.SweepInterval = 10 * time.Minute
	}
	if c.Lockout.Backend == "" {
		c.Lockout.Backend = BackendMemory
	}
	if c.Lockout.Threshold <= 0 {
		c.Lockout.Threshold = 5
	}
	if c.Lockout.Window <= 0 {
		c.Lockout.Window = 30 * time.Minute
	}
	if c.Lockout.Duration <= 0 {
		c.Lockout.Duration = 30 * time.Minute
	}
}

// Validate rejects combinations that cannot start.
func (c *Config) Validate() error {
	if c.SecretKey.Session == "" {
		return errors.New("secretKey.session must be provided")
	}

	switch c.Challenge.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			return errors.New("challenge.backend=redis requires redis.addr")
		}
	default:
		return errors.Errorf("unknown challenge backend: %s", c.Challenge.Backend)
	}

	switch c.Lockout.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return errors.Errorf("unknown lockout backend: %s", c.Lockout.Backend)
	}

	return nil
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

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
