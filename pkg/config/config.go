package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Media         MediaConfig
	MinIO         MinIOConfig
	Sentry        SentryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	if err := cfg.Media.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MENTORMATCH_APP_ENV" required:"true"`
	Port         string `envconfig:"MENTORMATCH_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MENTORMATCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MENTORMATCH_LOG_WARN_STACK" default:"false"`
	CORSOrigins  string `envconfig:"MENTORMATCH_CORS_ORIGINS" default:"*"`
	DocsEnabled  bool   `envconfig:"MENTORMATCH_DOCS_ENABLED" default:"true"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// AllowedOrigins splits the comma separated CORS origin list.
func (a AppConfig) AllowedOrigins() []string {
	var out []string
	for _, origin := range strings.Split(a.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

type DBConfig struct {
	DSN    string `envconfig:"MENTORMATCH_DB_DSN"`
	Driver string `envconfig:"MENTORMATCH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MENTORMATCH_DB_HOST"`
	LegacyPort     int    `envconfig:"MENTORMATCH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MENTORMATCH_DB_USER"`
	LegacyPassword string `envconfig:"MENTORMATCH_DB_PASSWORD"`
	LegacyName     string `envconfig:"MENTORMATCH_DB_NAME"`
	LegacySSLMode  string `envconfig:"MENTORMATCH_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"MENTORMATCH_SQLITE_PATH" default:"mentormatch.db"`

	MaxOpenConns    int           `envconfig:"MENTORMATCH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MENTORMATCH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MENTORMATCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MENTORMATCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MENTORMATCH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MENTORMATCH_REDIS_ADDR"`
	Password     string        `envconfig:"MENTORMATCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"MENTORMATCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MENTORMATCH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MENTORMATCH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MENTORMATCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MENTORMATCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MENTORMATCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MENTORMATCH_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MENTORMATCH_JWT_ISSUER" default:"mentormatch"`
	ExpirationMinutes int    `envconfig:"MENTORMATCH_JWT_EXPIRATION_MINUTES" default:"60"`
}

// TokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MENTORMATCH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MENTORMATCH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MENTORMATCH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MENTORMATCH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MENTORMATCH_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"MENTORMATCH_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"MENTORMATCH_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"MENTORMATCH_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"MENTORMATCH_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"MENTORMATCH_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"MENTORMATCH_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MENTORMATCH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MENTORMATCH_AUTO_MIGRATE" default:"false"`
}

type MediaConfig struct {
	Backend       string `envconfig:"MENTORMATCH_MEDIA_BACKEND" default:"fs"`
	Root          string `envconfig:"MENTORMATCH_MEDIA_ROOT" default:"./data/images"`
	MaxBytes      int64  `envconfig:"MENTORMATCH_MEDIA_MAX_BYTES" default:"1048576"`
	MinSide       int    `envconfig:"MENTORMATCH_MEDIA_MIN_SIDE" default:"500"`
	MaxSide       int    `envconfig:"MENTORMATCH_MEDIA_MAX_SIDE" default:"1000"`
	JPEGQuality   int    `envconfig:"MENTORMATCH_MEDIA_JPEG_QUALITY" default:"90"`
	MentorDefault string `envconfig:"MENTORMATCH_MEDIA_MENTOR_DEFAULT_URL" default:"https://placehold.co/500x500.jpg?text=MENTOR"`
	MenteeDefault string `envconfig:"MENTORMATCH_MEDIA_MENTEE_DEFAULT_URL" default:"https://placehold.co/500x500.jpg?text=MENTEE"`
}

func (m MediaConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(m.Backend)) {
	case MediaBackendFS, MediaBackendMinIO:
	default:
		return fmt.Errorf("%s must be %q or %q", EnvMediaBackend, MediaBackendFS, MediaBackendMinIO)
	}
	if m.MinSide <= 0 || m.MaxSide < m.MinSide {
		return fmt.Errorf("invalid image side bounds %d..%d", m.MinSide, m.MaxSide)
	}
	if m.MaxBytes <= 0 {
		return fmt.Errorf("%s must be positive", EnvMediaMaxBytes)
	}
	return nil
}

// UsesMinIO reports whether profile images are stored in an object store.
func (m MediaConfig) UsesMinIO() bool {
	return strings.EqualFold(strings.TrimSpace(m.Backend), MediaBackendMinIO)
}

type MinIOConfig struct {
	Endpoint  string `envconfig:"MENTORMATCH_MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey string `envconfig:"MENTORMATCH_MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MENTORMATCH_MINIO_SECRET_KEY"`
	Bucket    string `envconfig:"MENTORMATCH_MINIO_BUCKET" default:"mentormatch-images"`
	UseSSL    bool   `envconfig:"MENTORMATCH_MINIO_USE_SSL" default:"false"`
}

type SentryConfig struct {
	DSN              string  `envconfig:"MENTORMATCH_SENTRY_DSN"`
	TracesSampleRate float64 `envconfig:"MENTORMATCH_SENTRY_TRACES_SAMPLE_RATE" default:"0"`
}

// Enabled reports whether a DSN was configured.
func (s SentryConfig) Enabled() bool {
	return strings.TrimSpace(s.DSN) != ""
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if db.DSN != "" || useSQLite {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
