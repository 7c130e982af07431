package config

const (
	EnvPrefix = "MENTORMATCH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	MediaBackendFS    = "fs"
	MediaBackendMinIO = "minio"

	EnvAppEnv        = "MENTORMATCH_APP_ENV"
	EnvPort          = "MENTORMATCH_APP_PORT"
	EnvDBDSN         = "MENTORMATCH_DB_DSN"
	EnvDBHost        = "MENTORMATCH_DB_HOST"
	EnvDBUser        = "MENTORMATCH_DB_USER"
	EnvDBPassword    = "MENTORMATCH_DB_PASSWORD"
	EnvDBName        = "MENTORMATCH_DB_NAME"
	EnvRedisURL      = "MENTORMATCH_REDIS_URL"
	EnvJWTSecret     = "MENTORMATCH_JWT_SECRET"
	EnvJWTIssuer     = "MENTORMATCH_JWT_ISSUER"
	EnvJWTExpMins    = "MENTORMATCH_JWT_EXPIRATION_MINUTES"
	EnvUseSQLite     = "MENTORMATCH_USE_SQLITE"
	EnvMediaBackend  = "MENTORMATCH_MEDIA_BACKEND"
	EnvMediaMaxBytes = "MENTORMATCH_MEDIA_MAX_BYTES"
	EnvMediaMinSide  = "MENTORMATCH_MEDIA_MIN_SIDE"
	EnvMediaMaxSide  = "MENTORMATCH_MEDIA_MAX_SIDE"
	EnvSentryDSN     = "MENTORMATCH_SENTRY_DSN"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
