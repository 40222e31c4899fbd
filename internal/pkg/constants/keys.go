package constants

const (
	CookieKeyAuthToken = "dayrate_auth_token"

	CtxKeyPropertyID = "property_id"
)

// viper keys
const (
	ViperLogLevel        = "log_level"
	ViperListenAddr      = "listen_addr"
	ViperDatabaseDSN     = "database_dsn"
	ViperSnapshotPath    = "snapshot_path"
	ViperHolidayURL      = "holiday_url"
	ViperCORSOrigin      = "cors_origin"
	ViperSecretKey       = "auth_secret"
	ViperPassword        = "auth_password"
	ViperPasswordHash    = "auth_password_hash"
	ViperLockoutLimit    = "auth_lockout_limit"
	ViperLockoutCooldown = "auth_lockout_cooldown"
	ViperPropertyID      = "property_id"
	ViperPropertyName    = "property_name"
	ViperPropertyRooms   = "property_rooms"
)
