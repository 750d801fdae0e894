package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Fare     FareConfig
	Tracking TrackingConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon addresses
type NSQConfig struct {
	Address         string
	LookupAddresses []string
}

// JWTConfig contains token validation configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// FareConfig contains fare engine configuration
type FareConfig struct {
	Currency        string
	NightStartHour  int // night surcharge window start, 24h clock
	NightEndHour    int // night surcharge window end, 24h clock
	DriverAllowance int // outstation per-day driver allowance, whole units
}

// TrackingConfig contains location tracking configuration
type TrackingConfig struct {
	ReportInterval   int     // fallback timer period in seconds
	MinMoveMeters    float64 // listener distance-delta threshold
	MinReportSeconds int     // listener time-delta threshold
}

// DispatchConfig contains assignment and dashboard configuration
type DispatchConfig struct {
	SnapshotTimeout int // dashboard aggregate query cap in seconds
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
