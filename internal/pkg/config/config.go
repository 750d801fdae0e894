package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from an env file (local development). Environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setDefaults(v)

	return buildConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dispatch-engine")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("FARE_CURRENCY", "INR")
	v.SetDefault("FARE_NIGHT_START_HOUR", 22)
	v.SetDefault("FARE_NIGHT_END_HOUR", 6)
	v.SetDefault("FARE_DRIVER_ALLOWANCE", 300)

	v.SetDefault("TRACKING_REPORT_INTERVAL", 10)
	v.SetDefault("TRACKING_MIN_MOVE_METERS", 25.0)
	v.SetDefault("TRACKING_MIN_REPORT_SECONDS", 5)

	v.SetDefault("DISPATCH_SNAPSHOT_TIMEOUT", 5)

	v.SetDefault("LOG_LEVEL", "info")
}

func buildConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupAddresses = v.GetStringSlice("NSQ_LOOKUP_ADDRESSES")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Fare config
	configs.Fare.Currency = v.GetString("FARE_CURRENCY")
	configs.Fare.NightStartHour = v.GetInt("FARE_NIGHT_START_HOUR")
	configs.Fare.NightEndHour = v.GetInt("FARE_NIGHT_END_HOUR")
	configs.Fare.DriverAllowance = v.GetInt("FARE_DRIVER_ALLOWANCE")

	// Tracking config
	configs.Tracking.ReportInterval = v.GetInt("TRACKING_REPORT_INTERVAL")
	configs.Tracking.MinMoveMeters = v.GetFloat64("TRACKING_MIN_MOVE_METERS")
	configs.Tracking.MinReportSeconds = v.GetInt("TRACKING_MIN_REPORT_SECONDS")

	// Dispatch config
	configs.Dispatch.SnapshotTimeout = v.GetInt("DISPATCH_SNAPSHOT_TIMEOUT")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
