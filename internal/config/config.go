package config

import (
	"github.com/spf13/viper"
)

// DefaultDatabasePath is where the catalog database lives unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./catalog.db"

type (
	Config struct {
		HTTP
		Database
		UI
		Global
	}

	HTTP struct {
		Port          int32
		Host          string
		CSRFSecret    string // empty disables CSRF protection
		SecureCookies bool
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesGlob string
		StaticPath    string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8180)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", true)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_glob", "./templates/*.html")
	v.SetDefault("static_path", "./static")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		HTTP: HTTP{
			Port:          v.GetInt32("PORT"),
			Host:          v.GetString("HOST"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesGlob: v.GetString("TEMPLATES_GLOB"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
