package config

import (
	"encoding/base64"
	"log/slog"
	"os"
	"strings"

	"github.com/elprincipe/noticias/internal/logger"
	"github.com/elprincipe/noticias/news"
	"github.com/gorilla/securecookie"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const configFilename = "config.yaml"

// defaultAdminPassword is hashed into the generated config on first run.
// Change the hash in config.yaml for anything beyond a demo deployment.
const defaultAdminPassword = "principe2025"

// SetupConfig loads file-based configuration. On first run it writes a
// config.yaml with defaults (including a bcrypt hash of the default admin
// password) and a .cookiesecret.yaml with a generated session secret.
func SetupConfig() *news.Config {
	viper.SetDefault("datafile", "data.json")
	viper.SetDefault("cachefile", "data_cache.json")
	viper.SetDefault("sessiondbfile", "sessions.db")
	viper.SetDefault("image_dir", "images")
	viper.SetDefault("host", "0.0.0.0:8080")
	viper.SetDefault("base_url", "http://localhost:8080")
	viper.SetDefault("log_format", "pretty") // pretty, json, or text
	viper.SetDefault("log_level", "info")    // debug, info, warn, error
	viper.SetDefault("admin_user", "user")
	viper.SetDefault("admin_password_hash", "")
	viper.SetDefault("cookie_expiry", 86400*7) // a week
	viper.SetDefault("weather_url", "https://www.accuweather.com/es/bo/general-saavedra/36230/hourly-weather-forecast/36230")
	viper.SetDefault("weather_cache_file", "weather_cache.json")

	viper.SetConfigFile(configFilename)
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()

	createDefaultConfigFile := false

	if err != nil {
		if strings.Contains(err.Error(), "no such file or directory") {
			createDefaultConfigFile = true
		} else {
			slog.Error("failed to read config", "error", err)
			os.Exit(1)
		}
	}

	// Initialize logger with configured format and level
	logger.InitLogger(
		logger.ParseLogFormat(viper.GetString("log_format")),
		logger.ParseLogLevel(viper.GetString("log_level")),
	)

	config := &news.Config{
		DataFile:          viper.GetString("datafile"),
		CacheFile:         viper.GetString("cachefile"),
		SessionDBFile:     viper.GetString("sessiondbfile"),
		ImageDir:          viper.GetString("image_dir"),
		Host:              viper.GetString("host"),
		BaseURL:           viper.GetString("base_url"),
		LogFormat:         viper.GetString("log_format"),
		LogLevel:          viper.GetString("log_level"),
		AdminUser:         viper.GetString("admin_user"),
		AdminPasswordHash: viper.GetString("admin_password_hash"),
		CookieExpiry:      viper.GetInt("cookie_expiry"),
		WeatherURL:        viper.GetString("weather_url"),
		WeatherCacheFile:  viper.GetString("weather_cache_file"),
	}

	if config.AdminPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("failed to hash default admin password", "error", err)
			os.Exit(1)
		}
		config.AdminPasswordHash = string(hash)
	}

	config.CookieSecret = loadOrCreateCookieSecret()

	if createDefaultConfigFile {
		slog.Info("config not found, writing defaults", "file", configFilename)
		conf, err := os.Create(configFilename)
		if err != nil {
			slog.Error("failed to create config file", "error", err)
			os.Exit(1)
		}
		defer conf.Close()

		if err := yaml.NewEncoder(conf).Encode(config); err != nil {
			slog.Error("failed to write config file", "error", err)
			os.Exit(1)
		}
	}

	return config
}

func loadOrCreateCookieSecret() []byte {
	const secretFilename = ".cookiesecret.yaml"

	if _, err := os.Stat(secretFilename); err == nil {
		viper.SetConfigFile(secretFilename)
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			slog.Error("failed to read cookie secret config", "error", err)
			os.Exit(1)
		}
		secret, err := base64.StdEncoding.DecodeString(viper.GetString("cookie_secret"))
		if err != nil {
			slog.Error("failed to decode cookie secret", "error", err)
			os.Exit(1)
		}
		return secret
	}

	file, err := os.Create(secretFilename)
	if err != nil {
		slog.Error("failed to create cookie secret file", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	secret := securecookie.GenerateRandomKey(64)
	if secret == nil {
		slog.Error("failed to generate cookie secret")
		os.Exit(1)
	}

	encoded := base64.StdEncoding.EncodeToString(secret)
	if _, err := file.WriteString("cookie_secret: " + encoded + "\n"); err != nil {
		slog.Error("failed to write cookie secret", "error", err)
		os.Exit(1)
	}
	return secret
}
