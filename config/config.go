package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"sync"
	"time"
)

var once sync.Once

func InitConfig() {
	once.Do(func() {
		// .env is optional, real environment variables win
		_ = godotenv.Load()

		viper.AutomaticEnv()

		viper.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
		viper.BindEnv("channel_id", "CHANNEL_ID")
		viper.BindEnv("stock_api_url", "STOCK_API_URL")
		viper.BindEnv("poll_interval", "POLL_INTERVAL")
		viper.BindEnv("countdown_interval", "COUNTDOWN_INTERVAL")
		viper.BindEnv("http_timeout", "HTTP_TIMEOUT")
		viper.BindEnv("profile", "PROFILE")
		viper.BindEnv("metrics_port", "METRICS_PORT")
		viper.BindEnv("db_path", "DB_PATH")
		viper.BindEnv("debug", "DEBUG")
		viper.BindEnv("lang", "LANG")
		viper.BindEnv("sentry_dsn", "SENTRY_DSN")
		viper.BindEnv("source_url", "SOURCE_URL")

		viper.SetDefault("stock_api_url", "https://fruitsstockapi.onrender.com/fruitstock")
		viper.SetDefault("poll_interval", 10*time.Second)
		viper.SetDefault("countdown_interval", time.Minute)
		viper.SetDefault("http_timeout", 30*time.Second)
		viper.SetDefault("profile", "blox")
		viper.SetDefault("metrics_port", 9090)
		viper.SetDefault("db_path", "/app/data/bot.db")
		viper.SetDefault("debug", false)
		viper.SetDefault("lang", "en")
	})
}

func GetString(key string) string {
	InitConfig()
	return viper.GetString(key)
}

func GetInt(key string) int {
	InitConfig()
	return viper.GetInt(key)
}

func GetInt64(key string) int64 {
	InitConfig()
	return viper.GetInt64(key)
}

func GetBool(key string) bool {
	InitConfig()
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	InitConfig()
	return viper.GetDuration(key)
}
