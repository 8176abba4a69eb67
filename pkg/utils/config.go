package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Booking  BookingConfig
	Operator OperatorConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// BookingConfig describes the service day: opening and closing hour plus the
// fixed slot length in whole hours. MaxSlots bounds how many consecutive
// slots a single booking may span.
type BookingConfig struct {
	OpenHour  int
	CloseHour int
	SlotHours int
	MaxSlots  int
}

type OperatorConfig struct {
	APIKey string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("BOOKING_OPEN_HOUR", 6)
	viper.SetDefault("BOOKING_CLOSE_HOUR", 23)
	viper.SetDefault("BOOKING_SLOT_HOURS", 1)
	viper.SetDefault("BOOKING_MAX_SLOTS", 3)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			OpenHour:  viper.GetInt("BOOKING_OPEN_HOUR"),
			CloseHour: viper.GetInt("BOOKING_CLOSE_HOUR"),
			SlotHours: viper.GetInt("BOOKING_SLOT_HOURS"),
			MaxSlots:  viper.GetInt("BOOKING_MAX_SLOTS"),
		},
		Operator: OperatorConfig{
			APIKey: viper.GetString("OPERATOR_API_KEY"),
		},
	}

	return config, nil
}
