package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config, uygulama yapılandırmasını temsil eder. Değerler app.env
// dosyasından ve ortam değişkenlerinden okunur; dosya yoksa varsayılanlar
// yeterlidir.
type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"` // file veya redis
	DataFile      string `mapstructure:"DATA_FILE"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPass      string `mapstructure:"SMTP_PASS"`
}

// Load, yapılandırmayı okur. Dosya opsiyoneldir; bulunamazsa ortam
// değişkenleri ve varsayılanlarla devam edilir.
func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("DATA_FILE", "./data.json")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config.Load - %s not loaded, using defaults: %v", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
