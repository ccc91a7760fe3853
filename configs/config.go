package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App     `mapstructure:"app"`
	API     `mapstructure:"api"`
	Session `mapstructure:"session"`
	Cache   `mapstructure:"cache"`
	Sync    `mapstructure:"sync"`
	History `mapstructure:"history"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
}

// API struct - backend endpoint settings
type API struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds, one implicit transport-level timeout per request
}

// Session struct - local session persistence
type Session struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

// Cache struct - local QA detail cache
type Cache struct {
	Path string `mapstructure:"path"`
	TTL  int    `mapstructure:"ttl"` // seconds before a cached detail goes stale
}

// Sync struct - ingest status polling
type Sync struct {
	Interval int `mapstructure:"interval"` // seconds between polls
}

// History struct - pagination settings
type History struct {
	Limit int `mapstructure:"limit"` // page size requested from the backend
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine for a CLI install; env vars and
		// defaults still apply. Anything else is a broken config.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(err)
		}
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			log.Println("Config file has changed: ", e.Name)
		})
	}
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.env", "production")
	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout", 60)
	viper.SetDefault("session.path", "")
	viper.SetDefault("session.in_memory", false)
	viper.SetDefault("cache.path", "")
	viper.SetDefault("cache.ttl", 300)
	viper.SetDefault("sync.interval", 30)
	viper.SetDefault("history.limit", 20)
}
