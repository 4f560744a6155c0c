package configuration

import (
	"fmt"
	"os"
	"strconv"

	"pjeseza-web/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Backend     Backend     `json:"backend"`
	Session     Session     `json:"session"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
	CORS        CORS        `json:"cors"`
}

type App struct {
	Port            int    `json:"port"`
	DefaultLanguage string `json:"defaultLanguage"`
}

// Backend points at the clip processing API this app fronts.
type Backend struct {
	Host           string `json:"host"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type Session struct {
	DBPath     string `json:"dbPath"`
	CookieName string `json:"cookieName"`
}

type RedisClient struct {
	Host                string `json:"host"`
	Port                string `json:"port"`
	Username            string `json:"username"`
	Password            string `json:"password"`
	VideoInfoTTLMinutes int    `json:"videoInfoTTLMinutes"`
}

type Logger struct {
	Format string `json:"format"`
}

type CORS struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initBackend(&C)
	initSession(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8080
	}
	if v := os.Getenv("DEFAULT_LANGUAGE"); v != "" {
		C.App.DefaultLanguage = v
	}
	if C.App.DefaultLanguage == "" {
		C.App.DefaultLanguage = "en"
	}
}

func initBackend(C *Config) {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		C.Backend.Host = v
	}
	if C.Backend.Host == "" {
		C.Backend.Host = "http://localhost:8001"
	}
	if v := os.Getenv("BACKEND_TIMEOUT_SECONDS"); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			C.Backend.TimeoutSeconds = t
		}
	}
	if C.Backend.TimeoutSeconds == 0 {
		C.Backend.TimeoutSeconds = 30
	}
}

func initSession(C *Config) {
	if v := os.Getenv("SESSION_DB_PATH"); v != "" {
		C.Session.DBPath = v
	}
	if C.Session.DBPath == "" {
		C.Session.DBPath = "data/sessions.db"
	}
	if C.Session.CookieName == "" {
		C.Session.CookieName = "pjeseza_session"
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		C.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		C.RedisClient.Port = v
	}
	if C.RedisClient.VideoInfoTTLMinutes == 0 {
		C.RedisClient.VideoInfoTTLMinutes = 15
	}
}
