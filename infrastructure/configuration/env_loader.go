package configuration

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadEnvFromFile exports the KEY=VALUE pairs of the given env files
// (config.env, .env) into the process environment so the override helpers in
// LoadConfig see them. Variables already present in the environment win, and
// missing or unreadable files are skipped.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		v := viper.New()
		v.SetConfigFile(p)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			continue
		}
		for _, key := range v.AllKeys() {
			name := strings.ToUpper(key)
			if _, exists := os.LookupEnv(name); exists {
				continue
			}
			_ = os.Setenv(name, v.GetString(key))
		}
	}
}
