package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "formgen"
	configFileType = "yaml"
	envPrefix      = "FORMGEN"

	cfgKeyOptions        = "options"
	cfgKeyOptionsURL     = "options_url"
	cfgKeyOptionsOpenAPI = "options_openapi"
	cfgKeyRedisAddr      = "redis_addr"
	cfgKeyRedisPrefix    = "redis_prefix"
	cfgKeyListen         = "listen"
	cfgKeyOutput         = "output"
	cfgKeyLogLevel       = "log_level"
)

// loadConfig reads formgen.yaml from the working directory, or path when
// given. A missing default config file is not an error; an explicit path
// must exist. Environment variables (FORMGEN_LISTEN, ...) override the file.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyListen, ":8080")
	v.SetDefault(cfgKeyOutput, "json")
	v.SetDefault(cfgKeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return v, nil
}
