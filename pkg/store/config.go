package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the CLI needs: where cached documents live,
// where the API is, and who completions are reported as.
type Config interface {
	BasePath() string
	APIBase() string
	DisplayName() string
}

// LoadConfig reads the .helpdeck config file (current directory, home, or an
// override path) and the HELPDECK_ environment, falling back to defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.helpdeck/cache")
	viper.SetDefault("api", "http://20.224.45.128:80")
	viper.SetDefault("name", "")
	viper.SetConfigName(".helpdeck") // .yaml is implicit
	viper.SetEnvPrefix("HELPDECK")
	viper.AutomaticEnv()

	if override := os.Getenv("HELPDECK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path: path,
		API:  viper.GetString("api"),
		Name: viper.GetString("name"),
	}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	API  string `json:"api"`
	Name string `json:"name"`
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) APIBase() string     { return f.API }
func (f *fileConfig) DisplayName() string { return f.Name }
