package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// CLIConfigName is the config file the pss-admin client reads from $HOME
const CLIConfigName = ".pss-admin"

// InitCLIConfig reads the client config file and PSS_* environment variables
func InitCLIConfig(cfgFile string) {
	viper.SetDefault("base_url", "http://localhost:5000/api")
	viper.SetDefault("project_id", 1)
	viper.SetDefault("page_size", 10)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".pss-admin" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(CLIConfigName)
	}

	viper.SetEnvPrefix("PSS")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults and env still apply.
	_ = viper.ReadInConfig()
}

// SaveCLIToken persists the API location and admin token for later commands
func SaveCLIToken(baseURL, token string) error {
	viper.Set("base_url", baseURL)
	viper.Set("token", token)

	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		home, herr := os.UserHomeDir()
		if herr != nil {
			return herr
		}
		path := filepath.Join(home, CLIConfigName+".yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}
