package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "leadscout"
)

type Config struct {
	Search  *SearchConfig  `mapstructure:"search"`
	HubSpot *HubSpotConfig `mapstructure:"hubspot"`
	AI      *AIConfig      `mapstructure:"ai"`
	Server  *ServerConfig  `mapstructure:"server"`
}

type SearchConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	NumResults   int    `mapstructure:"num-results"`
	StrictTitles bool   `mapstructure:"strict-titles"`
}

type HubSpotConfig struct {
	TokenFile string `mapstructure:"token-file"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "leadscout finds LinkedIn profile candidates for a free-text query and syncs picks into HubSpot",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("search.api-key-file", "EXA_API_KEY_FILE"); err != nil {
		log.Fatalf("binding EXA_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("hubspot.token-file", "HUBSPOT_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HUBSPOT_TOKEN_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is leadscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the run and serve commands. If there is no
	// config, we can skip initialization.
	if runCmd.CalledAs() == "" && serveCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
