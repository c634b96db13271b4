package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-screener/internal/logger"
	"github.com/spigell/hh-screener/internal/scoring"
)

const (
	app       = "hh-screener"
	envPrefix = "HH_SCREENER"
)

type Config struct {
	JobDescription  string   `mapstructure:"job-description"`
	Resumes         []string `mapstructure:"resumes"`
	Threshold       float64  `mapstructure:"threshold"`
	ExcludeFile     string   `mapstructure:"exclude-file"`
	AllowDuplicates bool     `mapstructure:"allow-duplicates"`
	DisableFilters  []string `mapstructure:"disable-filters"`
	LogFile         string   `mapstructure:"log-file"`
	Extract         *struct {
		Workers int `mapstructure:"workers"`
	} `mapstructure:"extract"`
	Serve *ServeConfig `mapstructure:"serve"`
}

type ServeConfig struct {
	Addr      string `mapstructure:"addr"`
	Token     string `mapstructure:"token" json:"-"`
	TokenFile string `mapstructure:"token-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hh-screener ranks resumes against a job description by keyword similarity",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hh-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this file")
	rootCmd.PersistentFlags().Float64P("threshold", "t", scoring.DefaultThreshold, "minimum match percentage to shortlist a resume")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))

	viper.SetDefault("threshold", scoring.DefaultThreshold)
	viper.SetDefault("extract.workers", 4)
	viper.SetDefault("serve.addr", ":8080")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional, flags cover every setting. An explicit one must parse.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

// newLogger builds the command logger from the persistent logging settings.
func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"), logPaths(viper.GetString("log-file"))...)
}

func logPaths(file string) []string {
	if file == "" {
		return nil
	}
	return []string{"stdout", file}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
