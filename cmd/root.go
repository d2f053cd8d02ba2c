package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/logger"
)

const (
	app = "jobfit"

	outputJSON = "json"
	outputText = "text"

	defaultConcurrency  = 4
	defaultBatchPattern = "*.json"
)

type Config struct {
	Output   string          `mapstructure:"output"`
	Batch    *BatchConfig    `mapstructure:"batch"`
	Evaluate *EvaluateConfig `mapstructure:"evaluate"`
}

type BatchConfig struct {
	Concurrency int    `mapstructure:"concurrency"`
	Pattern     string `mapstructure:"pattern"`
	FailFast    bool   `mapstructure:"fail-fast"`
}

type EvaluateConfig struct {
	Interactive bool `mapstructure:"interactive"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobfit scores how well a candidate profile fits a job posting",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobfit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("output", outputJSON)
	viper.SetDefault("batch.concurrency", defaultConcurrency)
	viper.SetDefault("batch.pattern", defaultBatchPattern)
}

func initConfig() {
	viper.SetEnvPrefix("JOBFIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Batch == nil {
		config.Batch = &BatchConfig{}
	}
	if config.Batch.Concurrency <= 0 {
		config.Batch.Concurrency = defaultConcurrency
	}
	if strings.TrimSpace(config.Batch.Pattern) == "" {
		config.Batch.Pattern = defaultBatchPattern
	}
	if config.Evaluate == nil {
		config.Evaluate = &EvaluateConfig{}
	}

	return config, nil
}

// newLogger builds the command logger tagged with a fresh run id.
func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return logger.WithRunID(l, uuid.New().String())
}
