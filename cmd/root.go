package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devansh-cmd/resume-screener/internal/requirements"
)

const (
	app = "resume-screener"
)

// Config is the application configuration loaded from the config file.
type Config struct {
	// Requirements holds an inline job requirements block.
	Requirements *requirements.JobRequirements `mapstructure:"requirements"`
	// RequirementsFile points to a standalone requirements YAML file. An
	// inline block takes precedence.
	RequirementsFile string `mapstructure:"requirements-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-screener is a simple cli for screening resumes against job requirements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: without it the screener falls back to
	// the documented default requirements.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
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

// resolveRequirements picks the job requirements for a run: the explicit
// flag wins, then an inline config block, then a file referenced by the
// config, then the documented defaults.
func resolveRequirements(config *Config, flagPath string) (requirements.JobRequirements, error) {
	if flagPath != "" {
		return requirements.FromFile(flagPath)
	}

	if config != nil && config.Requirements != nil {
		reqs := *config.Requirements
		if err := reqs.Validate(); err != nil {
			return requirements.JobRequirements{}, err
		}
		return reqs, nil
	}

	if config != nil && config.RequirementsFile != "" {
		return requirements.FromFile(config.RequirementsFile)
	}

	return requirements.Default(), nil
}
