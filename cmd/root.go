package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/skillsift/skillsift/internal/jsearch"
	"github.com/skillsift/skillsift/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "skillsift"
)

type Config struct {
	Search     *jsearch.SearchParams `mapstructure:"search"`
	UserAgent  string                `mapstructure:"user-agent"`
	APIKeyFile string                `mapstructure:"api-key-file"`
	JobRoles   []string              `mapstructure:"job-roles"`
	Locations  []string              `mapstructure:"locations"`
}

// Role and location catalogs served to front ends and offered by the
// interactive prompts. Overridable via the config file.
var (
	defaultJobRoles = []string{
		"Software Developer", "Data Scientist", "Data Analyst", "Product Manager", "Project Manager",
		"UI/UX Designer", "DevOps Engineer", "QA Engineer", "Business Analyst", "Machine Learning Engineer",
		"Full Stack Developer", "Backend Developer", "Frontend Developer",
	}
	defaultLocations = []string{
		"Meerut", "Noida", "Gurugram", "Bengaluru", "Hyderabad", "Pune", "Mumbai",
		"Chennai", "Delhi", "Anywhere in India",
	}
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillsift matches a resume against live job postings by skill overlap",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-key-file", "JSEARCH_API_KEY_FILE"); err != nil {
		log.Fatalf("binding JSEARCH_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillsift.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("job-roles", defaultJobRoles)
	viper.SetDefault("locations", defaultLocations)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// A missing config file is fine: defaults, flags and environment
	// cover everything. A config file parsed with error is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
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

	return config, nil
}

func resolveAPIKey(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	keyFile := strings.TrimSpace(config.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("api-key-file"))
	}

	if keyFile == "" {
		return "", errors.New("jsearch api key file is not configured")
	}

	return secrets.Load(secrets.Source{
		Name: "jsearch api key",
		File: keyFile,
	})
}
