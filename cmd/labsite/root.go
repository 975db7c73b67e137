// Root command for the labsite CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/internal/paths"
	"github.com/nepalailab/labsite/pkg/labsite"
)

// Environment variable overriding the API base URL.
const envAPIURL = "LABSITE_API_URL"

// Global flag values.
var (
	flagConfigDir  string
	flagSessionDir string
	flagAPIURL     string
	flagStore      string
	flagJSON       bool
	flagVerbose    bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configSessionDir string
	configAPIURL     string
	configStore      string
	configRedisAddr  string
)

var rootCmd = &cobra.Command{
	Use:     "labsite",
	Short:   "Labsite is a client for the NepalAI Lab site backend",
	Long:    "Labsite fetches the site's content sections, submits its forms,\nand talks to its chat assistant from the command line.",
	Version: labsite.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configSessionDir = cfg.GetString(cfgKeySessionDir)
		configAPIURL = cfg.GetString(cfgKeyAPIURL)
		configStore = cfg.GetString(cfgKeyStore)
		configRedisAddr = cfg.GetString(cfgKeyRedisAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagSessionDir, "session-dir", "", "session state directory")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (default: "+httpapi.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "session store backend: sqlite, bolt, redis, memory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable diagnostic logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(carouselCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(testimonialsCmd)
	rootCmd.AddCommand(techCmd)
	rootCmd.AddCommand(partnersCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(blogCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(subscribeCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(chatCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > LABSITE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveSessionDir returns the session directory following the precedence
// flag > config.yaml session_dir > LABSITE_SESSION_DIR env > platform default.
func resolveSessionDir() (string, error) {
	return paths.ResolveSessionDir(flagSessionDir, configSessionDir)
}

// resolveAPIURL returns the API base URL following the precedence
// flag > LABSITE_API_URL env > config.yaml api_url > literal default.
func resolveAPIURL() string {
	if flagAPIURL != "" {
		return flagAPIURL
	}
	if env := os.Getenv(envAPIURL); env != "" {
		return env
	}
	if configAPIURL != "" {
		return configAPIURL
	}
	return httpapi.DefaultBaseURL
}

// newLogger builds the CLI logger: silent unless --verbose is set.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
