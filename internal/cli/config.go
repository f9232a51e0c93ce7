package cli

import (
	"fmt"
	"strings"

	"github.com/ralt/pacdb/internal/models"
	"github.com/ralt/pacdb/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. PACDB_DB_DIR
const envPrefix = "PACDB"

// loadConfig resolves flags, PACDB_* environment variables and the
// optional config file, in that order of precedence.
func loadConfig(cmd *cobra.Command) (*models.Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		logrus.Debugf("Loaded config from %s", cfgFile)
	}

	config := &models.Config{
		DBPath:  v.GetString("db"),
		DBDir:   v.GetString("db-dir"),
		Format:  v.GetString("format"),
		Keys:    v.GetStringSlice("key"),
		Verbose: v.GetBool("verbose"),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	logrus.Debugf("Configuration: %+v", *config)
	return config, nil
}

func validateConfig(config *models.Config) error {
	if config.DBPath == "" && config.DBDir == "" {
		return fmt.Errorf("either --db or --db-dir is required")
	}

	if config.Format == "" {
		config.Format = report.FormatText
	}

	return report.ValidateFormat(config.Format)
}
