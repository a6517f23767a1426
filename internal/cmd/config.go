package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/atikulmunna/logan/internal/logging"
	"github.com/atikulmunna/logan/internal/model"
	"github.com/atikulmunna/logan/internal/output"
	"github.com/spf13/viper"
)

// settings is the validated configuration for one run.
type settings struct {
	criteria model.FilterCriteria
	format   output.Format
	topN     int
	color    bool
	logLevel slog.Level
}

// initConfig layers config file and LOGAN_* environment values under the flags.
// A missing implicit config file is ignored; an explicit one must load.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".logan")
		v.SetConfigType("yaml")
	}

	v.SetDefault("log-level", "warn")
	v.SetEnvPrefix("LOGAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// loadSettings validates every option before any file is touched.
func loadSettings(v *viper.Viper) (settings, error) {
	var s settings

	if v.IsSet("hours") {
		hours := v.GetFloat64("hours")
		if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
			return s, fmt.Errorf("invalid --hours %q: must be a positive number", v.GetString("hours"))
		}
		s.criteria.SinceHours = hours
	}

	if raw := v.GetString("level"); raw != "" {
		level, ok := model.ParseLevel(raw)
		if !ok {
			return s, fmt.Errorf("invalid --level %q: must be one of INFO, WARN, ERROR, DEBUG", raw)
		}
		s.criteria.Level = level
	}

	format, err := output.ParseFormat(v.GetString("format"))
	if err != nil {
		return s, fmt.Errorf("invalid --format: %w", err)
	}
	s.format = format

	s.topN = v.GetInt("top")
	if s.topN <= 0 {
		return s, fmt.Errorf("invalid --top %q: must be a positive integer", v.GetString("top"))
	}

	s.color = !v.GetBool("no-color")

	s.logLevel = logging.ParseLevel(v.GetString("log-level"))
	if v.GetBool("verbose") {
		s.logLevel = slog.LevelDebug
	}

	return s, nil
}
