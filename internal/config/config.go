package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gubarz/mdjoin/internal/logging"
)

// Config holds the application configuration
type Config struct {
	Output       string `mapstructure:"output"`
	Wrap         int    `mapstructure:"wrap"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	ColorAdded   string `mapstructure:"color_added"`
	ColorRemoved string `mapstructure:"color_removed"`
	ColorHeader  string `mapstructure:"color_header"`
	ColorDim     string `mapstructure:"color_dim"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper. A non-empty file is read instead
// of searching the default locations, and failing to read it is an error.
func Init(file string) error {
	viper.SetDefault("output", "print")
	viper.SetDefault("wrap", 0)             // Columns; 0 leaves joined lines alone
	viper.SetDefault("log_level", "warn")   // debug, info, warn, error
	viper.SetDefault("log_format", "text")  // text or json
	viper.SetDefault("color_added", "32")   // Green
	viper.SetDefault("color_removed", "31") // Red
	viper.SetDefault("color_header", "36")  // Cyan
	viper.SetDefault("color_dim", "241")    // Gray

	viper.SetEnvPrefix("MDJOIN")
	viper.AutomaticEnv()

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		viper.SetConfigName("mdjoin")
		viper.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdjoin"))
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")

		// Try to read config, but don't fail if not found or malformed
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				logging.Warn("ignoring config file", "err", err)
			}
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		return err
	}
	return CheckValidity(viper.GetViper())
}

// CheckValidity reports every invalid setting in v as one error
func CheckValidity(v *viper.Viper) error {
	var errs []error

	switch v.GetString("output") {
	case "print", "copy", "write":
	default:
		errs = append(errs, fmt.Errorf("output must be print, copy or write, got %q", v.GetString("output")))
	}
	if v.GetInt("wrap") < 0 {
		errs = append(errs, errors.New("wrap must not be negative"))
	}
	if _, err := logging.ParseLevel(v.GetString("log_level")); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(v.GetString("log_format")); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetWrap returns the reflow width
func GetWrap() int {
	return viper.GetInt("wrap")
}

// GetLogLevel returns the configured log level name
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetLogFormat returns the configured log format name
func GetLogFormat() string {
	return viper.GetString("log_format")
}

// GetColorAdded returns the ANSI color code for added lines
func GetColorAdded() string {
	return viper.GetString("color_added")
}

// GetColorRemoved returns the ANSI color code for removed lines
func GetColorRemoved() string {
	return viper.GetString("color_removed")
}

// GetColorHeader returns the ANSI color code for headers
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorDim returns the color for unchanged lines and help text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetWrap sets the reflow width at runtime
func SetWrap(width int) {
	viper.Set("wrap", width)
	C.Wrap = width
}

// SetLogLevel sets the log level at runtime
func SetLogLevel(level string) {
	viper.Set("log_level", level)
	C.LogLevel = level
}
