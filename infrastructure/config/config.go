// Package config loads the suite configuration from an optional .env file,
// an optional YAML file and environment variables, in that order. The
// resulting Config is passed explicitly to every component that needs it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultBaseURL = "https://seleniumbase.io/demo_page"

// SupportedDrivers lists the browser-automation backends.
var SupportedDrivers = []string{"playwright", "selenium", "rod", "chromedp"}

// Viewport is the browser window size.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds all suite configuration.
type Config struct {
	// Target
	BaseURL string `yaml:"base_url"`

	// Browser
	Driver       string   `yaml:"driver"`
	Headless     bool     `yaml:"headless"`
	Viewport     Viewport `yaml:"viewport"`
	SeleniumURL  string   `yaml:"selenium_url"`  // remote WebDriver endpoint; empty starts chromedriver
	DriverPath   string   `yaml:"driver_path"`   // chromedriver binary
	ChromeBinary string   `yaml:"chrome_binary"` // Chrome/Chromium binary
	RemoteURL    string   `yaml:"remote_url"`    // DevTools websocket of a running Chrome (rod, chromedp)

	// Runner
	StepTimeout         time.Duration `yaml:"step_timeout"`
	NavigationTimeout   time.Duration `yaml:"navigation_timeout"`
	FallbackTimeout     time.Duration `yaml:"fallback_timeout"`
	MaxRepeat           int           `yaml:"max_repeat"`
	Parallel            int           `yaml:"parallel"`
	ScreenshotOnFailure bool          `yaml:"screenshot_on_failure"`
	ScenarioFiles       []string      `yaml:"scenario_files"`

	// Output
	ResultsDir  string `yaml:"results_dir"`
	MetricsFile string `yaml:"metrics_file"`
	LogLevel    string `yaml:"log_level"`
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		BaseURL:             DefaultBaseURL,
		Driver:              "playwright",
		Headless:            true,
		Viewport:            Viewport{Width: 1280, Height: 720},
		StepTimeout:         10 * time.Second,
		NavigationTimeout:   30 * time.Second,
		FallbackTimeout:     time.Second,
		MaxRepeat:           50,
		Parallel:            1,
		ScreenshotOnFailure: true,
		ResultsDir:          defaultResultsDir(),
		LogLevel:            "info",
	}
}

func defaultResultsDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".ui_automation")
}

// Load builds the configuration. path may be empty; a missing .env file is
// not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Defaults()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.BaseURL = envString("UI_BASE_URL", c.BaseURL)
	c.Driver = envString("UI_DRIVER", c.Driver)
	c.Headless = envBool("UI_HEADLESS", c.Headless)
	c.StepTimeout = envDuration("UI_STEP_TIMEOUT", c.StepTimeout)
	c.NavigationTimeout = envDuration("UI_NAVIGATION_TIMEOUT", c.NavigationTimeout)
	c.FallbackTimeout = envDuration("UI_FALLBACK_TIMEOUT", c.FallbackTimeout)
	c.Parallel = envInt("UI_PARALLEL", c.Parallel)
	c.ResultsDir = envString("UI_RESULTS_DIR", c.ResultsDir)
	c.MetricsFile = envString("UI_METRICS_FILE", c.MetricsFile)
	c.LogLevel = envString("UI_LOG_LEVEL", c.LogLevel)
	c.SeleniumURL = envString("SELENIUM_URL", c.SeleniumURL)
	c.DriverPath = envString("BROWSER_DRIVER_PATH", c.DriverPath)
	c.ChromeBinary = envString("CHROME_BINARY_PATH", c.ChromeBinary)
	c.RemoteURL = envString("CHROME_REMOTE_URL", c.RemoteURL)
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file") || (u.Scheme != "file" && u.Host == "") {
		problems = append(problems, fmt.Sprintf("UI_BASE_URL must be an absolute http(s) or file URL, got %q", c.BaseURL))
	}
	if !isSupportedDriver(c.Driver) {
		problems = append(problems, fmt.Sprintf("UI_DRIVER must be one of %s, got %q", strings.Join(SupportedDrivers, ", "), c.Driver))
	}
	if c.StepTimeout <= 0 {
		problems = append(problems, "UI_STEP_TIMEOUT must be positive")
	}
	if c.NavigationTimeout <= 0 {
		problems = append(problems, "UI_NAVIGATION_TIMEOUT must be positive")
	}
	if c.FallbackTimeout <= 0 {
		problems = append(problems, "UI_FALLBACK_TIMEOUT must be positive")
	}
	if c.MaxRepeat < 1 {
		problems = append(problems, "max_repeat must be at least 1")
	}
	if c.Parallel < 1 {
		problems = append(problems, "UI_PARALLEL must be at least 1")
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		problems = append(problems, "viewport width and height must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("UI_LOG_LEVEL: %v", err))
	}
	if c.ResultsDir == "" {
		problems = append(problems, "UI_RESULTS_DIR must not be empty")
	}

	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func isSupportedDriver(name string) bool {
	for _, d := range SupportedDrivers {
		if d == name {
			return true
		}
	}
	return false
}

func envString(key, current string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return current
}

func envBool(key string, current bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return current
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return current
	}
	return b
}

func envInt(key string, current int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return current
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return current
	}
	return n
}

func envDuration(key string, current time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return current
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return current
	}
	return d
}
