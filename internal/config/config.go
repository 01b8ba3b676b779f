package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ARTIFACT_MARK_"

type Config struct {
	ProfilesPath string
	CatalogPath  string
	InputPath    string
	EnkaPath     string
	Chars        []string
	XLSXPath     string
	Workers      int
	LogLevel     string
	LogFormat    string
}

type stringOpt struct {
	v   string
	set bool
}

func (o *stringOpt) String() string { return o.v }
func (o *stringOpt) Set(v string) error {
	o.v = v
	o.set = true
	return nil
}

type intOpt struct {
	v   int
	set bool
}

func (o *intOpt) String() string { return strconv.Itoa(o.v) }
func (o *intOpt) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	o.v = n
	o.set = true
	return nil
}

type FileConfig struct {
	Profiles  string   `yaml:"profiles"`
	Catalog   string   `yaml:"catalog"`
	Input     string   `yaml:"input"`
	Enka      string   `yaml:"enka"`
	Chars     []string `yaml:"chars"`
	XLSX      string   `yaml:"xlsx"`
	Workers   *int     `yaml:"workers"`
	LogLevel  string   `yaml:"logLevel"`
	LogFormat string   `yaml:"logFormat"`
}

// Load merges, in increasing priority: defaults, the yaml config file,
// ARTIFACT_MARK_* environment variables (a .env file in appRoot is read first)
// and command line flags.
func Load(appRoot string, args []string) (Config, error) {
	fs := flag.NewFlagSet("artifact_mark", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath stringOpt
	var useExamples bool

	var profilesOpt, catalogOpt, inputOpt, enkaOpt, charOpt, xlsxOpt stringOpt
	var logLevelOpt, logFormatOpt stringOpt
	var workersOpt intOpt

	fs.Var(&configPath, "config", "path to config yaml (default: input/artifact_mark/config.yaml)")
	fs.BoolVar(&useExamples, "useExamples", false, "use example config from input/artifact_mark/examples/")
	fs.Var(&profilesOpt, "profiles", "character weight profiles yaml")
	fs.Var(&catalogOpt, "catalog", "attribute catalog yaml (default: built-in)")
	fs.Var(&inputOpt, "input", "artifact records json")
	fs.Var(&enkaOpt, "enka", "saved Enka.Network uid response json")
	fs.Var(&charOpt, "char", "comma-separated characters to score (default: all)")
	fs.Var(&xlsxOpt, "xlsx", "write the report to this .xlsx file")
	fs.Var(&workersOpt, "workers", "characters scored in parallel")
	fs.Var(&logLevelOpt, "log-level", "debug, info, warn or error")
	fs.Var(&logFormatOpt, "log-format", "text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Workers:   4,
		LogLevel:  "info",
		LogFormat: "text",
	}

	path := strings.TrimSpace(configPath.v)
	if path == "" {
		path = filepath.Join("input", "artifact_mark", "config.yaml")
	}
	if useExamples {
		path = filepath.Join("input", "artifact_mark", "examples", "config.example.yaml")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(appRoot, path)
	}

	fc, err := loadFileConfig(path)
	if err != nil {
		return Config{}, err
	}
	applyFile(&cfg, fc, appRoot)

	if err := loadDotEnv(appRoot); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if profilesOpt.set {
		cfg.ProfilesPath = strings.TrimSpace(profilesOpt.v)
	}
	if catalogOpt.set {
		cfg.CatalogPath = strings.TrimSpace(catalogOpt.v)
	}
	if inputOpt.set {
		cfg.InputPath = strings.TrimSpace(inputOpt.v)
	}
	if enkaOpt.set {
		cfg.EnkaPath = strings.TrimSpace(enkaOpt.v)
	}
	selectSource(&cfg, inputOpt.set, enkaOpt.set)
	if charOpt.set {
		cfg.Chars = splitList(charOpt.v)
	}
	if xlsxOpt.set {
		cfg.XLSXPath = strings.TrimSpace(xlsxOpt.v)
	}
	if workersOpt.set {
		cfg.Workers = workersOpt.v
	}
	if logLevelOpt.set {
		cfg.LogLevel = strings.TrimSpace(logLevelOpt.v)
	}
	if logFormatOpt.set {
		cfg.LogFormat = strings.TrimSpace(logFormatOpt.v)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ProfilesPath == "" {
		return errors.New("missing profiles (provide -profiles or set profiles in input/artifact_mark/config.yaml)")
	}
	if (c.InputPath == "") == (c.EnkaPath == "") {
		return errors.New("provide exactly one of -input (records json) or -enka (enka snapshot)")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.XLSXPath != "" && !strings.EqualFold(filepath.Ext(c.XLSXPath), ".xlsx") {
		return fmt.Errorf("xlsx output %q must end in .xlsx", c.XLSXPath)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.LogFormat)
	}
	return nil
}

func applyFile(cfg *Config, fc FileConfig, appRoot string) {
	cfg.ProfilesPath = resolve(appRoot, fc.Profiles)
	cfg.CatalogPath = resolve(appRoot, fc.Catalog)
	cfg.InputPath = resolve(appRoot, fc.Input)
	cfg.EnkaPath = resolve(appRoot, fc.Enka)
	cfg.XLSXPath = resolve(appRoot, fc.XLSX)
	for _, c := range fc.Chars {
		if c = strings.TrimSpace(c); c != "" {
			cfg.Chars = append(cfg.Chars, c)
		}
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if s := strings.TrimSpace(fc.LogLevel); s != "" {
		cfg.LogLevel = s
	}
	if s := strings.TrimSpace(fc.LogFormat); s != "" {
		cfg.LogFormat = s
	}
}

// resolve makes config file paths relative to the app root.
func resolve(appRoot, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(appRoot, p)
}

func loadDotEnv(appRoot string) error {
	path := filepath.Join(appRoot, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	// Variables already set in the environment win over .env.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("PROFILES", &cfg.ProfilesPath)
	str("CATALOG", &cfg.CatalogPath)
	str("INPUT", &cfg.InputPath)
	str("ENKA", &cfg.EnkaPath)
	_, inputSet := os.LookupEnv(envPrefix + "INPUT")
	_, enkaSet := os.LookupEnv(envPrefix + "ENKA")
	selectSource(cfg, inputSet, enkaSet)
	str("XLSX", &cfg.XLSXPath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	if v, ok := os.LookupEnv(envPrefix + "CHARS"); ok {
		cfg.Chars = splitList(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sWORKERS: %w", envPrefix, err)
		}
		cfg.Workers = n
	}
	return nil
}

// selectSource drops the other data source when a layer names exactly one.
func selectSource(cfg *Config, inputSet, enkaSet bool) {
	switch {
	case inputSet && !enkaSet:
		cfg.EnkaPath = ""
	case enkaSet && !inputSet:
		cfg.InputPath = ""
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadFileConfig(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("read config yaml %s: %w", path, err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return fc, nil
}
