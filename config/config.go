package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const dataDir = ".legalqa"

// Config holds all configuration for the legal QA engine.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Search  SearchConfig  `yaml:"search"`
	Answer  AnswerConfig  `yaml:"answer"`
	Chat    ChatConfig    `yaml:"chat"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig says where the corpus asset comes from. Path wins over URL;
// with neither set the asset is located under the working directory.
type CorpusConfig struct {
	URL            string   `yaml:"url"`
	Path           string   `yaml:"path"`
	Includes       []string `yaml:"includes"`
	Excludes       []string `yaml:"excludes"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

// SearchConfig holds ranking and cache configuration.
type SearchConfig struct {
	K1              float64 `yaml:"k1"`
	B               float64 `yaml:"b"`
	MinScore        float64 `yaml:"min_score"`
	MaxResults      int     `yaml:"max_results"`
	CacheSize       int     `yaml:"cache_size"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

type AnswerConfig struct {
	Format string `yaml:"format"` // "markdown" or "html"
}

type ChatConfig struct {
	HistoryKey  string `yaml:"history_key"`
	TitleLength int    `yaml:"title_length"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			URL:            "",
			Includes:       []string{"**/web_deployment_*.json", "**/*corpus*.json"},
			Excludes:       []string{"**/node_modules/**", "**/.git/**", "**/_examples/**"},
			TimeoutSeconds: 30,
		},
		Search: SearchConfig{
			K1:              1.2,
			B:               0.75,
			MinScore:        0.01,
			MaxResults:      8,
			CacheSize:       100,
			CacheTTLSeconds: 300,
		},
		Answer: AnswerConfig{
			Format: "markdown",
		},
		Chat: ChatConfig{
			HistoryKey:  "legalChatHistory",
			TitleLength: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for legalqa.yaml,
// then .legalqa/config.yaml). A .env file in dir is loaded first; variables
// already set in the environment take precedence.
func LoadFromDir(dir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	path := filepath.Join(dir, "legalqa.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, dataDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LEGALQA_CORPUS_URL"); v != "" {
		c.Corpus.URL = v
	}
	if v := os.Getenv("LEGALQA_CORPUS_PATH"); v != "" {
		c.Corpus.Path = v
	}
	if v := os.Getenv("LEGALQA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LEGALQA_MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &EnvError{Key: "LEGALQA_MAX_RESULTS", Err: err}
		}
		c.Search.MaxResults = n
	}
	return nil
}

// EnvError reports an environment override that could not be parsed.
type EnvError struct {
	Key string
	Err error
}

func (e *EnvError) Error() string {
	return "invalid " + e.Key + ": " + e.Err.Error()
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StorePath returns the transcript database path, honoring Store.Path.
func (c *Config) StorePath(dir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(dir, dataDir, "transcripts.db")
}

// EnsureDataDir ensures the .legalqa directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, dataDir), 0755)
}
