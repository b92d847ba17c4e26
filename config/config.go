package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	LLM      LLMConfig      `yaml:"llm"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Upload   UploadConfig   `yaml:"upload"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// AllowedOrigins lists the origins the desktop shell connects from.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// LLMConfig names the Gemini models backing the classifier and the
// entity extractor. Both read GEMINI_API_KEY from the environment.
type LLMConfig struct {
	Provider        string `yaml:"provider"`
	ClassifierModel string `yaml:"classifier_model"`
	ExtractorModel  string `yaml:"extractor_model"`
}

type PipelineConfig struct {
	// DuplicateThreshold is the word-overlap ratio at or above which two
	// messages are clustered as near-duplicates.
	DuplicateThreshold float64 `yaml:"duplicate_threshold"`
	EntityBatchSize    int     `yaml:"entity_batch_size"`
	EntityWorkers      int     `yaml:"entity_workers"`
}

type UploadConfig struct {
	// Timezone used for the upload_time field on batch metadata.
	Timezone string `yaml:"timezone"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == "" {
		c.Server.Port = "5001"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "echo2"
	}
	if c.Pipeline.DuplicateThreshold == 0 {
		c.Pipeline.DuplicateThreshold = 0.8
	}
	if c.Pipeline.EntityBatchSize <= 0 {
		c.Pipeline.EntityBatchSize = 50
	}
	if c.Pipeline.EntityWorkers <= 0 {
		c.Pipeline.EntityWorkers = 4
	}
	if c.Upload.Timezone == "" {
		c.Upload.Timezone = "Asia/Kolkata"
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
