package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "./config.yml"
	DefaultEnvFile    = "./config.env"
	EnvPrefix         = "BKSH"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit               string        `yaml:"git_commit" envconfig:"BKSH_GIT_COMMIT" json:"git_commit"`
	GitTag                  string        `yaml:"git_tag" envconfig:"BKSH_GIT_TAG" json:"git_tag"`
	BuildTime               string        `yaml:"build_time" envconfig:"BKSH_BUILD_TIME" json:"build_time"`
	IsProduction            bool          `yaml:"is_production" envconfig:"BKSH_IS_PRODUCTION" json:"is_production"`
	LogLevel                zapcore.Level `yaml:"log_level" envconfig:"BKSH_LOG_LEVEL" json:"log_level"`
	LogFolder               string        `yaml:"log_folder" envconfig:"BKSH_LOG_FOLDER" json:"log_folder"`
	LogMaxSize              int           `yaml:"log_max_size" envconfig:"BKSH_LOG_MAX_SIZE" json:"log_max_size"`
	OpsEndpointsEnable      bool          `yaml:"ops_endpoints_enable" envconfig:"BKSH_OPS_ENDPOINTS_ENABLE" json:"ops_endpoints_enable"`
	ProfilerEndpointsEnable bool          `yaml:"profiler_endpoints_enable" envconfig:"BKSH_PROFILER_ENDPOINTS_ENABLE" json:"profiler_endpoints_enable"`
	DocsEnable              bool          `yaml:"docs_enable" envconfig:"BKSH_DOCS_ENABLE" json:"docs_enable"`
	Server                  ServerConfig  `yaml:"server" json:"server"`
	Assets                  AssetsConfig  `yaml:"assets" json:"assets"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"BKSH_SERVER_HOST" json:"host"`
	Port            string        `yaml:"port" envconfig:"BKSH_SERVER_PORT" json:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"BKSH_SERVER_READ_TIMEOUT" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"BKSH_SERVER_WRITE_TIMEOUT" json:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"BKSH_SERVER_REQUEST_TIMEOUT" json:"request_timeout"` // Time to wait for a request to finish
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"BKSH_SERVER_SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

// AssetsConfig points to the prebuilt frontend output.
type AssetsConfig struct {
	Root string `yaml:"root" envconfig:"BKSH_ASSETS_ROOT" json:"root"`
}

// DefaultConfig provides the settings used when nothing else is provided.
// The server binds all interfaces on port 8000 and serves the frontend
// build output located next to the backend folder.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   zapcore.InfoLevel,
		LogFolder:  "./logs",
		LogMaxSize: 10,
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			RequestTimeout:  45 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Assets: AssetsConfig{
			Root: "../frontend/dist/",
		},
	}
}

// LoadConfigFile overrides the given config with values found in the yaml file.
// A missing file is not an error, the config is left untouched.
func LoadConfigFile(configFile string, config *Config) error {
	file, err := os.Open(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadEnvFile sets the environment variables defined into the env file.
// Like the yaml file, this one is optional.
func LoadEnvFile(envFile string) error {
	err := godotenv.Load(envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfigEnvs reads the environments variables and overrides the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig configures build tags values to be used if provided
// and ensures mandatory parameters are still set.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(config.Server.Host) == 0 || len(config.Server.Port) == 0 {
		return errors.New("make sure to set valid server address and port in configuration")
	}

	if len(config.Assets.Root) == 0 {
		return errors.New("make sure to set the assets root folder in configuration")
	}

	if config.LogMaxSize <= 0 {
		return errors.New("make sure to set a positive log max size in configuration")
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(configFile, envFile, gitCommit, gitTag, buildTime string) (*Config, error) {
	config := DefaultConfig()

	// Setup the yaml configuration from file.
	err := LoadConfigFile(configFile, config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %w", err)
	}

	// Set the environment configuration.
	err = LoadEnvFile(envFile)
	if err != nil {
		return config, fmt.Errorf("failed to set environment configurations: %w", err)
	}

	// Use environment variables with prefix `BKSH`.
	err = LoadConfigEnvs(EnvPrefix, config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %w", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %w", err)
	}
	return config, nil
}
