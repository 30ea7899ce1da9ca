package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"projetos/pkg/constants"
	"projetos/pkg/utils"
)

const EnvPrefix = "PROJETOS"

// ProjetosConfigurations global configurations
type ProjetosConfigurations struct {
	LogLevel               string `json:"logLevel" yaml:"log_level" mapstructure:"log_level"`
	Host                   string `json:"host" yaml:"host" mapstructure:"host"`
	Port                   string `json:"port" yaml:"port" mapstructure:"port"`
	APIPrefix              string `json:"apiPrefix" yaml:"api_prefix" mapstructure:"api_prefix"`
	DatabasePath           string `json:"databasePath" yaml:"database_path" mapstructure:"database_path"`
	RequestTimeoutMs       uint64 `json:"requestTimeoutMs" yaml:"request_timeout_ms" mapstructure:"request_timeout_ms"`
	AccessTokenTTLSeconds  uint64 `json:"accessTokenTTLSeconds" yaml:"access_token_ttl_seconds" mapstructure:"access_token_ttl_seconds"`
	RefreshTokenTTLSeconds uint64 `json:"refreshTokenTTLSeconds" yaml:"refresh_token_ttl_seconds" mapstructure:"refresh_token_ttl_seconds"`
	ClientTimeoutMs        uint64 `json:"clientTimeoutMs" yaml:"client_timeout_ms" mapstructure:"client_timeout_ms"`
}

type ProjetosConfig interface {
	GetConfigurations() *ProjetosConfigurations
}

type projetosConfig struct{}

func NewProjetosConfig() ProjetosConfig {
	return &projetosConfig{}
}

var (
	cachedConfig *ProjetosConfigurations
	once         sync.Once
)

// GetConfigurations returns the configurations read from config.yml (working
// directory first, then next to the binary) overridden by PROJETOS_* variables.
// The result is computed once per process.
func (_ *projetosConfig) GetConfigurations() *ProjetosConfigurations {
	once.Do(func() {
		v := newViper(afero.NewOsFs(), ".", utils.GetBinPath())
		configs, err := getConfigurations(v)
		if err != nil {
			log.Fatalln("failed to read configurations", err)
		}
		cachedConfig = configs
	})
	return cachedConfig
}

func newViper(fs afero.Fs, paths ...string) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(strings.TrimSuffix(constants.ConfigFileName, ".yml"))
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("log_level", "info")
	v.SetDefault("host", "localhost")
	v.SetDefault("port", "8000")
	v.SetDefault("api_prefix", constants.DefaultAPIPrefix)
	v.SetDefault("database_path", constants.SqliteDbFileName)
	v.SetDefault("request_timeout_ms", 5000)
	v.SetDefault("access_token_ttl_seconds", 300)
	v.SetDefault("refresh_token_ttl_seconds", 86400)
	v.SetDefault("client_timeout_ms", 30000)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v
}

func getConfigurations(v *viper.Viper) (*ProjetosConfigurations, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read %s: %w", constants.ConfigFileName, err)
		}
	}

	configs := ProjetosConfigurations{}
	if err := v.Unmarshal(&configs); err != nil {
		return nil, fmt.Errorf("decode configurations: %w", err)
	}

	if configs.APIPrefix != "" && !strings.HasPrefix(configs.APIPrefix, "/") {
		configs.APIPrefix = "/" + configs.APIPrefix
	}
	configs.APIPrefix = strings.TrimSuffix(configs.APIPrefix, "/")

	return &configs, nil
}

func (c *ProjetosConfigurations) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

func (c *ProjetosConfigurations) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSeconds) * time.Second
}

func (c *ProjetosConfigurations) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLSeconds) * time.Second
}

func (c *ProjetosConfigurations) ClientTimeout() time.Duration {
	return time.Duration(c.ClientTimeoutMs) * time.Millisecond
}

// ListenAddress is the address the http server binds to.
func (c *ProjetosConfigurations) ListenAddress() string {
	return fmt.Sprintf(":%v", c.Port)
}
