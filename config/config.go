package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Modos de entrega
const (
	DeliveryDirect = "direct"
	DeliveryServer = "server"
)

// Config representa a configuração global do sistema
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Users    []UserConfig   `mapstructure:"users"`
	Message  MessageConfig  `mapstructure:"message"`
}

// LogConfig representa a configuração de log
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn ou error
	Color bool   `mapstructure:"color"`
}

// DeliveryConfig define como as mensagens são enviadas
type DeliveryConfig struct {
	Mode string `mapstructure:"mode"` // "direct" ou "server"
}

// UserConfig representa um usuário a ser registrado
type UserConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	// Unlisted cria o usuário sem registrá-lo no servidor
	Unlisted bool `mapstructure:"unlisted"`
}

// MessageConfig representa a mensagem de demonstração
type MessageConfig struct {
	From    string `mapstructure:"from"`
	To      string `mapstructure:"to"`
	Subject string `mapstructure:"subject"`
	Body    string `mapstructure:"body"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

var cfg *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.color", true)
	v.SetDefault("delivery.mode", DeliveryDirect)
	v.SetDefault("users", []map[string]interface{}{
		{"name": "Federico", "address": "federodriguez@mail.com"},
		{"name": "Francisco", "address": "franflores@mail.com"},
	})
	v.SetDefault("message.from", "federodriguez@mail.com")
	v.SetDefault("message.to", "franflores@mail.com")
	v.SetDefault("message.subject", "¡Hola Fran!")
	v.SetDefault("message.body", "¿Todo bien?")
}

// LoadConfig carrega a configuração. Sem caminho, usa apenas os valores
// padrão e as variáveis de ambiente CORREO_*.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("correo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("erro ao processar configuração: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg = c
	return cfg, nil
}

// Validate verifica os valores que não podem ser usados como estão
func (c *Config) Validate() error {
	switch c.Delivery.Mode {
	case DeliveryDirect, DeliveryServer:
	default:
		return fmt.Errorf("modo de entrega não suportado: %q", c.Delivery.Mode)
	}

	if _, err := c.Log.Levels(); err != nil {
		return err
	}

	for i, u := range c.Users {
		if u.Address == "" {
			return fmt.Errorf("usuário %d sem endereço", i)
		}
	}

	return nil
}

// Levels retorna os níveis de log habilitados a partir do nível configurado
func (l LogConfig) Levels() ([]string, error) {
	level := strings.ToLower(l.Level)
	for i, name := range logLevels {
		if name == level {
			return logLevels[i:], nil
		}
	}
	return nil, fmt.Errorf("nível de log não suportado: %q", l.Level)
}

// GetConfig retorna a configuração atual
func GetConfig() *Config {
	return cfg
}
