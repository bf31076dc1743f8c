package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SENSOR_BRIDGE_SERIAL_PORT.
const EnvPrefix = "SENSOR_BRIDGE"

type Config struct {
	Port   string       `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	Serial SerialConfig `mapstructure:"serial"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	WS     WSConfig     `mapstructure:"ws"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SerialConfig describes the single telemetry device.
type SerialConfig struct {
	Port     string `mapstructure:"port"`
	BaudRate int    `mapstructure:"baud_rate"`
	DataBits int    `mapstructure:"data_bits"`
	StopBits int    `mapstructure:"stop_bits"`
	Parity   string `mapstructure:"parity"`

	// Simulate replaces the device with generated lines. It is never used as
	// a fallback when the device fails to open.
	Simulate     bool          `mapstructure:"simulate"`
	SimulateTick time.Duration `mapstructure:"simulate_tick"`
}

type HTTPConfig struct {
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type WSConfig struct {
	DefaultInterval time.Duration `mapstructure:"default_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("log.level", "info")

	v.SetDefault("serial.port", "/dev/ttyUSB0")
	v.SetDefault("serial.baud_rate", 115200)
	v.SetDefault("serial.data_bits", 8)
	v.SetDefault("serial.stop_bits", 1)
	v.SetDefault("serial.parity", "N")
	v.SetDefault("serial.simulate", false)
	v.SetDefault("serial.simulate_tick", time.Second)

	v.SetDefault("http.cors_origins", []string{"*"})
	v.SetDefault("ws.default_interval", time.Second)
}

// Load reads configuration from path, or from configs/config.yml (then
// ./config.yml) when path is empty. A missing default file is not an error;
// defaults and environment overrides still apply. An explicit path that
// cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port must not be empty")
	}
	if c.Serial.Simulate && c.Serial.SimulateTick <= 0 {
		return fmt.Errorf("config: serial.simulate_tick must be > 0, got %s", c.Serial.SimulateTick)
	}
	if c.WS.DefaultInterval <= 0 {
		return fmt.Errorf("config: ws.default_interval must be > 0, got %s", c.WS.DefaultInterval)
	}
	return nil
}
