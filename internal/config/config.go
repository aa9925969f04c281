// Package config loads and saves the daemon's YAML configuration.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/example/icled/internal/icled"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2500000
}

type Serial struct {
	Device string `yaml:"device"` // e.g. /dev/ttyACM0
	Baud   int    `yaml:"baud"`
}

type Config struct {
	Driver      string `yaml:"driver"`       // "sim" | "spi" | "screen" | "serial"
	Addr        string `yaml:"addr"`         // HTTP listen address for the control server
	Effect      string `yaml:"effect"`       // startup effect name
	Brightness  uint8  `yaml:"brightness"`   // head brightness, 0..100
	PeriodTicks uint16 `yaml:"period_ticks"` // PWM timer period the duty codes target
	PreviewFPS  int    `yaml:"preview_fps"`  // frame snapshot broadcast rate

	SPI    SPI    `yaml:"spi,omitempty"`
	Serial Serial `yaml:"serial,omitempty"`
}

func Default() *Config {
	return &Config{
		Driver:      "sim",
		Addr:        ":8080",
		Effect:      "sweep",
		Brightness:  40,
		PeriodTicks: icled.DefaultPeriod,
		PreviewFPS:  20,
		SPI:         SPI{Dev: "/dev/spidev0.0", SpeedHz: 2500000},
		Serial:      Serial{Device: "/dev/ttyACM0", Baud: 115200},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return os.WriteFile(path, b, 0644)
}
