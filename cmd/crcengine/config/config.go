package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GardenTools/CrcEngine/pkg/crc"
)

type Variant struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Width   uint     `yaml:"width"`
	Poly    uint64   `yaml:"poly"`
	Init    uint64   `yaml:"init"`
	RefIn   bool     `yaml:"ref_in"`
	RefOut  bool     `yaml:"ref_out"`
	XorOut  uint64   `yaml:"xor_out"`
	Check   uint64   `yaml:"check"`
}

type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Server struct {
		Addr          string `yaml:"addr"`
		MaxConcurrent int    `yaml:"max_concurrent"`
	} `yaml:"server"`

	Serial struct {
		BaudRate int           `yaml:"baud_rate"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"serial"`

	Variants []Variant `yaml:"variants"`
}

func Default() *Config {
	var config Config
	config.Log.Level = "info"
	config.Server.Addr = ":8080"
	config.Server.MaxConcurrent = 16
	config.Serial.BaudRate = 9600
	config.Serial.Timeout = 500 * time.Millisecond
	return &config
}

// LoadConfig reads filename on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", filename, err)
	}

	return config, nil
}

func (v Variant) Entry() crc.Entry {
	return crc.Entry{
		Params: crc.Params{
			Name:   v.Name,
			Width:  v.Width,
			Poly:   v.Poly,
			Init:   v.Init,
			RefIn:  v.RefIn,
			RefOut: v.RefOut,
			XorOut: v.XorOut,
			Check:  v.Check,
		},
		Aliases: v.Aliases,
	}
}

// Registry returns the built-in catalog extended with the configured
// variants. Every configured variant must reproduce its check value.
func (c *Config) Registry() (*crc.Registry, error) {
	entries := make([]crc.Entry, len(c.Variants))
	for i, v := range c.Variants {
		entries[i] = v.Entry()
		if err := entries[i].Params.Verify(); err != nil {
			return nil, err
		}
	}
	return crc.Catalog().Extend(entries...)
}
