package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      Server            `yaml:"server"`
	ProviderRef ProviderReference `yaml:"provider"`
	Fetch       Fetch             `yaml:"fetch"`
	Cache       Cache             `yaml:"cache"`
	Defaults    Defaults          `yaml:"defaults"`
}

func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	d := yaml.NewDecoder(r)
	err := d.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Default returns the configuration used when a section is omitted: a Yahoo
// provider, the stock retry and cache bounds, and the aapl/10/1y/1d dashboard
// defaults.
func Default() *Config {
	return &Config{
		Server: Server{
			Host: "127.0.0.1",
			Port: 8050,
		},
		ProviderRef: ProviderReference{Provider: Yahoo{Timeout: 30}},
		Fetch: Fetch{
			Attempts: 5,
			BaseWait: 4,
			MaxWait:  60,
		},
		Cache: Cache{Size: 128},
		Defaults: Defaults{
			Symbol:   "aapl",
			Horizon:  10,
			Period:   "1y",
			Interval: "1d",
		},
	}
}

type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Fetch bounds the retry policy around history fetches. Waits are in seconds.
type Fetch struct {
	Attempts int `yaml:"attempts"`
	BaseWait int `yaml:"base_wait"`
	MaxWait  int `yaml:"max_wait"`
}

type Cache struct {
	Size int `yaml:"size"`
}

type Defaults struct {
	Symbol   string `yaml:"symbol"`
	Horizon  int    `yaml:"horizon"`
	Period   string `yaml:"period"`
	Interval string `yaml:"interval"`
}

// provider configs

type Yahoo struct {
	Proxy   string `yaml:"proxy"`
	Timeout int    `yaml:"timeout"` // seconds
}

type Alpaca struct {
	BaseUrl string `yaml:"base_url"`
	ApiKey  string `yaml:"api_key"`
	Secret  string `yaml:"secret"`
	Feed    string `yaml:"feed"`
}

type Replay struct {
	Data map[string]string `yaml:"data"`
}

type Provider interface{}

type ProviderReference struct {
	Provider Provider
}

func (w *ProviderReference) UnmarshalYAML(value *yaml.Node) error {
	if len(value.Content) == 0 {
		return nil
	}

	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return errors.New("invalid provider yaml format")
	}

	key := value.Content[0].Value
	switch key {
	case "yahoo":
		var yh Yahoo
		if err := value.Content[1].Decode(&yh); err != nil {
			return fmt.Errorf("failed parsing yahoo provider config: %w", err)
		}
		if yh.Timeout == 0 {
			yh.Timeout = 30
		}
		w.Provider = yh
	case "alpaca":
		var alpaca Alpaca
		if err := value.Content[1].Decode(&alpaca); err != nil {
			return fmt.Errorf("failed parsing alpaca provider config: %w", err)
		}
		w.Provider = alpaca
	case "replay":
		var replay Replay
		if err := value.Content[1].Decode(&replay); err != nil {
			return fmt.Errorf("failed parsing replay provider config: %w", err)
		}
		w.Provider = replay
	default:
		return fmt.Errorf("unknown provider type: %s", key)
	}

	return nil
}
