package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
}

type Server struct {
	Sacct   Sacct   `yaml:"sacct"`
	Slurmdb Slurmdb `yaml:"slurmdb"`
}

// Sacct configures the accounting-query command client.
type Sacct struct {
	// Bin is the sacct executable; empty means "sacct" from PATH.
	Bin string `yaml:"bin"`
	// RecentHours is the default lookback window when the request does
	// not carry one. 0 still queries one hour.
	RecentHours uint32 `yaml:"recentHours"`
}

// Slurmdb configures the optional direct slurmdbd database source.
// Leaving host empty disables it.
type Slurmdb struct {
	ClusterName     string `yaml:"ClusterName"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	Charset         string `yaml:"charset"`
	ParseTime       bool   `yaml:"parseTime"`
	Loc             string `yaml:"loc"`
	TLS             string `yaml:"tls"`
	MaxOpenConns    int    `yaml:"maxOpenConns"`
	MaxIdleConns    int    `yaml:"maxIdleConns"`
	ConnMaxLifetime string `yaml:"connMaxLifetime"`
}

// Load reads a YAML config file from the given path and unmarshals into Config.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
