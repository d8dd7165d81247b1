package internal

import (
	"encoding/json"
	"io"
	"os"
)

type Config struct {
	HTTPServerPort  uint16 `json:"http-server-port"`
	ReadTimeout     int64  `json:"read-timeout"`
	WriteTimeout    int64  `json:"write-timeout"`
	DBName          string `json:"db-name"`
	StaticDirectory string `json:"static-directory"`
	EnableLogging   bool   `json:"enable-logging"`
	LogDirectory    string `json:"log-directory"`
	SecretKey       string `json:"secret-key"`
	TokenLifetime   int64  `json:"token-lifetime-seconds"`
}

func LoadConfig(path string) (*Config, error) {

	file, err := os.OpenFile(path, os.O_RDONLY, 0755)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var config *Config = &Config{}
	if err = json.Unmarshal(payload, config); err != nil {
		return nil, err
	}

	return config, nil
}
