package app

import (
	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host string
	Port string
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type JWTConfig struct {
	Secret   string
	TTLHours int
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type LoggingConfig struct {
	Level int
}

type Config struct {
	Web     WebConfig
	DB      DBConfig
	JWT     JWTConfig
	Kafka   KafkaConfig
	Logging LoggingConfig
}

func ReadLocalConfig(path string) (Config, error) {
	var k konf.Config

	err := k.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal)))
	if err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	var config Config
	err = k.Unmarshal("", &config)
	if err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}
