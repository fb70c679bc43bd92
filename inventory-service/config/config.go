package config

import (
	"path/filepath"
	"runtime"

	sharedconfig "github.com/ordersaga/choreography/shared/config"
	"github.com/pkg/errors"
)

const (
	ServiceName = "inventory-service"
	DefaultPort = "8092"
)

type Config = sharedconfig.Config

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("unable to get current file")
	}

	return sharedconfig.ReadConfig(ServiceName, DefaultPort, filepath.Dir(filename))
}
