// Package di wires the application's dependencies together.
package di

import (
	"log"
	"os"

	"github.com/Daechler/LinuxBinaryInstaller/internal/application/services"
	"github.com/Daechler/LinuxBinaryInstaller/internal/infrastructure/config"
	"github.com/Daechler/LinuxBinaryInstaller/internal/infrastructure/install"
)

// Container holds all dependencies the CLI commands need.
type Container struct {
	Config  config.Config
	Writer  *install.Writer
	Service *services.InstallService
	Logger  *log.Logger
}

// NewContainer creates and configures the dependency container.
func NewContainer() *Container {
	logger := log.New(os.Stderr, "[lbi] ", log.LstdFlags)
	cfg := config.Load()
	writer := install.NewWriter()

	return &Container{
		Config:  cfg,
		Writer:  writer,
		Service: services.NewInstallService(cfg, writer, logger),
		Logger:  logger,
	}
}
