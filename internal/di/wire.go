//go:build wireinject
// +build wireinject

package di

import (
	"CreditForge/pkg/config"
	"CreditForge/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Model and supporting services
		ProvideModel,
		ProvideCache,

		// Use cases
		ProvideWorkbench,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
