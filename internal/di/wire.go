//go:build wireinject
// +build wireinject

package di

import (
	"WigLens/pkg/config"
	"WigLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,
		ProvideHistoricalSource,
		ProvideAnalysisUseCase,
		ProvideAnalysisHandler,
		ProvideApp,
	)
	return nil, nil
}
