package marketdata

import (
	"context"

	"WigLens/internal/domain/models"
	"WigLens/internal/ta"
)

// SimulatedSource synthesizes a history anchored to the quote's current
// price. It is the default source and needs no network access.
type SimulatedSource struct {
	gen *ta.Generator
}

// NewSimulatedSource creates a simulated source. Generator options are
// forwarded, so tests can pin the seed and clock.
func NewSimulatedSource(opts ...ta.GeneratorOption) *SimulatedSource {
	return &SimulatedSource{gen: ta.NewGenerator(opts...)}
}

func (s *SimulatedSource) Name() string { return "simulated" }

func (s *SimulatedSource) History(ctx context.Context, q Quote, days int) (models.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.gen.Generate(q.Price, q.ChangePercent, days)
}
