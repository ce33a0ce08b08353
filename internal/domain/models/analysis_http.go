package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	Symbol string  `query:"symbol" json:"symbol" validate:"required"`
	Price  float64 `query:"price" json:"price" validate:"required,gt=0"`
	Change float64 `query:"change" json:"change" validate:"gt=-100"`
	Days   int     `query:"days" json:"days" validate:"omitempty,gte=60,lte=2000"`
	Window string  `query:"window" json:"window" default:"1Y" validate:"oneof=1D 1W 1M 3M 1Y"`
}

type SeriesRequest struct {
	Symbol string  `query:"symbol" json:"symbol" validate:"required"`
	Price  float64 `query:"price" json:"price" validate:"required,gt=0"`
	Change float64 `query:"change" json:"change" validate:"gt=-100"`
	Days   int     `query:"days" json:"days" validate:"omitempty,gte=2,lte=2000"`
	Window string  `query:"window" json:"window" default:"1Y" validate:"oneof=1D 1W 1M 3M 1Y"`
}
