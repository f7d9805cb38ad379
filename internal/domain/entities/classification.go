package entities

import "github.com/shopspring/decimal"

// ClassificationInput is what the classifier receives. Description or
// ImageURL must be present; Discipline and Role are optional hints when the
// client pre-selected a category.
type ClassificationInput struct {
	Description string
	ImageURL    string
	Discipline  string
	Role        string
	Zone        string
}

// ClassificationResult is the normalized classifier output. Every field is
// optional at the boundary; the adapter validates and defaults them so the
// rest of the service never touches untyped model output.
//
// RawSuggestedMin/Max are advisory and pass through the price reconciler
// before anything is stored; nil means the model gave no usable number.
type ClassificationResult struct {
	Disciplina       string
	Urgencia         int
	Diagnostico      string
	DescripcionFinal string

	RawSuggestedMin *decimal.Decimal
	RawSuggestedMax *decimal.Decimal
	PriceRationale  string
}
