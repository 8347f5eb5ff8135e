package repoargs

import "github.com/shopspring/decimal"

type CreateMentorProfile struct {
	UserID      int64
	DisplayName string
	Bio         string
	Skills      string
	HourlyRate  decimal.Decimal
}

// SearchBySimilarity параметры серверного поиска по косинусной близости эмбеддингов.
type SearchBySimilarity struct {
	Embedding []float64
	Threshold float64
	Limit     uint
}

type SearchByKeyword struct {
	Query string
	Limit uint
}
