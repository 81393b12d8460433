package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beer Пиво в хранилище. Стиль хранится строкой, перечисление живёт на DTO.
type Beer struct {
	ID               uuid.UUID       `json:"id"`
	Version          int             `json:"version"`
	CreatedDate      time.Time       `json:"createdDate"`
	LastModifiedDate time.Time       `json:"lastModifiedDate"`
	BeerName         string          `json:"beerName"`
	BeerStyle        string          `json:"beerStyle"`
	UPC              int64           `json:"upc"`
	Price            decimal.Decimal `json:"price"`
	MinOnHand        int             `json:"minOnHand"`
	QuantityToBrew   int             `json:"quantityToBrew"`
}

// IsNew сообщает, что пиво ещё не сохранялось.
func (b Beer) IsNew() bool {
	return b.ID == uuid.Nil
}
