package rest

import (
	"time"

	"github.com/shopspring/decimal"
)

// Beer Модель пива на проводе. id, version, createdDate, lastModifiedDate и
// quantityToBrew заполняет сервер, во входящих запросах они игнорируются.
type Beer struct {
	ID               *string          `json:"id"`
	Version          *int             `json:"version"`
	CreatedDate      *time.Time       `json:"createdDate"`
	LastModifiedDate *time.Time       `json:"lastModifiedDate"`
	BeerName         string           `json:"beerName"       validate:"notblank,max=100"`
	BeerStyle        BeerStyle        `json:"beerStyle"      validate:"required,oneof=LAGER PILSNER STOUT GOSE PORTER ALE WHEAT IPA PALE_ALE SAISON"` //nolint:lll
	UPC              int64            `json:"upc"            validate:"required,gt=0"`
	Price            *decimal.Decimal `json:"price"          validate:"required,gte=0"`
	MinOnHand        int              `json:"minOnHand"      validate:"gte=0"`
	QuantityToBrew   *int             `json:"quantityToBrew"`
}

// BeerStyle Стиль пива
type BeerStyle string

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`

	// Fields Ошибки валидации отдельных полей
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError Ошибка валидации поля
type FieldError struct {
	// Field Имя поля в JSON
	Field string `json:"field"`

	// Message Причина, понятная человеку
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
