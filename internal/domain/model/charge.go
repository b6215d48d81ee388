package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeBreakdown is the itemized result of the storage charge calculation.
//
// @Description Itemized storage and handling charges computed at release time
type ChargeBreakdown struct {
	// StorageDays is the raw number of days in storage, rounded up.
	StorageDays int `json:"storage_days" example:"5"`
	// ChargeableDays is StorageDays after applying the minimum-charge floor.
	ChargeableDays int `json:"chargeable_days" example:"5"`
	// ReleasedBoxCount is the number of boxes the charge covers.
	ReleasedBoxCount int `json:"released_box_count" example:"4"`

	Storage   decimal.Decimal `json:"storage" swaggertype:"number" example:"12.5"`
	Boxes     decimal.Decimal `json:"boxes" swaggertype:"number" example:"0"`
	Handling  decimal.Decimal `json:"handling" swaggertype:"number" example:"5"`
	PerBox    decimal.Decimal `json:"per_box" swaggertype:"number" example:"4"`
	Transport decimal.Decimal `json:"transport" swaggertype:"number" example:"0"`
	Total     decimal.Decimal `json:"total" swaggertype:"number" example:"21.5"`
} // @name ChargeBreakdown

// StorageDaysBetween returns the number of storage days between arrival and
// the as-of instant: elapsed time divided by 24h, rounded up, never negative.
// A shipment released the day it arrived is charged one day.
func StorageDaysBetween(arrival, asOf time.Time) int {
	elapsed := asOf.Sub(arrival)
	if elapsed <= 0 {
		return 0
	}
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	return days
}
