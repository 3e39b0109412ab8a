package report

import (
	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/gnames/ctryrisk/pkg/schema"
)

// FromView turns joined rows back into records. Values come back in
// their stored text form; null columns are absent from the record.
func FromView(rows []schema.ViewRow) []record.Record {
	res := make([]record.Record, len(rows))
	for i, v := range rows {
		c := v.Country
		r := record.Record{record.ID: c.ID}
		set(r, record.Counterparty, c.Counterparty)
		set(r, record.CountryCode, c.CountryCode)
		set(r, record.CreditRegion, c.CreditRegion)
		set(r, record.Continent, c.Continent)
		set(r, record.ContinentLoop, c.ContinentLoop)
		set(r, record.PrimaryOwner, c.PrimaryOwner)
		set(r, record.CptyGroup, c.CptyGroup)
		set(r, record.InsuranceCover, c.InsuranceCover)
		set(r, record.Division1, c.Division1)
		set(r, record.LimitApplicationType, c.LimitApplicationType)
		set(r, record.TotalLimit, c.TotalLimit)
		set(r, record.Notes, c.Notes)
		set(r, record.Rating, c.Rating)
		set(r, record.CommercialSponsor, c.CommercialSponsor)
		set(r, record.LastReviewDate, v.LastReviewDate)
		set(r, record.CountryTradeStatus, v.CountryTradeStatus)
		set(r, record.TradeStatus, v.TradeStatus)
		res[i] = r
	}
	return res
}

func set(r record.Record, field string, v *string) {
	if v != nil {
		r[field] = *v
	}
}
