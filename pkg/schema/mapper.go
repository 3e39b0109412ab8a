package schema

import (
	"slices"

	"github.com/gnames/ctryrisk/pkg/record"
)

// CountryFields are record fields stored in Country, apart from Id.
var CountryFields = []string{
	record.Counterparty,
	record.CountryCode,
	record.CreditRegion,
	record.Continent,
	record.ContinentLoop,
	record.PrimaryOwner,
	record.CptyGroup,
	record.InsuranceCover,
	record.Division1,
	record.LimitApplicationType,
	record.TotalLimit,
	record.Notes,
	record.Rating,
	record.CommercialSponsor,
}

// Split projects clean records into the three tables. Every row of
// Trade and Review gets CountryId equal to its own Id. Fields that
// have no column are reported in Tables.Dropped.
//
// A record without Id cannot be stored, Split returns a
// ConstraintViolation error for it.
func Split(rs []record.Record) (*Tables, error) {
	res := &Tables{
		Countries: make([]Country, 0, len(rs)),
		Trades:    make([]Trade, 0, len(rs)),
		Reviews:   make([]Review, 0, len(rs)),
	}
	known := knownFields()
	dropped := make(map[string]struct{})

	for i, r := range rs {
		id, ok := r.String(record.ID)
		if !ok {
			return nil, NullKeyError(Country{}.TableName(), i)
		}
		for k := range r {
			if _, ok := known[k]; !ok {
				dropped[k] = struct{}{}
			}
		}

		res.Countries = append(res.Countries, Country{
			ID:                   id,
			Counterparty:         text(r, record.Counterparty),
			CountryCode:          text(r, record.CountryCode),
			CreditRegion:         text(r, record.CreditRegion),
			Continent:            text(r, record.Continent),
			ContinentLoop:        text(r, record.ContinentLoop),
			PrimaryOwner:         text(r, record.PrimaryOwner),
			CptyGroup:            text(r, record.CptyGroup),
			InsuranceCover:       text(r, record.InsuranceCover),
			Division1:            text(r, record.Division1),
			LimitApplicationType: text(r, record.LimitApplicationType),
			TotalLimit:           text(r, record.TotalLimit),
			Notes:                text(r, record.Notes),
			Rating:               text(r, record.Rating),
			CommercialSponsor:    text(r, record.CommercialSponsor),
		})
		res.Trades = append(res.Trades, Trade{
			ID:                 id,
			CountryTradeStatus: text(r, record.CountryTradeStatus),
			TradeStatus:        text(r, record.TradeStatus),
			CountryID:          &id,
		})
		res.Reviews = append(res.Reviews, Review{
			ID:             id,
			LastReviewDate: text(r, record.LastReviewDate),
			CountryID:      &id,
		})
	}

	for k := range dropped {
		res.Dropped = append(res.Dropped, k)
	}
	slices.Sort(res.Dropped)
	return res, nil
}

// Validate checks primary key uniqueness of every table and that
// every CountryId of Trade and Review exists in Country.
func Validate(t *Tables) error {
	countries := make(map[string]struct{}, len(t.Countries))
	for _, c := range t.Countries {
		if _, ok := countries[c.ID]; ok {
			return DuplicateKeyError(c.TableName(), c.ID)
		}
		countries[c.ID] = struct{}{}
	}

	trades := make(map[string]struct{}, len(t.Trades))
	for _, tr := range t.Trades {
		if _, ok := trades[tr.ID]; ok {
			return DuplicateKeyError(tr.TableName(), tr.ID)
		}
		trades[tr.ID] = struct{}{}
		if err := checkRef(countries, tr.TableName(), tr.ID, tr.CountryID); err != nil {
			return err
		}
	}

	reviews := make(map[string]struct{}, len(t.Reviews))
	for _, rv := range t.Reviews {
		if _, ok := reviews[rv.ID]; ok {
			return DuplicateKeyError(rv.TableName(), rv.ID)
		}
		reviews[rv.ID] = struct{}{}
		if err := checkRef(countries, rv.TableName(), rv.ID, rv.CountryID); err != nil {
			return err
		}
	}
	return nil
}

func checkRef(
	countries map[string]struct{},
	table, id string,
	ref *string,
) error {
	// a null reference does not violate a foreign key
	if ref == nil {
		return nil
	}
	if _, ok := countries[*ref]; !ok {
		return MissingReferenceError(table, id, *ref)
	}
	return nil
}

func knownFields() map[string]struct{} {
	fields := []string{
		record.ID,
		record.CountryTradeStatus,
		record.TradeStatus,
		record.LastReviewDate,
		record.CountryID,
	}
	fields = append(fields, CountryFields...)
	res := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		res[f] = struct{}{}
	}
	return res
}

func text(r record.Record, field string) *string {
	s, ok := r.String(field)
	if !ok {
		return nil
	}
	return &s
}
