package record

// Column names of the source table and of derived fields.
const (
	ID                   = "Id"
	Counterparty         = "Counterparty"
	CountryCode          = "CountryCode"
	CreditRegion         = "CreditRegion"
	PrimaryOwner         = "PrimaryOwner"
	CptyGroup            = "CptyGroup"
	InsuranceCover       = "InsuranceCover"
	Division1            = "Division1"
	LimitApplicationType = "LimitApplicationType"
	TotalLimit           = "TotalLimit"
	Notes                = "Notes"
	Rating               = "Rating"
	CommercialSponsor    = "CommercialSponsor"
	CountryTradeStatus   = "CountryTradeStatus"
	TradeStatus          = "TradeStatus"
	LastReviewDate       = "LastReviewDate"

	// Continent is derived with the lookup strategy.
	Continent = "Continent"
	// ContinentLoop is derived with the static table strategy.
	ContinentLoop = "ContinentLoop"
	// CountryID links Trade and Review rows to Country.
	CountryID = "CountryId"
)

// SourceFields lists the columns a source is expected to supply.
var SourceFields = []string{
	ID, Counterparty, CountryCode, CreditRegion, PrimaryOwner, CptyGroup,
	InsuranceCover, Division1, LimitApplicationType, TotalLimit, Notes,
	Rating, CommercialSponsor, CountryTradeStatus, TradeStatus,
	LastReviewDate,
}
