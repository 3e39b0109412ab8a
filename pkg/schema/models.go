// Package schema describes the relational form of the dataset: three
// tables linked by CountryId, the mapping of records into them and
// the joined reporting view.
//
// Every column is TEXT. Null values are nil pointers.
package schema

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// TableName returns the table name for this model.
	TableName() string
}

// Country holds descriptive and classification columns of a
// counterparty.
type Country struct {
	// ID is the resolved identity key.
	ID string `db:"Id" ddl:"TEXT PRIMARY KEY" gorm:"column:Id;primaryKey"`

	Counterparty *string `db:"Counterparty" ddl:"TEXT" gorm:"column:Counterparty"`

	// CountryCode is the lower-cased country name, not an ISO code.
	CountryCode *string `db:"CountryCode" ddl:"TEXT" gorm:"column:CountryCode"`

	CreditRegion *string `db:"CreditRegion" ddl:"TEXT" gorm:"column:CreditRegion"`

	// Continent is derived by the ISO lookup strategy.
	Continent *string `db:"Continent" ddl:"TEXT" gorm:"column:Continent"`

	// ContinentLoop is derived by the static table strategy.
	ContinentLoop *string `db:"ContinentLoop" ddl:"TEXT" gorm:"column:ContinentLoop"`

	PrimaryOwner         *string `db:"PrimaryOwner" ddl:"TEXT" gorm:"column:PrimaryOwner"`
	CptyGroup            *string `db:"CptyGroup" ddl:"TEXT" gorm:"column:CptyGroup"`
	InsuranceCover       *string `db:"InsuranceCover" ddl:"TEXT" gorm:"column:InsuranceCover"`
	Division1            *string `db:"Division1" ddl:"TEXT" gorm:"column:Division1"`
	LimitApplicationType *string `db:"LimitApplicationType" ddl:"TEXT" gorm:"column:LimitApplicationType"`
	TotalLimit           *string `db:"TotalLimit" ddl:"TEXT" gorm:"column:TotalLimit"`
	Notes                *string `db:"Notes" ddl:"TEXT" gorm:"column:Notes"`
	Rating               *string `db:"Rating" ddl:"TEXT" gorm:"column:Rating"`
	CommercialSponsor    *string `db:"CommercialSponsor" ddl:"TEXT" gorm:"column:CommercialSponsor"`
}

// Trade holds trading status of a counterparty.
type Trade struct {
	ID                 string  `db:"Id" ddl:"TEXT PRIMARY KEY" gorm:"column:Id;primaryKey"`
	CountryTradeStatus *string `db:"CountryTradeStatus" ddl:"TEXT" gorm:"column:CountryTradeStatus"`
	TradeStatus        *string `db:"TradeStatus" ddl:"TEXT" gorm:"column:TradeStatus"`

	// CountryID references Country.ID.
	CountryID *string `db:"CountryId" ddl:"TEXT" fk:"Country.Id" gorm:"column:CountryId"`
}

// Review holds the last review date of a counterparty.
type Review struct {
	ID string `db:"Id" ddl:"TEXT PRIMARY KEY" gorm:"column:Id;primaryKey"`

	// LastReviewDate is a YYYY-MM-DD date.
	LastReviewDate *string `db:"LastReviewDate" ddl:"TEXT" gorm:"column:LastReviewDate"`

	// CountryID references Country.ID.
	CountryID *string `db:"CountryId" ddl:"TEXT" fk:"Country.Id" gorm:"column:CountryId"`
}

// ViewRow is one row of the reporting view: all Country columns with
// the review date and both trade statuses of the same key.
type ViewRow struct {
	Country
	LastReviewDate     *string `gorm:"column:LastReviewDate"`
	CountryTradeStatus *string `gorm:"column:CountryTradeStatus"`
	TradeStatus        *string `gorm:"column:TradeStatus"`
}

// Tables is the relational form of the working set.
type Tables struct {
	Countries []Country
	Trades    []Trade
	Reviews   []Review

	// Dropped lists record fields that have no column.
	Dropped []string
}
