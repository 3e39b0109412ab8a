package schema

import "fmt"

// AllModels returns schema models in creation order. Referenced
// tables come first.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		Country{},
		Trade{},
		Review{},
	}
}

// DropOrder returns table names in the order they can be dropped
// without breaking foreign keys.
func DropOrder() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m.TableName()
	}
	return res
}

// ViewQuery is the inner join of the three tables on the identity key.
func ViewQuery() string {
	c, t, r := Quote("Country"), Quote("Trade"), Quote("Review")
	id, cid := Quote("Id"), Quote("CountryId")
	return fmt.Sprintf(
		`SELECT %[1]s.*, %[3]s.%[6]s, %[2]s.%[7]s, %[2]s.%[8]s
FROM %[1]s
  JOIN %[3]s ON %[1]s.%[4]s = %[3]s.%[5]s
  JOIN %[2]s ON %[1]s.%[4]s = %[2]s.%[5]s
ORDER BY %[1]s.%[4]s`,
		c, t, r, id, cid,
		Quote("LastReviewDate"), Quote("CountryTradeStatus"),
		Quote("TradeStatus"),
	)
}
