package models

// Favorite is a user↔poem join row. The existence of the row is the fact
// being recorded; there are no attributes beyond the pair.
type Favorite struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	PoemID int64 `json:"poem_id"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "user_favorites"
}
