package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Poem represents a single catalogued poem.
//
// Title, Author, Dynasty and Content are free text supplied by the writer.
// Timestamps are stamped by the application at insert/update time, not by
// the database.
type Poem struct {
	// ID is the store-assigned unique identifier of the poem.
	ID int64 `json:"id"`

	// Title is the poem's title. Seeding uses it as a de-duplication key
	// by convention; the schema does not enforce uniqueness.
	Title string `json:"title"`

	// Author is the poet's name.
	Author string `json:"author"`

	// Dynasty is the historical era label the poem belongs to (e.g. 唐, 宋).
	Dynasty string `json:"dynasty"`

	// Content is the poem body.
	Content string `json:"content"`

	// Tags is the ordered list of short labels attached to the poem.
	// Semantically a set, but insertion order is preserved in storage.
	Tags TagList `json:"tags"`

	// CreatedAt and UpdatedAt are writer-stamped timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Poem model.
func (p Poem) TableName() string {
	return "poems"
}

// TagList is a list of tag labels stored in a single jsonb column.
// It implements [driver.Valuer] and [sql.Scanner] so poems can be read and
// written through database/sql without a separate join table.
type TagList []string

// Value serializes the tag list to its jsonb representation.
// A nil list is stored as an empty JSON array rather than SQL NULL.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan deserializes a jsonb column value into the tag list.
// NULL scans to an empty list.
func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = TagList{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported source type %T for TagList", src)
	}
}

// Contains reports whether the given tag is present in the list.
// Comparison is case-sensitive exact string match.
func (t TagList) Contains(tag string) bool {
	for _, candidate := range t {
		if candidate == tag {
			return true
		}
	}
	return false
}
