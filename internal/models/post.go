package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category string

const (
	CategoryGeneral    Category = "General"
	CategoryTechnology Category = "Technology"
	CategoryLifestyle  Category = "Lifestyle"
	CategoryTravel     Category = "Travel"
	CategoryFood       Category = "Food"
	CategoryOther      Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryTechnology, CategoryLifestyle, CategoryTravel, CategoryFood, CategoryOther:
		return true
	}
	return false
}

type Post struct {
	ID        uuid.UUID      `db:"id"`
	Title     string         `db:"title"`
	Body      string         `db:"body"`
	AuthorID  uuid.UUID      `db:"author_id"`
	Author    string         `db:"author"` // username, joined on read
	Tags      pq.StringArray `db:"tags"`
	Category  Category       `db:"category"`
	Views     int            `db:"views"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
