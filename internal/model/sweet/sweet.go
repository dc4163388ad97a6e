// Package sweet describes the sweet resource: a title and a calorie count.
package sweet

import (
	"fmt"
	"math"
)

const (
	// TitleMaxLength mirrors the VARCHAR(255) column.
	TitleMaxLength = 255

	// CaloriesMax is the largest value the INTEGER column holds.
	CaloriesMax = math.MaxInt32
)

// Sweet mirrors one row of the sweets table.
//
// The json tags define the wire format ({id,title,calories}); the db tags
// let pgx.RowToStructByName scan rows directly into it.
type Sweet struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Calories int    `json:"calories" db:"calories"`
}

func (s Sweet) String() string {
	return fmt.Sprintf("%s - %d", s.Title, s.Calories)
}
