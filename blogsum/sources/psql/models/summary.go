// blogsum/sources/psql/models/summary.go
package models

import (
	"time"
)

// Summary is one processed blog post in the row store. The store assigns the
// id; the document store keeps the full content, this row only the pair of
// summaries.
type Summary struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	URL            string    `json:"url" gorm:"type:text;not null"`
	Title          string    `json:"title" gorm:"type:text"`
	EnglishSummary string    `json:"english_summary" gorm:"column:english_summary;type:text"`
	UrduSummary    string    `json:"urdu_summary" gorm:"column:urdu_summary;type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Summary) TableName() string {
	return "summaries"
}
