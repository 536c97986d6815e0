package models

import "time"

type Prediction struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_prediction_unique" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MatchID uint   `gorm:"not null;uniqueIndex:idx_prediction_unique" json:"match_id"`
	Match   Match  `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"-"`
	Pick    string `gorm:"size:1;not null" json:"pick"`
	Credits int    `gorm:"not null;default:1" json:"credits"`
	// Set by the bulk update when the match result is posted.
	IsCorrect *bool `json:"is_correct,omitempty"`
	// Derived from the match kick-off at read time, never stored.
	IsEditable bool      `gorm:"-" json:"is_editable"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	MinCredits = 1
	MaxCredits = 10
)
