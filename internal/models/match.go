package models

import "time"

type Match struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HomeTeam    string    `gorm:"size:100;not null" json:"home_team"`
	AwayTeam    string    `gorm:"size:100;not null" json:"away_team"`
	MatchDate   time.Time `gorm:"not null" json:"match_date"`
	MatchDay    int       `gorm:"not null;index" json:"match_day"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	Result      string    `gorm:"size:1;default:''" json:"result,omitempty"`
	HasResult   bool      `gorm:"not null;default:false" json:"has_result"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	ResultHome = "1"
	ResultDraw = "X"
	ResultAway = "2"
)

// EditableUntil is the moment predictions on this match lock.
func (m *Match) EditableUntil() time.Time {
	return m.MatchDate.Add(-30 * time.Minute)
}

func ValidResult(r string) bool {
	return r == ResultHome || r == ResultDraw || r == ResultAway
}
