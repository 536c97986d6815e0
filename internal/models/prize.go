package models

import "time"

// PrizeDistribution is the per-match-day pot summary. It moves one way:
// undistributed -> distributed.
type PrizeDistribution struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	MatchDay       int       `gorm:"not null;uniqueIndex" json:"match_day"`
	TotalPot       int       `gorm:"not null;default:0" json:"total_pot"`
	PerfectWinners int       `gorm:"not null;default:0" json:"perfect_winners"`
	PerfectPot     int       `gorm:"not null;default:0" json:"perfect_pot"`
	HighWinners    int       `gorm:"not null;default:0" json:"high_winners"`
	HighPot        int       `gorm:"not null;default:0" json:"high_pot"`
	IsDistributed  bool      `gorm:"not null;default:false" json:"is_distributed"`
	CreatedAt      time.Time `json:"created_at"`
}

type WinnerPayout struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MatchDay     int       `gorm:"not null;index" json:"match_day"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	Percentage   int       `gorm:"not null" json:"percentage"`
	CorrectCount int       `gorm:"not null" json:"correct_count"`
	TotalCount   int       `gorm:"not null" json:"total_count"`
	Tier         string    `gorm:"size:20;not null" json:"tier"`
	Credits      int       `gorm:"not null" json:"credits"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	TierPerfect = "perfect"
	TierHigh    = "high"
)
