package services

import (
	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type Overview struct {
	Users           int64 `json:"users"`
	Matches         int64 `json:"matches"`
	ResultedMatches int64 `json:"resulted_matches"`
	Predictions     int64 `json:"predictions"`
	DistributedDays int64 `json:"distributed_days"`
	CurrentMatchDay int   `json:"current_match_day"`
}

func (s *StatsService) GetOverview() (*Overview, error) {
	var o Overview

	s.db.Model(&models.User{}).Count(&o.Users)
	s.db.Model(&models.Match{}).Count(&o.Matches)
	s.db.Model(&models.Match{}).Where("has_result = ?", true).Count(&o.ResultedMatches)
	s.db.Model(&models.Prediction{}).Count(&o.Predictions)
	s.db.Model(&models.PrizeDistribution{}).Where("is_distributed = ?", true).Count(&o.DistributedDays)

	err := s.db.Model(&models.Match{}).
		Select("COALESCE(MAX(match_day), 0)").
		Scan(&o.CurrentMatchDay).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type DayStats struct {
	MatchDay        int   `json:"match_day"`
	Matches         int64 `json:"matches"`
	ResultedMatches int64 `json:"resulted_matches"`
	Predictions     int64 `json:"predictions"`
	TotalCredits    int64 `json:"total_credits"`
}

func (s *StatsService) GetDayStats(matchDay int) (*DayStats, error) {
	stats := DayStats{MatchDay: matchDay}

	s.db.Model(&models.Match{}).Where("match_day = ?", matchDay).Count(&stats.Matches)
	s.db.Model(&models.Match{}).
		Where("match_day = ? AND has_result = ?", matchDay, true).
		Count(&stats.ResultedMatches)

	s.db.Model(&models.Prediction{}).
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Where("matches.match_day = ?", matchDay).
		Count(&stats.Predictions)

	err := s.db.Model(&models.Prediction{}).
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Where("matches.match_day = ?", matchDay).
		Select("COALESCE(SUM(predictions.credits), 0)").
		Scan(&stats.TotalCredits).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
