package services

import (
	"errors"
	"math"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

// Credits awarded per winner in each tier.
const (
	PerfectTierCredits = 100
	HighTierCredits    = 50

	// HighTierThreshold is the minimum rounded percentage for the high tier.
	HighTierThreshold = 90
)

type PrizeService struct {
	db *gorm.DB
}

func NewPrizeService(db *gorm.DB) *PrizeService {
	return &PrizeService{db: db}
}

type UserDayStat struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	CorrectCount int    `json:"correct_count"`
	TotalCount   int    `json:"total_count"`
	Percentage   int    `json:"percentage"`
	Tier         string `json:"tier,omitempty"`
}

type DayComputation struct {
	MatchDay      int           `json:"match_day"`
	TotalPot      int           `json:"total_pot"`
	AllResulted   bool          `json:"all_resulted"`
	Stats         []UserDayStat `json:"stats"`
	IsDistributed bool          `json:"is_distributed"`
}

// Percentage rounds 100*correct/total to the nearest integer.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

func tierFor(correct, total, percentage int) string {
	if total > 0 && correct == total {
		return models.TierPerfect
	}
	if percentage >= HighTierThreshold {
		return models.TierHigh
	}
	return ""
}

// ComputeDay aggregates the day's pot and every user's correct/total ratio
// over the matches that already have a posted result.
func (s *PrizeService) ComputeDay(matchDay int) (*DayComputation, error) {
	var matches []models.Match
	if err := s.db.Where("match_day = ?", matchDay).Find(&matches).Error; err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.New("giornata non trovata")
	}

	allResulted := true
	for _, m := range matches {
		if !m.HasResult {
			allResulted = false
			break
		}
	}

	var predictions []models.Prediction
	err := s.db.
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Where("matches.match_day = ?", matchDay).
		Preload("Match").
		Preload("User").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}

	totalPot := 0
	byUser := make(map[uint]*UserDayStat)
	for _, p := range predictions {
		totalPot += p.Credits

		if !p.Match.HasResult {
			continue
		}
		stat, ok := byUser[p.UserID]
		if !ok {
			stat = &UserDayStat{UserID: p.UserID, Username: p.User.Username}
			byUser[p.UserID] = stat
		}
		stat.TotalCount++
		if p.IsCorrect != nil && *p.IsCorrect {
			stat.CorrectCount++
		}
	}

	stats := make([]UserDayStat, 0, len(byUser))
	for _, stat := range byUser {
		stat.Percentage = Percentage(stat.CorrectCount, stat.TotalCount)
		stat.Tier = tierFor(stat.CorrectCount, stat.TotalCount, stat.Percentage)
		stats = append(stats, *stat)
	}

	var dist models.PrizeDistribution
	distributed := s.db.Where("match_day = ? AND is_distributed = ?", matchDay, true).
		First(&dist).Error == nil

	return &DayComputation{
		MatchDay:      matchDay,
		TotalPot:      totalPot,
		AllResulted:   allResulted,
		Stats:         stats,
		IsDistributed: distributed,
	}, nil
}

// Distribute persists the payouts for a match day exactly once. A second
// call finds the distributed flag set and returns the stored record without
// writing anything.
func (s *PrizeService) Distribute(matchDay int) (*models.PrizeDistribution, error) {
	var existing models.PrizeDistribution
	if err := s.db.Where("match_day = ?", matchDay).First(&existing).Error; err == nil {
		if existing.IsDistributed {
			return &existing, nil
		}
	}

	comp, err := s.ComputeDay(matchDay)
	if err != nil {
		return nil, err
	}
	if !comp.AllResulted {
		return nil, errors.New("giornata non ancora completata")
	}

	dist := models.PrizeDistribution{
		MatchDay: matchDay,
		TotalPot: comp.TotalPot,
	}
	if existing.ID != 0 {
		dist = existing
		dist.TotalPot = comp.TotalPot
	}

	tx := s.db.Begin()

	for _, stat := range comp.Stats {
		var credits int
		switch stat.Tier {
		case models.TierPerfect:
			credits = PerfectTierCredits
			dist.PerfectWinners++
			dist.PerfectPot += credits
		case models.TierHigh:
			credits = HighTierCredits
			dist.HighWinners++
			dist.HighPot += credits
		default:
			continue
		}

		payout := models.WinnerPayout{
			MatchDay:     matchDay,
			UserID:       stat.UserID,
			Username:     stat.Username,
			Percentage:   stat.Percentage,
			CorrectCount: stat.CorrectCount,
			TotalCount:   stat.TotalCount,
			Tier:         stat.Tier,
			Credits:      credits,
			CreatedAt:    time.Now(),
		}
		if err := tx.Create(&payout).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	dist.IsDistributed = true
	if err := tx.Save(&dist).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &dist, nil
}

func (s *PrizeService) ListDistributions() ([]models.PrizeDistribution, error) {
	var distributions []models.PrizeDistribution
	err := s.db.Order("match_day ASC").Find(&distributions).Error
	return distributions, err
}

func (s *PrizeService) ListPayoutsByDay(matchDay int) ([]models.WinnerPayout, error) {
	var payouts []models.WinnerPayout
	err := s.db.Where("match_day = ?", matchDay).
		Order("percentage DESC, username ASC").
		Find(&payouts).Error
	return payouts, err
}

func (s *PrizeService) ListPayoutsByUser(userID uint) ([]models.WinnerPayout, error) {
	var payouts []models.WinnerPayout
	err := s.db.Where("user_id = ?", userID).
		Order("match_day ASC").
		Find(&payouts).Error
	return payouts, err
}
