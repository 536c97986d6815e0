package services

import (
	"errors"
	"sort"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

const (
	LeaderboardCurrent = "current"
	LeaderboardOverall = "overall"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type LeaderboardEntry struct {
	Position     int     `json:"position"`
	UserID       uint    `json:"user_id"`
	Username     string  `json:"username"`
	CorrectCount int     `json:"correct_count"`
	TotalCount   int     `json:"total_count"`
	SuccessRate  float64 `json:"success_rate"`
}

// GetLeaderboard ranks users by correct predictions over resulted matches.
// Ties break on success rate, then on prediction volume. Mode "current"
// restricts the ranking to the latest match day.
func (s *LeaderboardService) GetLeaderboard(mode string) ([]LeaderboardEntry, error) {
	if mode != LeaderboardCurrent && mode != LeaderboardOverall {
		return nil, errors.New("modalità non valida: usare current o overall")
	}

	query := s.db.
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Where("matches.has_result = ?", true).
		Preload("User")

	if mode == LeaderboardCurrent {
		var currentDay int
		err := s.db.Model(&models.Match{}).
			Select("COALESCE(MAX(match_day), 0)").
			Scan(&currentDay).Error
		if err != nil {
			return nil, err
		}
		query = query.Where("matches.match_day = ?", currentDay)
	}

	var predictions []models.Prediction
	if err := query.Find(&predictions).Error; err != nil {
		return nil, err
	}

	byUser := make(map[uint]*LeaderboardEntry)
	for _, p := range predictions {
		entry, ok := byUser[p.UserID]
		if !ok {
			entry = &LeaderboardEntry{UserID: p.UserID, Username: p.User.Username}
			byUser[p.UserID] = entry
		}
		entry.TotalCount++
		if p.IsCorrect != nil && *p.IsCorrect {
			entry.CorrectCount++
		}
	}

	entries := make([]LeaderboardEntry, 0, len(byUser))
	for _, entry := range byUser {
		if entry.TotalCount > 0 {
			entry.SuccessRate = float64(entry.CorrectCount) / float64(entry.TotalCount)
		}
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].CorrectCount != entries[b].CorrectCount {
			return entries[a].CorrectCount > entries[b].CorrectCount
		}
		if entries[a].SuccessRate != entries[b].SuccessRate {
			return entries[a].SuccessRate > entries[b].SuccessRate
		}
		if entries[a].TotalCount != entries[b].TotalCount {
			return entries[a].TotalCount > entries[b].TotalCount
		}
		return entries[a].Username < entries[b].Username
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}
