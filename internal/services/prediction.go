package services

import (
	"errors"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

// MinDayPredictions is how many picks a user must place on the earliest
// open match day before predicting matches of later days.
const MinDayPredictions = 3

type PredictionService struct {
	db *gorm.DB
}

func NewPredictionService(db *gorm.DB) *PredictionService {
	return &PredictionService{db: db}
}

type PredictionInput struct {
	MatchID uint   `json:"match_id"`
	Pick    string `json:"pick"`
	Credits int    `json:"credits"`
}

// Submit creates the user's prediction for a match, or updates the existing
// one in place while the match is still editable. There is never more than
// one prediction per (user, match).
func (s *PredictionService) Submit(userID uint, input PredictionInput) (*models.Prediction, error) {
	if !models.ValidResult(input.Pick) {
		return nil, errors.New("pronostico non valido: usare 1, X o 2")
	}
	if input.Credits < models.MinCredits || input.Credits > models.MaxCredits {
		return nil, errors.New("crediti fuori dal limite consentito")
	}

	var match models.Match
	if err := s.db.First(&match, input.MatchID).Error; err != nil {
		return nil, errors.New("partita non trovata")
	}

	now := time.Now()
	if !now.Before(match.EditableUntil()) {
		return nil, errors.New("pronostici chiusi per questa partita")
	}

	var existing models.Prediction
	err := s.db.Where("user_id = ? AND match_id = ?", userID, input.MatchID).
		First(&existing).Error
	if err == nil {
		existing.Pick = input.Pick
		existing.Credits = input.Credits
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		existing.IsEditable = true
		return &existing, nil
	}

	if err := s.checkDayGate(userID, &match, now); err != nil {
		return nil, err
	}

	prediction := models.Prediction{
		UserID:  userID,
		MatchID: input.MatchID,
		Pick:    input.Pick,
		Credits: input.Credits,
	}
	if err := s.db.Create(&prediction).Error; err != nil {
		return nil, err
	}
	prediction.IsEditable = true
	return &prediction, nil
}

// checkDayGate enforces the minimum number of picks on the earliest open
// match day before a later day can be predicted.
func (s *PredictionService) checkDayGate(userID uint, match *models.Match, now time.Time) error {
	lockBefore := now.Add(30 * time.Minute)

	var earliestOpenDay int
	if err := s.db.Model(&models.Match{}).
		Where("match_date > ?", lockBefore).
		Select("COALESCE(MIN(match_day), 0)").
		Scan(&earliestOpenDay).Error; err != nil {
		return err
	}
	if earliestOpenDay == 0 || match.MatchDay <= earliestOpenDay {
		return nil
	}

	var openMatches int64
	if err := s.db.Model(&models.Match{}).
		Where("match_day = ?", earliestOpenDay).
		Count(&openMatches).Error; err != nil {
		return err
	}

	required := int64(MinDayPredictions)
	if openMatches < required {
		required = openMatches
	}

	var placed int64
	if err := s.db.Model(&models.Prediction{}).
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Where("predictions.user_id = ? AND matches.match_day = ?", userID, earliestOpenDay).
		Count(&placed).Error; err != nil {
		return err
	}

	if placed < required {
		return errors.New("completa prima i pronostici della giornata in corso")
	}
	return nil
}

func (s *PredictionService) markEditable(predictions []models.Prediction, now time.Time) {
	for i := range predictions {
		predictions[i].IsEditable = now.Before(predictions[i].Match.EditableUntil())
	}
}

func (s *PredictionService) ListByUser(userID uint) ([]models.Prediction, error) {
	var predictions []models.Prediction
	err := s.db.Where("user_id = ?", userID).
		Preload("Match").
		Order("created_at ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	s.markEditable(predictions, time.Now())
	return predictions, nil
}

func (s *PredictionService) ListByMatch(matchID uint) ([]models.Prediction, error) {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return nil, errors.New("partita non trovata")
	}

	var predictions []models.Prediction
	err := s.db.Where("match_id = ?", matchID).
		Preload("Match").
		Preload("User").
		Order("created_at ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	s.markEditable(predictions, time.Now())
	return predictions, nil
}

func (s *PredictionService) ListByDay(matchDay int) ([]models.Prediction, error) {
	var predictions []models.Prediction
	err := s.db.
		Joins("JOIN matches ON matches.id = predictions.match_id").
		Where("matches.match_day = ?", matchDay).
		Preload("Match").
		Preload("User").
		Order("predictions.created_at ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	s.markEditable(predictions, time.Now())
	return predictions, nil
}

func (s *PredictionService) DeletePrediction(predictionID, userID uint) error {
	var prediction models.Prediction
	if err := s.db.Preload("Match").
		Where("id = ? AND user_id = ?", predictionID, userID).
		First(&prediction).Error; err != nil {
		return errors.New("pronostico non trovato")
	}

	if !time.Now().Before(prediction.Match.EditableUntil()) {
		return errors.New("pronostico non più modificabile")
	}
	return s.db.Delete(&prediction).Error
}
