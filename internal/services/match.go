package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{db: db}
}

type MatchInput struct {
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	MatchDate   time.Time `json:"match_date"`
	MatchDay    int       `json:"match_day"`
	Description string    `json:"description"`
}

func (s *MatchService) CreateMatch(input MatchInput) (*models.Match, error) {
	if input.HomeTeam == "" || input.AwayTeam == "" {
		return nil, errors.New("squadre obbligatorie")
	}
	if input.MatchDay <= 0 {
		return nil, errors.New("giornata non valida")
	}

	match := models.Match{
		HomeTeam:    input.HomeTeam,
		AwayTeam:    input.AwayTeam,
		MatchDate:   input.MatchDate,
		MatchDay:    input.MatchDay,
		Description: input.Description,
	}
	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *MatchService) GetMatch(matchID uint) (*models.Match, error) {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return nil, errors.New("partita non trovata")
	}
	return &match, nil
}

func (s *MatchService) ListMatches() ([]models.Match, error) {
	var matches []models.Match
	err := s.db.Order("match_day ASC, match_date ASC").Find(&matches).Error
	return matches, err
}

func (s *MatchService) ListMatchesByDay(matchDay int) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.Where("match_day = ?", matchDay).
		Order("match_date ASC").
		Find(&matches).Error
	return matches, err
}

func (s *MatchService) UpdateMatch(matchID uint, input MatchInput) (*models.Match, error) {
	if input.HomeTeam == "" || input.AwayTeam == "" {
		return nil, errors.New("squadre obbligatorie")
	}
	if input.MatchDay <= 0 {
		return nil, errors.New("giornata non valida")
	}

	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return nil, errors.New("partita non trovata")
	}

	match.HomeTeam = input.HomeTeam
	match.AwayTeam = input.AwayTeam
	match.MatchDate = input.MatchDate
	match.MatchDay = input.MatchDay
	match.Description = input.Description
	if err := s.db.Save(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// DeleteMatch removes the match and every prediction placed on it.
func (s *MatchService) DeleteMatch(matchID uint) error {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return errors.New("partita non trovata")
	}

	tx := s.db.Begin()
	if err := tx.Where("match_id = ?", matchID).Delete(&models.Prediction{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&match).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// SetResult stores the outcome and bulk-flags every prediction on the match.
// Correctness is not recomputed lazily afterwards.
func (s *MatchService) SetResult(matchID uint, result string) (*models.Match, error) {
	if !models.ValidResult(result) {
		return nil, errors.New("risultato non valido: usare 1, X o 2")
	}

	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return nil, errors.New("partita non trovata")
	}

	// the result is set once: reposting would contradict payouts already
	// persisted for the day, and distribution has no reversal path
	if match.HasResult {
		return nil, errors.New("risultato già registrato")
	}

	tx := s.db.Begin()

	match.Result = result
	match.HasResult = true
	if err := tx.Save(&match).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Prediction{}).
		Where("match_id = ?", matchID).
		Update("is_correct", gorm.Expr("pick = ?", result)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &match, nil
}

var csvDateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"02/01/2006 15:04",
}

func parseMatchDate(raw string) (time.Time, error) {
	for _, layout := range csvDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data non riconosciuta: %s", raw)
}

// ImportCSV reads the conventional spreadsheet layout
// (homeTeam, awayTeam, matchDate, matchDay, optional description)
// and creates one match per row inside a single transaction.
func (s *MatchService) ImportCSV(r io.Reader) (int, error) {
	// the default FieldsPerRecord pins every row to the header's width,
	// so short or ragged rows fail the Read below instead of panicking
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return 0, errors.New("file vuoto o non leggibile")
	}

	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"homeTeam", "awayTeam", "matchDate", "matchDay"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("colonna mancante: %s", required)
		}
	}

	tx := s.db.Begin()
	count := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			tx.Rollback()
			return 0, errors.New("riga non leggibile")
		}

		matchDate, err := parseMatchDate(strings.TrimSpace(record[cols["matchDate"]]))
		if err != nil {
			tx.Rollback()
			return 0, err
		}

		matchDay, err := strconv.Atoi(strings.TrimSpace(record[cols["matchDay"]]))
		if err != nil || matchDay <= 0 {
			tx.Rollback()
			return 0, errors.New("giornata non valida nel file")
		}

		description := ""
		if idx, ok := cols["description"]; ok && idx < len(record) {
			description = strings.TrimSpace(record[idx])
		}

		match := models.Match{
			HomeTeam:    strings.TrimSpace(record[cols["homeTeam"]]),
			AwayTeam:    strings.TrimSpace(record[cols["awayTeam"]]),
			MatchDate:   matchDate,
			MatchDay:    matchDay,
			Description: description,
		}
		if match.HomeTeam == "" || match.AwayTeam == "" {
			tx.Rollback()
			return 0, errors.New("squadre mancanti nel file")
		}

		if err := tx.Create(&match).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
		count++
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return count, nil
}
