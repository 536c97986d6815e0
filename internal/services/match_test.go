package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/models"
	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetResult_FlagsEveryPrediction(t *testing.T) {
	db := newTestDB(t)
	matchSvc := services.NewMatchService(db)
	predSvc := services.NewPredictionService(db)

	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))
	alice := createUser(t, db, "Alice FC")
	bob := createUser(t, db, "Bob United")
	carol := createUser(t, db, "Carol City")

	for user, pick := range map[*models.User]string{
		alice: models.ResultHome,
		bob:   models.ResultDraw,
		carol: models.ResultHome,
	} {
		_, err := predSvc.Submit(user.ID, services.PredictionInput{
			MatchID: match.ID, Pick: pick, Credits: 1,
		})
		require.NoError(t, err)
	}

	updated, err := matchSvc.SetResult(match.ID, models.ResultHome)
	require.NoError(t, err)
	assert.True(t, updated.HasResult)
	assert.Equal(t, models.ResultHome, updated.Result)

	var predictions []models.Prediction
	require.NoError(t, db.Where("match_id = ?", match.ID).Find(&predictions).Error)
	require.Len(t, predictions, 3)
	for _, p := range predictions {
		require.NotNil(t, p.IsCorrect)
		assert.Equal(t, p.Pick == models.ResultHome, *p.IsCorrect)
	}
}

func TestSetResult_RepostRejected(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	_, err := svc.SetResult(match.ID, models.ResultHome)
	require.NoError(t, err)

	_, err = svc.SetResult(match.ID, models.ResultDraw)
	assert.EqualError(t, err, "risultato già registrato")

	var stored models.Match
	require.NoError(t, db.First(&stored, match.ID).Error)
	assert.Equal(t, models.ResultHome, stored.Result)
}

func TestSetResult_RejectsInvalidOutcome(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	_, err := svc.SetResult(match.ID, "home")
	assert.EqualError(t, err, "risultato non valido: usare 1, X o 2")
}

func TestDeleteMatch_CascadesPredictions(t *testing.T) {
	db := newTestDB(t)
	matchSvc := services.NewMatchService(db)
	predSvc := services.NewPredictionService(db)

	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))
	user := createUser(t, db, "Alice FC")

	_, err := predSvc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultDraw, Credits: 2,
	})
	require.NoError(t, err)

	require.NoError(t, matchSvc.DeleteMatch(match.ID))

	var count int64
	db.Model(&models.Prediction{}).Where("match_id = ?", match.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestImportCSV_CreatesMatches(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	csvData := strings.Join([]string{
		"homeTeam,awayTeam,matchDate,matchDay,description",
		"Juventus,Inter,2025-09-14T20:45:00Z,3,big match",
		"Milan,Roma,2025-09-15 18:00,3,",
	}, "\n")

	count, err := svc.ImportCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	matches, err := svc.ListMatchesByDay(3)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Juventus", matches[0].HomeTeam)
	assert.Equal(t, "big match", matches[0].Description)
}

func TestImportCSV_MissingColumn(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	csvData := "homeTeam,awayTeam,matchDate\nJuventus,Inter,2025-09-14T20:45:00Z"

	_, err := svc.ImportCSV(strings.NewReader(csvData))
	assert.EqualError(t, err, "colonna mancante: matchDay")
}

func TestUpdateMatch_ValidatesLikeCreate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	_, err := svc.UpdateMatch(match.ID, services.MatchInput{
		HomeTeam: "", AwayTeam: "Inter",
		MatchDate: match.MatchDate, MatchDay: 1,
	})
	assert.EqualError(t, err, "squadre obbligatorie")

	_, err = svc.UpdateMatch(match.ID, services.MatchInput{
		HomeTeam: "Juventus", AwayTeam: "Inter",
		MatchDate: match.MatchDate, MatchDay: 0,
	})
	assert.EqualError(t, err, "giornata non valida")
}

func TestImportCSV_ShortRowFailsCleanly(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	csvData := strings.Join([]string{
		"homeTeam,awayTeam,matchDate,matchDay",
		"Juventus,Inter",
	}, "\n")

	_, err := svc.ImportCSV(strings.NewReader(csvData))
	require.EqualError(t, err, "riga non leggibile")

	var count int64
	db.Model(&models.Match{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestImportCSV_BadRowRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMatchService(db)

	csvData := strings.Join([]string{
		"homeTeam,awayTeam,matchDate,matchDay",
		"Juventus,Inter,2025-09-14T20:45:00Z,3",
		"Milan,Roma,non-una-data,3",
	}, "\n")

	_, err := svc.ImportCSV(strings.NewReader(csvData))
	require.Error(t, err)

	var count int64
	db.Model(&models.Match{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
