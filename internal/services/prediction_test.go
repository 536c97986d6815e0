package services_test

import (
	"testing"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/models"
	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_CreatesPrediction(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	prediction, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID,
		Pick:    models.ResultHome,
		Credits: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ResultHome, prediction.Pick)
	assert.Equal(t, 5, prediction.Credits)
	assert.True(t, prediction.IsEditable)
}

func TestSubmit_SecondSubmissionUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	first, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultHome, Credits: 5,
	})
	require.NoError(t, err)

	second, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultDraw, Credits: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.ResultDraw, second.Pick)

	var count int64
	db.Model(&models.Prediction{}).
		Where("user_id = ? AND match_id = ?", user.ID, match.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmit_RejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	_, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: "3", Credits: 5,
	})
	assert.Error(t, err)

	_, err = svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultHome, Credits: models.MaxCredits + 1,
	})
	assert.Error(t, err)
}

func TestSubmit_LockedThirtyMinutesBeforeKickoff(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")

	// inside the lock window
	locked := createMatch(t, db, 1, time.Now().Add(29*time.Minute))
	_, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: locked.ID, Pick: models.ResultHome, Credits: 1,
	})
	assert.EqualError(t, err, "pronostici chiusi per questa partita")

	// just outside it
	open := createMatch(t, db, 1, time.Now().Add(31*time.Minute))
	_, err = svc.Submit(user.ID, services.PredictionInput{
		MatchID: open.ID, Pick: models.ResultHome, Credits: 1,
	})
	assert.NoError(t, err)
}

func TestSubmit_UpdateRejectedOnceLocked(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	_, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultHome, Credits: 1,
	})
	require.NoError(t, err)

	// kick-off moved inside the lock window
	require.NoError(t, db.Model(match).
		Update("match_date", time.Now().Add(10*time.Minute)).Error)

	_, err = svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultAway, Credits: 1,
	})
	assert.EqualError(t, err, "pronostici chiusi per questa partita")
}

func TestSubmit_DayGateRequiresEarlierDayFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")

	day1 := []*models.Match{
		createMatch(t, db, 1, time.Now().Add(2*time.Hour)),
		createMatch(t, db, 1, time.Now().Add(3*time.Hour)),
		createMatch(t, db, 1, time.Now().Add(4*time.Hour)),
	}
	day2 := createMatch(t, db, 2, time.Now().Add(7*24*time.Hour))

	_, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: day2.ID, Pick: models.ResultHome, Credits: 1,
	})
	assert.EqualError(t, err, "completa prima i pronostici della giornata in corso")

	for _, m := range day1 {
		_, err := svc.Submit(user.ID, services.PredictionInput{
			MatchID: m.ID, Pick: models.ResultDraw, Credits: 1,
		})
		require.NoError(t, err)
	}

	_, err = svc.Submit(user.ID, services.PredictionInput{
		MatchID: day2.ID, Pick: models.ResultHome, Credits: 1,
	})
	assert.NoError(t, err)
}

func TestSubmit_DayGateSurfacesQueryErrors(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")
	createMatch(t, db, 1, time.Now().Add(2*time.Hour))
	day2 := createMatch(t, db, 2, time.Now().Add(7*24*time.Hour))

	// a broken predictions table must surface, not read as "zero picks placed"
	require.NoError(t, db.Migrator().DropTable(&models.Prediction{}))

	_, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: day2.ID, Pick: models.ResultHome, Credits: 1,
	})
	require.Error(t, err)
	assert.NotEqual(t, "completa prima i pronostici della giornata in corso", err.Error())
}

func TestListByUser_FlagsEditability(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")

	open := createMatch(t, db, 1, time.Now().Add(2*time.Hour))
	_, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: open.ID, Pick: models.ResultHome, Credits: 1,
	})
	require.NoError(t, err)

	// lock the match after the prediction was placed
	require.NoError(t, db.Model(open).
		Update("match_date", time.Now().Add(5*time.Minute)).Error)

	predictions, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.False(t, predictions[0].IsEditable)
}

func TestDeletePrediction_RejectedOnceLocked(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPredictionService(db)
	user := createUser(t, db, "I Bidoni")
	match := createMatch(t, db, 1, time.Now().Add(2*time.Hour))

	prediction, err := svc.Submit(user.ID, services.PredictionInput{
		MatchID: match.ID, Pick: models.ResultHome, Credits: 1,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(match).
		Update("match_date", time.Now().Add(5*time.Minute)).Error)

	err = svc.DeletePrediction(prediction.ID, user.ID)
	assert.EqualError(t, err, "pronostico non più modificabile")
}
