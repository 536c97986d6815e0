package services_test

import (
	"testing"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Match{},
		&models.Prediction{},
		&models.Team{},
		&models.PrizeDistribution{},
		&models.WinnerPayout{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, PIN: "1234"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createMatch(t *testing.T, db *gorm.DB, day int, kickoff time.Time) *models.Match {
	t.Helper()

	match := models.Match{
		HomeTeam:  "Casa",
		AwayTeam:  "Trasferta",
		MatchDate: kickoff,
		MatchDay:  day,
	}
	require.NoError(t, db.Create(&match).Error)
	return &match
}
