package services

import (
	"errors"

	"github.com/pici355/Match-predictory-sub000/internal/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type TeamInput struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Manager string `json:"manager"`
	Credits int    `json:"credits"`
}

func (s *TeamService) CreateTeam(input TeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, errors.New("nome squadra obbligatorio")
	}

	var existing models.Team
	if err := s.db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return nil, errors.New("nome squadra già in uso")
	}

	team := models.Team{
		Name:    input.Name,
		Logo:    input.Logo,
		Manager: input.Manager,
		Credits: input.Credits,
	}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) GetTeam(teamID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, errors.New("squadra non trovata")
	}
	return &team, nil
}

func (s *TeamService) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Order("name ASC").Find(&teams).Error
	return teams, err
}

func (s *TeamService) UpdateTeam(teamID uint, input TeamInput) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, errors.New("squadra non trovata")
	}

	team.Name = input.Name
	team.Manager = input.Manager
	team.Credits = input.Credits
	if input.Logo != "" {
		team.Logo = input.Logo
	}
	if err := s.db.Save(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) SetLogo(teamID uint, path string) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		return nil, errors.New("squadra non trovata")
	}

	team.Logo = path
	if err := s.db.Save(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) DeleteTeam(teamID uint) error {
	result := s.db.Delete(&models.Team{}, teamID)
	if result.RowsAffected == 0 {
		return errors.New("squadra non trovata")
	}
	return result.Error
}
