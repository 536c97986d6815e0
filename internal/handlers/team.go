package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamService *services.TeamService
	uploadDir   string
}

func NewTeamHandler(teamService *services.TeamService, uploadDir string) *TeamHandler {
	return &TeamHandler{teamService: teamService, uploadDir: uploadDir}
}

type TeamRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100" example:"Real Scampia"`
	Logo    string `json:"logo" example:"/uploads/logo.png"`
	Manager string `json:"manager" example:"Gennaro"`
	Credits int    `json:"credits" example:"0"`
}

func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id squadra non valido"})
		return
	}

	team, err := h.teamService.GetTeam(uint(teamID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(services.TeamInput{
		Name:    req.Name,
		Logo:    req.Logo,
		Manager: req.Manager,
		Credits: req.Credits,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id squadra non valido"})
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(uint(teamID), services.TeamInput{
		Name:    req.Name,
		Logo:    req.Logo,
		Manager: req.Manager,
		Credits: req.Credits,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id squadra non valido"})
		return
	}

	if err := h.teamService.DeleteTeam(uint(teamID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "squadra eliminata"})
}

// UploadLogo godoc
// @Summary      Upload a team logo (admin)
// @Tags         teams
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Team ID"
// @Param        file formData file true "Logo image"
// @Success      200 {object} models.Team
// @Failure      400 {object} ErrorResponse
// @Router       /api/teams/{id}/logo [post]
func (h *TeamHandler) UploadLogo(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id squadra non valido"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file mancante"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".gif" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "formato immagine non supportato"})
		return
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "salvataggio file fallito"})
		return
	}

	team, err := h.teamService.SetLogo(uint(teamID), "/uploads/"+filename)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}
