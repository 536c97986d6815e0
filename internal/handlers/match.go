package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pici355/Match-predictory-sub000/internal/services"
	"github.com/pici355/Match-predictory-sub000/internal/ws"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
	hub          *ws.Hub
}

func NewMatchHandler(matchService *services.MatchService, hub *ws.Hub) *MatchHandler {
	return &MatchHandler{matchService: matchService, hub: hub}
}

type MatchRequest struct {
	HomeTeam    string    `json:"home_team" binding:"required" example:"Juventus"`
	AwayTeam    string    `json:"away_team" binding:"required" example:"Inter"`
	MatchDate   time.Time `json:"match_date" binding:"required" example:"2025-09-14T20:45:00Z"`
	MatchDay    int       `json:"match_day" binding:"required,min=1" example:"3"`
	Description string    `json:"description" example:"big match"`
}

type ResultRequest struct {
	Result string `json:"result" binding:"required" example:"1"`
}

func (r MatchRequest) toInput() services.MatchInput {
	return services.MatchInput{
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		MatchDate:   r.MatchDate,
		MatchDay:    r.MatchDay,
		Description: r.Description,
	}
}

// ListMatches godoc
// @Summary      List all matches
// @Description  Optionally filtered by match day with ?day=N
// @Tags         matches
// @Produce      json
// @Success      200 {array} models.Match
// @Router       /api/matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	if dayParam := c.Query("day"); dayParam != "" {
		day, err := strconv.Atoi(dayParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "giornata non valida"})
			return
		}
		matches, err := h.matchService.ListMatchesByDay(day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, matches)
		return
	}

	matches, err := h.matchService.ListMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id partita non valido"})
		return
	}

	match, err := h.matchService.GetMatch(uint(matchID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, match)
}

// CreateMatch godoc
// @Summary      Create a match (admin)
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        request body MatchRequest true "Match data"
// @Success      201 {object} models.Match
// @Failure      400 {object} ErrorResponse
// @Router       /api/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req.toInput())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventMatchesUpdate)
	c.JSON(http.StatusCreated, match)
}

func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id partita non valido"})
		return
	}

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatch(uint(matchID), req.toInput())
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventMatchesUpdate)
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id partita non valido"})
		return
	}

	if err := h.matchService.DeleteMatch(uint(matchID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventMatchesUpdate)
	c.JSON(http.StatusOK, MessageResponse{Message: "partita eliminata"})
}

// SetResult godoc
// @Summary      Post a match result (admin)
// @Description  Stores the outcome and flags every prediction correct/incorrect
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        id path int true "Match ID"
// @Param        request body ResultRequest true "Result"
// @Success      200 {object} models.Match
// @Failure      400 {object} ErrorResponse
// @Router       /api/matches/{id}/result [post]
func (h *MatchHandler) SetResult(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id partita non valido"})
		return
	}

	var req ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	match, err := h.matchService.SetResult(uint(matchID), req.Result)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventLeaderboardUpdate)
	c.JSON(http.StatusOK, match)
}

// UploadMatches godoc
// @Summary      Import matches from a CSV spreadsheet (admin)
// @Description  Columns: homeTeam, awayTeam, matchDate, matchDay, optional description
// @Tags         matches
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/matches/upload [post]
func (h *MatchHandler) UploadMatches(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file mancante"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file non leggibile"})
		return
	}
	defer file.Close()

	count, err := h.matchService.ImportCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventMatchesUpdate)
	c.JSON(http.StatusCreated, MessageResponse{Message: "importate " + strconv.Itoa(count) + " partite"})
}
