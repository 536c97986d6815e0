package handlers

import (
	"net/http"
	"strconv"

	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictionService *services.PredictionService
}

func NewPredictionHandler(predictionService *services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

type PredictionRequest struct {
	MatchID uint   `json:"match_id" binding:"required" example:"12"`
	Pick    string `json:"pick" binding:"required" example:"X"`
	Credits int    `json:"credits" binding:"required,min=1,max=10" example:"5"`
}

// Submit godoc
// @Summary      Submit or update a prediction
// @Description  One prediction per match per user; resubmitting updates it while still editable
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        request body PredictionRequest true "Prediction"
// @Success      200 {object} models.Prediction
// @Failure      400 {object} ErrorResponse
// @Router       /api/predictions [post]
func (h *PredictionHandler) Submit(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prediction, err := h.predictionService.Submit(userID, services.PredictionInput{
		MatchID: req.MatchID,
		Pick:    req.Pick,
		Credits: req.Credits,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// ListMine godoc
// @Summary      List the current user's predictions
// @Tags         predictions
// @Produce      json
// @Success      200 {array} models.Prediction
// @Router       /api/predictions/my [get]
func (h *PredictionHandler) ListMine(c *gin.Context) {
	userID := c.GetUint("user_id")

	predictions, err := h.predictionService.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, predictions)
}

func (h *PredictionHandler) ListByMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id partita non valido"})
		return
	}

	predictions, err := h.predictionService.ListByMatch(uint(matchID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, predictions)
}

func (h *PredictionHandler) ListByDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "giornata non valida"})
		return
	}

	predictions, err := h.predictionService.ListByDay(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, predictions)
}

func (h *PredictionHandler) Delete(c *gin.Context) {
	userID := c.GetUint("user_id")

	predictionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id pronostico non valido"})
		return
	}

	if err := h.predictionService.DeletePrediction(uint(predictionID), userID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "pronostico eliminato"})
}
