package handlers

import (
	"net/http"
	"strconv"

	"github.com/pici355/Match-predictory-sub000/internal/services"
	"github.com/pici355/Match-predictory-sub000/internal/ws"

	"github.com/gin-gonic/gin"
)

type PrizeHandler struct {
	prizeService *services.PrizeService
	hub          *ws.Hub
}

func NewPrizeHandler(prizeService *services.PrizeService, hub *ws.Hub) *PrizeHandler {
	return &PrizeHandler{prizeService: prizeService, hub: hub}
}

func (h *PrizeHandler) ListDistributions(c *gin.Context) {
	distributions, err := h.prizeService.ListDistributions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, distributions)
}

// GetDay godoc
// @Summary      Prize computation for a match day
// @Description  Pot, per-user percentages and tier classification; payouts if distributed
// @Tags         prizes
// @Produce      json
// @Param        day path int true "Match day"
// @Success      200 {object} services.DayComputation
// @Failure      404 {object} ErrorResponse
// @Router       /api/prizes/{day} [get]
func (h *PrizeHandler) GetDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "giornata non valida"})
		return
	}

	comp, err := h.prizeService.ComputeDay(day)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, comp)
}

func (h *PrizeHandler) ListDayPayouts(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "giornata non valida"})
		return
	}

	payouts, err := h.prizeService.ListPayoutsByDay(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, payouts)
}

// Distribute godoc
// @Summary      Distribute prizes for a match day (admin)
// @Description  Idempotent: a day already distributed returns the stored record
// @Tags         prizes
// @Produce      json
// @Param        day path int true "Match day"
// @Success      200 {object} models.PrizeDistribution
// @Failure      400 {object} ErrorResponse
// @Router       /api/prizes/{day}/distribute [post]
func (h *PrizeHandler) Distribute(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "giornata non valida"})
		return
	}

	dist, err := h.prizeService.Distribute(day)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventLeaderboardUpdate)
	c.JSON(http.StatusOK, dist)
}

func (h *PrizeHandler) ListMyPayouts(c *gin.Context) {
	userID := c.GetUint("user_id")

	payouts, err := h.prizeService.ListPayoutsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, payouts)
}
