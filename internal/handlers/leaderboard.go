package handlers

import (
	"net/http"

	"github.com/pici355/Match-predictory-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary      Ranking of users by correct predictions
// @Description  mode=current limits to the latest match day, mode=overall spans everything
// @Tags         leaderboard
// @Produce      json
// @Param        mode query string false "current or overall" default(overall)
// @Success      200 {array} services.LeaderboardEntry
// @Failure      400 {object} ErrorResponse
// @Router       /api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	mode := c.DefaultQuery("mode", services.LeaderboardOverall)

	entries, err := h.leaderboardService.GetLeaderboard(mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
