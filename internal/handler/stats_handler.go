package handler

import (
	"net/http"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// StatsResponse carries the global record counts.
type StatsResponse struct {
	Users    int64 `json:"users"`
	Games    int64 `json:"games"`
	Reviews  int64 `json:"reviews"`
	Lists    int64 `json:"lists"`
	Comments int64 `json:"comments"`
}

// GetStats godoc
// @Summary      Global statistics
// @Description  Returns site-wide record counts.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func GetStats(c *gin.Context) {
	var stats StatsResponse

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Game{}, &stats.Games},
		{&models.Review{}, &stats.Reviews},
		{&models.List{}, &stats.Lists},
		{&models.Comment{}, &stats.Comments},
	}
	for _, count := range counts {
		if err := database.DB.Model(count.model).Count(count.dest).Error; err != nil {
			apierr.Respond(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, stats)
}
