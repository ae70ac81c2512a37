package handler

import (
	"errors"
	"net/http"
	"time"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"
	"hitbox/backend/internal/resolver"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// region --- DTOs ---

// StatusInput defines the structure for setting a game status. GameID
// is a pointer so that a missing field fails binding instead of
// resolving the zero ref.
type StatusInput struct {
	GameID *resolver.GameRef `json:"gameId" binding:"required"`
	Status models.Status     `json:"status" binding:"required"`
}

// StatusResponse is a game status as the API serves it.
type StatusResponse struct {
	Status    models.Status `json:"status"`
	GameID    uuid.UUID     `json:"game"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newStatusResponse(status models.GameStatus) StatusResponse {
	return StatusResponse{
		Status:    status.Status,
		GameID:    status.GameID,
		UpdatedAt: status.UpdatedAt,
	}
}

// endregion

// region --- Handlers ---

// GetMyStatuses godoc
// @Summary      Get the caller's game statuses
// @Tags         game-status
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   StatusResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /game-status [get]
func GetMyStatuses(c *gin.Context) {
	userID := c.GetUint("userID")

	var statuses []models.GameStatus
	if err := database.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&statuses).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	response := make([]StatusResponse, 0, len(statuses))
	for _, status := range statuses {
		response = append(response, newStatusResponse(status))
	}

	c.JSON(http.StatusOK, response)
}

// SetGameStatus godoc
// @Summary      Set a game status
// @Description  Upserts the caller's status for a game, resolving external IDs into local records. Re-setting the same status is idempotent.
// @Tags         game-status
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input body StatusInput true "Status Info"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /game-status [post]
func SetGameStatus(c *gin.Context) {
	userID := c.GetUint("userID")

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Status.Valid() {
		apierr.Respond(c, apierr.Validation("Status must be one of: played, playing, want_to_play"))
		return
	}

	game, err := GameResolver.Resolve(c.Request.Context(), *input.GameID)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	var status models.GameStatus
	err = database.DB.Where("user_id = ? AND game_id = ?", userID, game.ID).First(&status).Error
	switch {
	case err == nil:
		status.Status = input.Status
		if err := database.DB.Save(&status).Error; err != nil {
			apierr.Respond(c, err)
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = models.GameStatus{
			UserID: userID,
			GameID: game.ID,
			Status: input.Status,
		}
		if err := database.DB.Create(&status).Error; err != nil {
			// A concurrent set for the same (user, game) won; update it.
			if isDuplicate(err) {
				if err := database.DB.Where("user_id = ? AND game_id = ?", userID, game.ID).First(&status).Error; err != nil {
					apierr.Respond(c, err)
					return
				}
				status.Status = input.Status
				if err := database.DB.Save(&status).Error; err != nil {
					apierr.Respond(c, err)
					return
				}
			} else {
				apierr.Respond(c, err)
				return
			}
		}
	default:
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatusResponse(status))
}

// GetGameStatus godoc
// @Summary      Get the caller's status for one game
// @Tags         game-status
// @Produce      json
// @Security     TokenAuth
// @Param        gameId path string true "Game ID (UUID or IGDB ID)"
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No status set"
// @Router       /game-status/game/{gameId} [get]
func GetGameStatus(c *gin.Context) {
	userID := c.GetUint("userID")

	ref, err := resolver.ParseRef(c.Param("gameId"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	gameID, ok := localGameID(ref)
	if !ok {
		apierr.Respond(c, apierr.NotFound("No status set for this game"))
		return
	}

	var status models.GameStatus
	if err := database.DB.Where("user_id = ? AND game_id = ?", userID, gameID).First(&status).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("No status set for this game"))
		return
	}

	c.JSON(http.StatusOK, newStatusResponse(status))
}

// DeleteGameStatus godoc
// @Summary      Remove the caller's status for a game
// @Description  Removing an absent status succeeds as a no-op.
// @Tags         game-status
// @Produce      json
// @Security     TokenAuth
// @Param        gameId path string true "Game ID (UUID or IGDB ID)"
// @Success      200  {object}  map[string]string "{"message": "Status removed"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /game-status/{gameId} [delete]
func DeleteGameStatus(c *gin.Context) {
	userID := c.GetUint("userID")

	ref, err := resolver.ParseRef(c.Param("gameId"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	gameID, ok := localGameID(ref)
	if ok {
		err := database.DB.Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&models.GameStatus{}).Error
		if err != nil {
			apierr.Respond(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status removed"})
}

// GetStatusCounts godoc
// @Summary      Get the caller's status counts
// @Description  Counts the caller's games per status. Absent statuses report zero.
// @Tags         game-status
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  ErrorResponse
// @Router       /game-status/counts [get]
func GetStatusCounts(c *gin.Context) {
	userID := c.GetUint("userID")

	type row struct {
		Status models.Status
		Count  int64
	}
	var rows []row
	err := database.DB.Model(&models.GameStatus{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	counts := make(map[models.Status]int64, len(models.Statuses))
	for _, status := range models.Statuses {
		counts[status] = 0
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}

	c.JSON(http.StatusOK, counts)
}

// endregion
