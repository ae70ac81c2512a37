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

// ReviewInput defines the structure for creating a review. GameID may
// be a local UUID or an external catalog ID. A pointer so that a
// missing field fails binding instead of resolving the zero ref.
type ReviewInput struct {
	GameID *resolver.GameRef `json:"gameId" binding:"required"`
	Rating int               `json:"rating" binding:"required,min=1,max=5"`
	Text   string            `json:"text" binding:"max=5000"`
}

// ReviewResponse is a review as the API serves it.
type ReviewResponse struct {
	ID        uint      `json:"id"`
	GameID    uuid.UUID `json:"game_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newReviewResponse(review models.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		GameID:    review.GameID,
		UserID:    review.UserID,
		Username:  username,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

// endregion

// region --- Handlers ---

// CreateReview godoc
// @Summary      Create a review
// @Description  Creates the caller's review for a game, resolving external IDs into local records. A user reviews a game at most once. The game's average rating is recomputed.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input body ReviewInput true "Review Info"
// @Success      201  {object}  ReviewResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or already reviewed"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /reviews [post]
func CreateReview(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := GameResolver.Resolve(c.Request.Context(), *input.GameID)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	var existing models.Review
	err = database.DB.Where("user_id = ? AND game_id = ?", userID, game.ID).First(&existing).Error
	if err == nil {
		apierr.Respond(c, apierr.Conflict("You have already reviewed this game"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		apierr.Respond(c, err)
		return
	}

	review := models.Review{
		UserID: userID,
		GameID: game.ID,
		Rating: input.Rating,
		Text:   input.Text,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		if isDuplicate(err) {
			apierr.Respond(c, apierr.Conflict("You have already reviewed this game"))
			return
		}
		apierr.Respond(c, err)
		return
	}

	if err := recomputeAverageRating(database.DB, game.ID); err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReviewResponse(review, ""))
}

// GetGameReviews godoc
// @Summary      List reviews for a game
// @Tags         reviews
// @Produce      json
// @Param        gameId path string true "Game ID (UUID or IGDB ID)"
// @Success      200  {array}   ReviewResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /reviews/game/{gameId} [get]
func GetGameReviews(c *gin.Context) {
	ref, err := resolver.ParseRef(c.Param("gameId"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	// A game with no local record has no reviews.
	gameID, ok := localGameID(ref)
	if !ok {
		c.JSON(http.StatusOK, []ReviewResponse{})
		return
	}

	var reviews []models.Review
	if err := database.DB.Where("game_id = ?", gameID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		var user models.User
		username := ""
		if err := database.DB.First(&user, review.UserID).Error; err == nil {
			username = user.Username
		}
		response = append(response, newReviewResponse(review, username))
	}

	c.JSON(http.StatusOK, response)
}

// endregion

// region --- Helpers ---

// recomputeAverageRating persists the full arithmetic mean of a game's
// ratings. Recomputed from scratch on every review, not incrementally.
func recomputeAverageRating(db *gorm.DB, gameID uuid.UUID) error {
	var average float64
	err := db.Model(&models.Review{}).
		Where("game_id = ?", gameID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error
	if err != nil {
		return err
	}

	return db.Model(&models.Game{}).
		Where("id = ?", gameID).
		Update("average_rating", average).Error
}

// localGameID maps a ref to the cached game row it names, without
// creating one.
func localGameID(ref resolver.GameRef) (uuid.UUID, bool) {
	if ref.IsLocal() {
		return ref.LocalID(), true
	}

	provider, externalID := ref.External()
	column := "igdb_id"
	if provider == models.ProviderRAWG {
		column = "rawg_id"
	}

	var game models.Game
	if err := database.DB.Where(column+" = ?", externalID).First(&game).Error; err != nil {
		return uuid.Nil, false
	}
	return game.ID, true
}

// endregion
