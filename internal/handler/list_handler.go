package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"
	"hitbox/backend/internal/resolver"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// ListInput defines the structure for creating a list.
type ListInput struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
}

// AddGameInput defines the structure for adding a game to a list.
// Provider selects which catalog an external ID belongs to. GameID is
// a pointer so that a missing field fails binding instead of resolving
// the zero ref.
type AddGameInput struct {
	GameID   *resolver.GameRef `json:"gameId" binding:"required"`
	Provider string            `json:"provider" binding:"omitempty,oneof=igdb rawg"`
}

// ListResponse is a list without its entries.
type ListResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListDetailResponse is a list with its games in position order.
type ListDetailResponse struct {
	ListResponse
	Games []GameResponse `json:"games"`
}

func newListResponse(list models.List) ListResponse {
	return ListResponse{
		ID:          list.ID,
		UserID:      list.UserID,
		Name:        list.Name,
		Description: list.Description,
		IsDefault:   list.IsDefault,
		CreatedAt:   list.CreatedAt,
	}
}

// endregion

// region --- Handlers ---

// GetMyLists godoc
// @Summary      Get the caller's lists
// @Tags         lists
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   ListResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /lists [get]
func GetMyLists(c *gin.Context) {
	userID := c.GetUint("userID")

	var lists []models.List
	if err := database.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&lists).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	response := make([]ListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, newListResponse(list))
	}

	c.JSON(http.StatusOK, response)
}

// CreateList godoc
// @Summary      Create a list
// @Description  Creates a custom list. List names are unique per user.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input body ListInput true "List Info"
// @Success      201  {object}  ListResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or duplicate name"
// @Failure      401  {object}  ErrorResponse
// @Router       /lists [post]
func CreateList(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := models.List{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := database.DB.Create(&list).Error; err != nil {
		if isDuplicate(err) {
			apierr.Respond(c, apierr.Conflict("You already have a list with this name"))
			return
		}
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, newListResponse(list))
}

// GetList godoc
// @Summary      Get a list with its games
// @Tags         lists
// @Produce      json
// @Param        id path int true "List ID"
// @Success      200  {object}  ListDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /lists/{id} [get]
func GetList(c *gin.Context) {
	list, err := listByParam(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	detail, err := buildListDetail(*list)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// AddGameToList godoc
// @Summary      Add a game to a list
// @Description  Resolves the identifier (local, IGDB or RAWG) into a local record and appends it. A game appears at most once per list.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path int          true "List ID"
// @Param        input body AddGameInput true "Game to add"
// @Success      201  {object}  ListDetailResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or game already in list"
// @Failure      403  {object}  ErrorResponse "Not the list owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /lists/{id}/add [post]
func AddGameToList(c *gin.Context) {
	userID := c.GetUint("userID")

	list, err := listByParam(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if list.UserID != userID {
		apierr.Respond(c, apierr.Forbidden("You do not own this list"))
		return
	}

	var input AddGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref := *input.GameID
	if input.Provider == string(models.ProviderRAWG) {
		ref = ref.WithProvider(models.ProviderRAWG)
	}

	game, err := GameResolver.Resolve(c.Request.Context(), ref)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	var count int64
	if err := database.DB.Model(&models.ListGame{}).Where("list_id = ? AND game_id = ?", list.ID, game.ID).Count(&count).Error; err != nil {
		apierr.Respond(c, err)
		return
	}
	if count > 0 {
		apierr.Respond(c, apierr.Conflict("Game is already in this list"))
		return
	}

	// MAX, not COUNT: removals leave gaps, and a reused position would
	// make the order ambiguous.
	var maxPosition int
	err = database.DB.Model(&models.ListGame{}).
		Where("list_id = ?", list.ID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	entry := models.ListGame{
		ListID:   list.ID,
		GameID:   game.ID,
		Position: maxPosition + 1,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		if isDuplicate(err) {
			apierr.Respond(c, apierr.Conflict("Game is already in this list"))
			return
		}
		apierr.Respond(c, err)
		return
	}

	detail, err := buildListDetail(*list)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// RemoveGameFromList godoc
// @Summary      Remove a game from a list
// @Tags         lists
// @Produce      json
// @Security     TokenAuth
// @Param        id     path int    true "List ID"
// @Param        gameId path string true "Game ID (local UUID)"
// @Success      200  {object}  map[string]string "{"message": "Game removed"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /lists/{id}/games/{gameId} [delete]
func RemoveGameFromList(c *gin.Context) {
	userID := c.GetUint("userID")

	list, err := listByParam(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if list.UserID != userID {
		apierr.Respond(c, apierr.Forbidden("You do not own this list"))
		return
	}

	ref, err := resolver.ParseRef(c.Param("gameId"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	gameID, ok := localGameID(ref)
	if !ok {
		apierr.Respond(c, apierr.NotFound("Game is not in this list"))
		return
	}

	result := database.DB.Where("list_id = ? AND game_id = ?", list.ID, gameID).Delete(&models.ListGame{})
	if result.Error != nil {
		apierr.Respond(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		apierr.Respond(c, apierr.NotFound("Game is not in this list"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game removed"})
}

// DeleteList godoc
// @Summary      Delete a list
// @Description  Deletes a custom list and its entries. Default lists cannot be deleted.
// @Tags         lists
// @Produce      json
// @Security     TokenAuth
// @Param        id path int true "List ID"
// @Success      200  {object}  map[string]string "{"message": "List deleted"}"
// @Failure      400  {object}  ErrorResponse "Default lists cannot be deleted"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /lists/{id} [delete]
func DeleteList(c *gin.Context) {
	userID := c.GetUint("userID")

	list, err := listByParam(c)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if list.UserID != userID {
		apierr.Respond(c, apierr.Forbidden("You do not own this list"))
		return
	}
	if list.IsDefault {
		apierr.Respond(c, apierr.Validation("Default lists cannot be deleted"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.ListGame{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		// Hard delete so the name becomes reusable.
		return tx.Unscoped().Delete(list).Error
	})
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted"})
}

// endregion

// buildListDetail loads a list's entries in position order and expands
// each into its game.
func buildListDetail(list models.List) (ListDetailResponse, error) {
	var entries []models.ListGame
	if err := database.DB.Where("list_id = ?", list.ID).Order("position ASC").Find(&entries).Error; err != nil {
		return ListDetailResponse{}, err
	}

	games := make([]GameResponse, 0, len(entries))
	for _, entry := range entries {
		var game models.Game
		if err := database.DB.First(&game, "id = ?", entry.GameID).Error; err != nil {
			continue
		}
		games = append(games, newGameResponse(game))
	}

	return ListDetailResponse{
		ListResponse: newListResponse(list),
		Games:        games,
	}, nil
}

// listByParam loads the list named by the :id path parameter.
func listByParam(c *gin.Context) (*models.List, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, apierr.Validation("Invalid list ID")
	}

	var list models.List
	if err := database.DB.First(&list, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("List not found")
		}
		return nil, err
	}
	return &list, nil
}
