package handler

import (
	"net/http"
	"time"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"
	"hitbox/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"testuser"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	Bio            *string `json:"bio" binding:"omitempty,max=1000"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,max=512"`
}

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID             uint      `json:"id" example:"1"`
	Username       string    `json:"username" example:"testuser"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	JoinedAt       time.Time `json:"joined_at"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID             uint      `json:"id" example:"1"`
	Username       string    `json:"username" example:"testuser"`
	Email          string    `json:"email" example:"test@example.com"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	JoinedAt       time.Time `json:"joined_at"`
}

// MemberGame is a recently reviewed game shown on the members page.
type MemberGame struct {
	GameID   uuid.UUID `json:"game_id"`
	Title    string    `json:"title"`
	CoverURL string    `json:"cover_url"`
	Rating   int       `json:"rating"`
}

// MemberResponse is one row of the member listing.
type MemberResponse struct {
	ID             uint         `json:"id"`
	Username       string       `json:"username"`
	ProfilePicture string       `json:"profile_picture"`
	ReviewCount    int64        `json:"review_count"`
	ListCount      int64        `json:"list_count"`
	RecentGames    []MemberGame `json:"recent_games"`
	JoinedAt       time.Time    `json:"joined_at"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

func newPublicUserResponse(user models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		JoinedAt:       user.CreatedAt,
	}
}

func newPrivateUserResponse(user models.User) PrivateUserResponse {
	return PrivateUserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		JoinedAt:       user.CreatedAt,
	}
}

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user with a default Favorites list and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		apierr.Respond(c, apierr.Wrap(apierr.KindInternal, "Failed to hash password", err))
		return
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		favorites := models.List{
			UserID:    user.ID,
			Name:      "Favorites",
			IsDefault: true,
		}
		return tx.Create(&favorites).Error
	})
	if err != nil {
		apierr.Respond(c, apierr.Wrap(apierr.KindInternal, "Failed to create user", err))
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		apierr.Respond(c, apierr.Wrap(apierr.KindInternal, "Failed to generate token", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", input.Login, input.Login).First(&user).Error; err != nil {
		apierr.Respond(c, apierr.Unauthorized("Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		apierr.Respond(c, apierr.Unauthorized("Invalid credentials"))
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		apierr.Respond(c, apierr.Wrap(apierr.KindInternal, "Failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Revokes the presented session token.
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  map[string]string "{"message": "Logged out"}"
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/logout [post]
func LogoutUser(c *gin.Context) {
	userID := c.GetUint("userID")
	tokenString := c.GetString("token")

	_, expiresAt, err := jwt.ParseToken(tokenString)
	if err != nil {
		apierr.Respond(c, apierr.Unauthorized("Invalid token."))
		return
	}

	revoked := models.BlacklistedToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	// An already-blacklisted token makes logout a no-op.
	if err := database.DB.Create(&revoked).Error; err != nil && !isDuplicate(err) {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMe godoc
// @Summary      Get current user's profile
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func GetMe(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, newPrivateUserResponse(user))
}

// UpdateMe godoc
// @Summary      Update current user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input body UpdateProfileInput true "Profile fields"
// @Success      200  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [put]
func UpdateMe(c *gin.Context) {
	userID := c.GetUint("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		apierr.Respond(c, apierr.NotFound("User not found"))
		return
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}

	if err := database.DB.Save(&user).Error; err != nil {
		if isDuplicate(err) {
			apierr.Respond(c, apierr.Conflict("Email already in use"))
			return
		}
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, newPrivateUserResponse(user))
}

// endregion

// region --- User Handlers ---

// GetMembers godoc
// @Summary      List members
// @Description  Lists users with review/list counts and up to 4 most recently reviewed games, sorted by review count or join date.
// @Tags         users
// @Produce      json
// @Param        sort  query     string  false  "Sort criterion: reviews or newest" default(reviews)
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(20)
// @Success      200   {object}  PaginatedResponse[MemberResponse]
// @Router       /users [get]
func GetMembers(c *gin.Context) {
	page, limit := pageParams(c)

	query := database.DB.Model(&models.User{})
	switch c.DefaultQuery("sort", "reviews") {
	case "newest":
		query = query.Order("created_at DESC")
	default:
		query = query.Order("(SELECT COUNT(*) FROM reviews WHERE reviews.user_id = users.id AND reviews.deleted_at IS NULL) DESC")
	}

	result, err := Paginate[models.User](query, page, limit)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	members := make([]MemberResponse, 0, len(result.Data))
	for _, user := range result.Data {
		member, err := buildMemberResponse(user)
		if err != nil {
			apierr.Respond(c, err)
			return
		}
		members = append(members, member)
	}

	c.JSON(http.StatusOK, PaginatedResponse[MemberResponse]{Data: members, Meta: result.Meta})
}

// GetUserByUsername godoc
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  PublicUserResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username} [get]
func GetUserByUsername(c *gin.Context) {
	user, err := userByUsername(c.Param("username"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, newPublicUserResponse(*user))
}

// GetUserReviews godoc
// @Summary      Get a user's reviews
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {array}   ReviewResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username}/reviews [get]
func GetUserReviews(c *gin.Context) {
	user, err := userByUsername(c.Param("username"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	var reviews []models.Review
	if err := database.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, newReviewResponse(review, user.Username))
	}

	c.JSON(http.StatusOK, response)
}

// GetUserLists godoc
// @Summary      Get a user's lists
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {array}   ListResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username}/lists [get]
func GetUserLists(c *gin.Context) {
	user, err := userByUsername(c.Param("username"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	var lists []models.List
	if err := database.DB.Where("user_id = ?", user.ID).Order("created_at ASC").Find(&lists).Error; err != nil {
		apierr.Respond(c, err)
		return
	}

	response := make([]ListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, newListResponse(list))
	}

	c.JSON(http.StatusOK, response)
}

// endregion

// region --- Helpers ---

func userByUsername(username string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apierr.NotFound("User not found")
	}
	return &user, nil
}

// buildMemberResponse aggregates one user's counts and their four most
// recently reviewed games.
func buildMemberResponse(user models.User) (MemberResponse, error) {
	var reviewCount, listCount int64
	if err := database.DB.Model(&models.Review{}).Where("user_id = ?", user.ID).Count(&reviewCount).Error; err != nil {
		return MemberResponse{}, err
	}
	if err := database.DB.Model(&models.List{}).Where("user_id = ?", user.ID).Count(&listCount).Error; err != nil {
		return MemberResponse{}, err
	}

	var recent []models.Review
	if err := database.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Limit(4).Find(&recent).Error; err != nil {
		return MemberResponse{}, err
	}

	games := make([]MemberGame, 0, len(recent))
	for _, review := range recent {
		var game models.Game
		if err := database.DB.First(&game, "id = ?", review.GameID).Error; err != nil {
			continue
		}
		games = append(games, MemberGame{
			GameID:   game.ID,
			Title:    game.Title,
			CoverURL: game.CoverURL,
			Rating:   review.Rating,
		})
	}

	return MemberResponse{
		ID:             user.ID,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		ReviewCount:    reviewCount,
		ListCount:      listCount,
		RecentGames:    games,
		JoinedAt:       user.CreatedAt,
	}, nil
}

// endregion
