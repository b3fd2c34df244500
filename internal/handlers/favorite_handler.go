package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/repositories"
)

// FavoriteHandler handles HTTP requests related to favorites
type FavoriteHandler struct {
	favoriteRepository repositories.FavoriteRepository
	userRepository     repositories.UserRepository
	postRepository     repositories.PostRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteRepo repositories.FavoriteRepository, userRepo repositories.UserRepository, postRepo repositories.PostRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepository: favoriteRepo,
		userRepository:     userRepo,
		postRepository:     postRepo,
	}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/favorites/", h.CreateFavorite)
	g.GET("/favorites/", h.GetFavorites)
	g.GET("/users/:id/favorites", h.GetUserFavorites)
	g.DELETE("/favorites/:user_id/:post_id", h.DeleteFavorite)
}

// CreateFavorite favorites a post for a user. Re-favoriting the same pair
// overwrites the record and refreshes created_at.
func (h *FavoriteHandler) CreateFavorite(c echo.Context) error {
	var req models.CreateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if _, err := h.postRepository.GetPostByID(req.PostID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	favorite, err := h.favoriteRepository.PutFavorite(req.UserID, req.PostID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, favorite)
}

// GetFavorites retrieves all favorites
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	favorites, err := h.favoriteRepository.GetFavorites()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, favorites)
}

// GetUserFavorites retrieves one user's favorites. An unknown user yields an
// empty list.
func (h *FavoriteHandler) GetUserFavorites(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	favorites, err := h.favoriteRepository.GetFavoritesByUserID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, favorites)
}

// DeleteFavorite removes a favorite by its composite key
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	postID, err := strconv.Atoi(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.favoriteRepository.DeleteFavorite(userID, postID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Favorite not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Favorite deleted successfully"})
}
