package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/repositories"
)

// PostCategoryHandler handles attaching categories to posts. The attachment
// is a value snapshot of the category frozen at attach time, not a link.
type PostCategoryHandler struct {
	postRepository     repositories.PostRepository
	categoryRepository repositories.CategoryRepository
}

// NewPostCategoryHandler creates a new PostCategoryHandler
func NewPostCategoryHandler(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository) *PostCategoryHandler {
	return &PostCategoryHandler{
		postRepository:     postRepo,
		categoryRepository: categoryRepo,
	}
}

// RegisterPostCategoryRoutes registers post-category routes
func (h *PostCategoryHandler) RegisterPostCategoryRoutes(g *echo.Group) {
	g.POST("/post_categories/", h.AttachCategory)
	g.GET("/posts/:id/categories", h.GetPostCategories)
}

// AttachCategory snapshots a category into a post's category list. An
// identical snapshot already present is left alone, so attaching twice keeps
// exactly one entry.
func (h *PostCategoryHandler) AttachCategory(c echo.Context) error {
	var req models.AttachCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.postRepository.GetPostByID(req.PostID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	category, err := h.categoryRepository.GetCategoryByID(req.CategoryID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.postRepository.AttachCategory(req.PostID, *category); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Category added to post"})
}

// GetPostCategories retrieves the snapshots attached to a post in attachment
// order
func (h *PostCategoryHandler) GetPostCategories(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	categories, err := h.postRepository.GetPostCategories(id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, categories)
}
