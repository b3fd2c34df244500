package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/repositories"
)

// ViewHandler serves the HTML pages and their form submissions
type ViewHandler struct {
	postRepository     repositories.PostRepository
	userRepository     repositories.UserRepository
	commentRepository  repositories.CommentRepository
	categoryRepository repositories.CategoryRepository
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, commentRepo repositories.CommentRepository, categoryRepo repositories.CategoryRepository) *ViewHandler {
	return &ViewHandler{
		postRepository:     postRepo,
		userRepository:     userRepo,
		commentRepository:  commentRepo,
		categoryRepository: categoryRepo,
	}
}

// RegisterViewRoutes registers the HTML routes at the server root
func (h *ViewHandler) RegisterViewRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/posts/create", h.CreatePostPage)
	e.POST("/posts/create", h.CreatePostForm)
	e.GET("/posts/edit/:id", h.EditPostPage)
	e.POST("/posts/edit/:id", h.EditPostForm)
	e.GET("/posts/:id", h.PostPage)
}

// Index lists all posts with resolved author names
func (h *ViewHandler) Index(c echo.Context) error {
	posts, err := h.postRepository.GetPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	users, _ := h.userRepository.GetUsers()
	categories, _ := h.categoryRepository.GetCategories()

	resp := make([]models.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, models.PostResponse{Post: p, AuthorName: h.authorName(p.AuthorID)})
	}

	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"Posts":      resp,
		"Users":      users,
		"Categories": categories,
	})
}

// CreatePostPage renders the post creation form
func (h *ViewHandler) CreatePostPage(c echo.Context) error {
	users, _ := h.userRepository.GetUsers()
	categories, _ := h.categoryRepository.GetCategories()

	return c.Render(http.StatusOK, "create_post.html", map[string]interface{}{
		"Users":      users,
		"Categories": categories,
	})
}

// CreatePostForm handles the post creation form submission
func (h *ViewHandler) CreatePostForm(c echo.Context) error {
	authorID, err := strconv.Atoi(c.FormValue("author_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid author ID")
	}
	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and content are required")
	}

	if _, err := h.userRepository.GetUserByID(authorID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Author not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	req := models.CreatePostRequest{AuthorID: authorID, Title: title, Content: content}
	if _, err := h.postRepository.CreatePost(&req); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// EditPostPage renders the post edit form
func (h *ViewHandler) EditPostPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	users, _ := h.userRepository.GetUsers()

	return c.Render(http.StatusOK, "edit_post.html", map[string]interface{}{
		"Post":  post,
		"Users": users,
	})
}

// EditPostForm handles the post edit form submission
func (h *ViewHandler) EditPostForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and content are required")
	}

	req := models.UpdatePostRequest{Title: title, Content: content}
	if _, err := h.postRepository.UpdatePost(id, &req); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// PostPage renders a single post with its comments
func (h *ViewHandler) PostPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByPostID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	commentResp := make([]models.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		name := "Unknown"
		if user, err := h.userRepository.GetUserByID(cm.UserID); err == nil {
			name = user.Login
		}
		commentResp = append(commentResp, models.CommentResponse{Comment: cm, AuthorName: name})
	}
	users, _ := h.userRepository.GetUsers()

	return c.Render(http.StatusOK, "post.html", map[string]interface{}{
		"Post":       post,
		"AuthorName": h.authorName(post.AuthorID),
		"Comments":   commentResp,
		"Users":      users,
	})
}

func (h *ViewHandler) authorName(id int) string {
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return "Unknown"
	}
	return user.Login
}
