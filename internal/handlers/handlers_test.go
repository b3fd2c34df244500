package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/web-project/backend/internal/router"
	"github.com/web-project/backend/internal/store"
	"github.com/web-project/backend/validators"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, st.Load())

	e := echo.New()
	router.SetupRoutes(e, st)
	e.Validator = validators.NewValidator()
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createUser(t *testing.T, e *echo.Echo, email, login string) int {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/users/",
		`{"email": "`+email+`", "login": "`+login+`", "password": "p"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int(decode(t, rec)["id"].(float64))
}

func createPost(t *testing.T, e *echo.Echo, authorID int) int {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/posts/",
		`{"author_id": `+jsonNumber(authorID)+`, "title": "T", "content": "C"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int(decode(t, rec)["id"].(float64))
}

func jsonNumber(n int) string {
	return strconv.Itoa(n)
}

func TestUserLifecycle(t *testing.T) {
	e := newTestServer(t)

	id := createUser(t, e, "a@x.com", "alice")
	assert.Equal(t, 1, id)

	rec := doJSON(e, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "alice", user["login"])
	assert.Equal(t, user["created_at"], user["updated_at"])

	rec = doJSON(e, http.MethodPut, "/api/users/1", `{"login": "alice2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice2", decode(t, rec)["login"])
	assert.Equal(t, "a@x.com", decode(t, rec)["email"])

	rec = doJSON(e, http.MethodDelete, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", decode(t, rec)["message"])

	rec = doJSON(e, http.MethodGet, "/api/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEndOrphanPostShowsUnknownAuthor(t *testing.T) {
	e := newTestServer(t)

	userID := createUser(t, e, "a@x.com", "alice")
	require.Equal(t, 1, userID)
	postID := createPost(t, e, userID)
	require.Equal(t, 1, postID)

	rec := doJSON(e, http.MethodGet, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	post := decode(t, rec)
	assert.Equal(t, "T", post["title"])
	assert.Equal(t, float64(1), post["author_id"])
	assert.Equal(t, "alice", post["author_name"])

	rec = doJSON(e, http.MethodDelete, "/api/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// The post survives the author; its display name degrades.
	rec = doJSON(e, http.MethodGet, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Unknown", decode(t, rec)["author_name"])

	rec = doJSON(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown")
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/posts/", `{"author_id": 7, "title": "T", "content": "C"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentDenormalizesAuthorName(t *testing.T) {
	e := newTestServer(t)

	author := createUser(t, e, "a@x.com", "alice")
	commenter := createUser(t, e, "b@x.com", "bob")
	postID := createPost(t, e, author)

	rec := doJSON(e, http.MethodPost, "/api/comments/",
		`{"post_id": `+jsonNumber(postID)+`, "user_id": `+jsonNumber(commenter)+`, "content": "hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/posts/1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decodeList(t, rec)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0]["author_name"])

	doJSON(e, http.MethodDelete, "/api/users/"+jsonNumber(commenter), "")

	rec = doJSON(e, http.MethodGet, "/api/posts/1/comments", "")
	comments = decodeList(t, rec)
	require.Len(t, comments, 1)
	assert.Equal(t, "Unknown", comments[0]["author_name"])
}

func TestFavoriteTwiceKeepsOneRecord(t *testing.T) {
	e := newTestServer(t)

	userID := createUser(t, e, "a@x.com", "alice")
	postID := createPost(t, e, userID)
	body := `{"user_id": ` + jsonNumber(userID) + `, "post_id": ` + jsonNumber(postID) + `}`

	rec := doJSON(e, http.MethodPost, "/api/favorites/", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = doJSON(e, http.MethodPost, "/api/favorites/", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/favorites/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = doJSON(e, http.MethodDelete, "/api/favorites/1/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/api/favorites/1/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelfSubscriptionRejected(t *testing.T) {
	e := newTestServer(t)

	userID := createUser(t, e, "a@x.com", "alice")
	rec := doJSON(e, http.MethodPost, "/api/subscriptions/",
		`{"subscriber_id": `+jsonNumber(userID)+`, "target_user_id": `+jsonNumber(userID)+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionUnknownTarget(t *testing.T) {
	e := newTestServer(t)

	userID := createUser(t, e, "a@x.com", "alice")
	rec := doJSON(e, http.MethodPost, "/api/subscriptions/",
		`{"subscriber_id": `+jsonNumber(userID)+`, "target_user_id": 9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubscriptionListings(t *testing.T) {
	e := newTestServer(t)

	alice := createUser(t, e, "a@x.com", "alice")
	bob := createUser(t, e, "b@x.com", "bob")

	rec := doJSON(e, http.MethodPost, "/api/subscriptions/",
		`{"subscriber_id": `+jsonNumber(alice)+`, "target_user_id": `+jsonNumber(bob)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/api/users/1/subscriptions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = doJSON(e, http.MethodGet, "/api/users/2/subscribers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = doJSON(e, http.MethodGet, "/api/users/2/subscriptions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))
}

func TestAttachCategoryDeduplicates(t *testing.T) {
	e := newTestServer(t)

	userID := createUser(t, e, "a@x.com", "alice")
	postID := createPost(t, e, userID)

	rec := doJSON(e, http.MethodPost, "/api/categories/", `{"name": "go"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/categories/", `{"name": "web", "description": "general"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	attach := func(categoryID int) *httptest.ResponseRecorder {
		return doJSON(e, http.MethodPost, "/api/post_categories/",
			`{"post_id": `+jsonNumber(postID)+`, "category_id": `+jsonNumber(categoryID)+`}`)
	}
	require.Equal(t, http.StatusOK, attach(1).Code)
	require.Equal(t, http.StatusOK, attach(1).Code)
	require.Equal(t, http.StatusOK, attach(2).Code)

	rec = doJSON(e, http.MethodGet, "/api/posts/1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decodeList(t, rec)
	require.Len(t, categories, 2)
	assert.Equal(t, "go", categories[0]["name"])
	assert.Equal(t, "web", categories[1]["name"])
}

func TestAttachCategoryUnknownRefs(t *testing.T) {
	e := newTestServer(t)

	userID := createUser(t, e, "a@x.com", "alice")
	createPost(t, e, userID)

	rec := doJSON(e, http.MethodPost, "/api/post_categories/", `{"post_id": 9, "category_id": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/post_categories/", `{"post_id": 1, "category_id": 9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFormPostCreateRedirects(t *testing.T) {
	e := newTestServer(t)
	createUser(t, e, "a@x.com", "alice")

	form := url.Values{}
	form.Set("author_id", "1")
	form.Set("title", "T")
	form.Set("content", "C")
	req := httptest.NewRequest(http.MethodPost, "/posts/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = doJSON(e, http.MethodGet, "/api/posts/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeList(t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, "T", posts[0]["title"])
}

func TestFormPostCreateBadAuthorID(t *testing.T) {
	e := newTestServer(t)

	form := url.Values{}
	form.Set("author_id", "abc")
	form.Set("title", "T")
	form.Set("content", "C")
	req := httptest.NewRequest(http.MethodPost, "/posts/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormPostEditRedirects(t *testing.T) {
	e := newTestServer(t)
	userID := createUser(t, e, "a@x.com", "alice")
	createPost(t, e, userID)

	form := url.Values{}
	form.Set("title", "T2")
	form.Set("content", "C2")
	req := httptest.NewRequest(http.MethodPost, "/posts/edit/1", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = doJSON(e, http.MethodGet, "/api/posts/1", "")
	assert.Equal(t, "T2", decode(t, rec)["title"])
}

func TestLivenessAndHealth(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["message"])

	rec = doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateUserValidation(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/users/", `{"email": "not-an-email", "login": "a", "password": "p"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/users/", `{"login": "a", "password": "p"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
