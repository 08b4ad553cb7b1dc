package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/repository"
	"ArcadeFlow/internal/service"
	"ArcadeFlow/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos := repository.NewMemoryRepositories(0)
	_, err := repository.Seed(context.Background(), repos, time.Now())
	require.NoError(t, err)
	return repos
}

func newTestRouter(t *testing.T, admin AdminAuth) *gin.Engine {
	return newRouterWith(t, seededRepos(t), admin)
}

func newRouterWith(t *testing.T, repos *repository.Repositories, admin AdminAuth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.Use(RequestLogger(logger))
	sessions := session.NewService(session.NewMemoryStore(), time.Hour, logger)
	RegisterRoutes(r, service.NewServices(repos, logger), sessions, admin, logger)
	return r
}

type failingCommentDeletes struct {
	repository.CommentRepository
}

func (failingCommentDeletes) DeleteByGame(context.Context, uint64) error {
	return model.ErrInternal
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestListGamesWithAveragesAndFacets(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	w := do(r, http.MethodGet, "/api/games?category=Puzzle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Games []struct {
			ID            uint64  `json:"id"`
			Title         string  `json:"title"`
			AverageRating float64 `json:"average_rating"`
		} `json:"games"`
		Categories []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"categories"`
		Total int `json:"total"`
	}
	decode(t, w, &view)
	require.Len(t, view.Games, 1)
	assert.Equal(t, "Puzzle Master", view.Games[0].Title)
	assert.InDelta(t, 4.5, view.Games[0].AverageRating, 1e-9)
	assert.Equal(t, 1, view.Total)
	assert.Len(t, view.Categories, 4)
}

func TestGameDetailStatusMapping(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/games/1?user_id=user-1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/games/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/games/abc", nil).Code)
}

func TestRateGame(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	w := do(r, http.MethodPost, "/api/games/3/ratings", gin.H{"user_id": "user-9", "rating": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Summary struct {
			Average float64 `json:"average"`
			Count   int     `json:"count"`
		} `json:"summary"`
	}
	decode(t, w, &res)
	assert.Equal(t, 2, res.Summary.Count)
	assert.InDelta(t, 4.0, res.Summary.Average, 1e-9)

	w = do(r, http.MethodPost, "/api/games/3/ratings", gin.H{"user_id": "user-9", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/games/99/ratings", gin.H{"user_id": "user-9", "rating": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/games/3/ratings/user-9", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/ratings/averages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var avg struct {
		Averages map[string]float64 `json:"averages"`
	}
	decode(t, w, &avg)
	assert.InDelta(t, 4.0, avg.Averages["3"], 1e-9)
}

func TestCommentsNewestFirst(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	w := do(r, http.MethodPost, "/api/games/2/comments", gin.H{"user_id": "abcd1234-ffff", "comment_text": "  nice  "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/api/games/2/comments", gin.H{"user_id": "abcd1234-ffff", "comment_text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/games/2/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Comments []struct {
			Username    string `json:"username"`
			CommentText string `json:"comment_text"`
		} `json:"comments"`
	}
	decode(t, w, &list)
	require.Len(t, list.Comments, 2)
	assert.Equal(t, "nice", list.Comments[0].CommentText)
	assert.Equal(t, "User-ABCD1234", list.Comments[0].Username)
}

func TestContentByType(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	w := do(r, http.MethodGet, "/api/content/about", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Type       string   `json:"type"`
		Paragraphs []string `json:"paragraphs"`
	}
	decode(t, w, &page)
	assert.Equal(t, "about", page.Type)
	assert.NotEmpty(t, page.Paragraphs)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/content/terms", nil).Code)
}

func TestAdminGameLifecycleCascades(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	w := do(r, http.MethodPost, "/api/admin/games", gin.H{"title": "Snake", "category": "Arcade"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID uint64 `json:"id"`
	}
	decode(t, w, &created)
	assert.Equal(t, uint64(5), created.ID)

	w = do(r, http.MethodPost, "/api/admin/games", gin.H{"title": "No category"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/api/admin/games/5", gin.H{"description": "eat apples"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/admin/games/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/games/1", nil).Code)

	w = do(r, http.MethodGet, "/api/games/1/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"comments":[]}`, w.Body.String())
}

func TestAdminRequiresBasicAuthWhenConfigured(t *testing.T) {
	r := newTestRouter(t, AdminAuth{Username: "admin", Password: "secret"})

	w := do(r, http.MethodPut, "/api/admin/settings/website-name", gin.H{"website_name": "Game Hub"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	b, _ := json.Marshal(gin.H{"website_name": "Game Hub"})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/website-name", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/settings/website-name", nil)
	assert.JSONEq(t, `{"website_name":"Game Hub"}`, w.Body.String())
}

func TestAdTextParseAndAdsTxt(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})
	text := "google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0\n" +
		`<ins data-ad-client="ca-pub-1234567890123456" data-ad-slot="ca-app-pub-1234567890123456/987654321"></ins>`

	w := do(r, http.MethodPost, "/api/admin/adsense/parse", gin.H{"text": text})
	require.Equal(t, http.StatusOK, w.Code)
	var parsed struct {
		PublisherID string   `json:"publisher_id"`
		AdUnitIDs   []string `json:"ad_unit_ids"`
	}
	decode(t, w, &parsed)
	assert.Equal(t, "ca-pub-1234567890123456", parsed.PublisherID)
	assert.Equal(t, []string{"ca-app-pub-1234567890123456/987654321"}, parsed.AdUnitIDs)

	// 预览不落库
	w = do(r, http.MethodGet, "/ads.txt", nil)
	assert.Contains(t, w.Body.String(), "pub-XXXXXXXXXXXXXXXX")

	w = do(r, http.MethodPut, "/api/admin/adsense/text", gin.H{"text": text})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/ads.txt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0\n", w.Body.String())

	w = do(r, http.MethodGet, "/api/adsense", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg struct {
		PublisherID string   `json:"publisher_id"`
		AdUnitIDs   []string `json:"ad_unit_ids"`
	}
	decode(t, w, &cfg)
	assert.Equal(t, "ca-pub-1234567890123456", cfg.PublisherID)
	assert.Len(t, cfg.AdUnitIDs, 1)
}

func TestSessionIssueAndGet(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})

	w := do(r, http.MethodPost, "/api/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var s struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
	}
	decode(t, w, &s)
	require.NotEmpty(t, s.UserID)

	w = do(r, http.MethodGet, "/api/session/"+s.UserID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/session/unknown", nil).Code)
}

func TestAdminDeleteGameReportsPartialCascade(t *testing.T) {
	repos := seededRepos(t)
	broken := *repos
	broken.Comments = failingCommentDeletes{CommentRepository: repos.Comments}
	r := newRouterWith(t, &broken, AdminAuth{})

	w := do(r, http.MethodDelete, "/api/admin/games/2", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/games/2", nil).Code)

	w = do(r, http.MethodGet, "/api/games/2/ratings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Summary struct {
			Count int `json:"count"`
		} `json:"summary"`
	}
	decode(t, w, &res)
	assert.Equal(t, 2, res.Summary.Count)
}

func TestOverlongUserIDIsBadRequest(t *testing.T) {
	r := newTestRouter(t, AdminAuth{})
	long := strings.Repeat("u", model.MaxUserIDLength+1)

	w := do(r, http.MethodPost, "/api/games/1/ratings", gin.H{"user_id": long, "rating": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(r, http.MethodPost, "/api/games/1/comments", gin.H{"user_id": long, "comment_text": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
