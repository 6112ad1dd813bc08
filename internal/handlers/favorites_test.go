package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomlift-backend/internal/favorites"
	"roomlift-backend/internal/models"
)

func addFavorite(t *testing.T, env *testEnv, imageURL, roomType, style string) favorites.Favorite {
	t.Helper()
	w := env.do(t, "POST", "/api/v1/favorites", models.AddFavoriteRequest{
		ImageURL: imageURL,
		RoomType: roomType,
		Style:    style,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var fav favorites.Favorite
	decode(t, w, &fav)
	return fav
}

func TestFavoritesAddAndList(t *testing.T) {
	env := newTestEnv(t)

	fav := addFavorite(t, env, "https://img.example.com/design.jpg", "bedroom", "modern")
	assert.NotZero(t, fav.ID)
	assert.Equal(t, "Bedroom", fav.RoomType, "option keys are stored as display labels")
	assert.Equal(t, "Modern", fav.Style)
	assert.NotEmpty(t, fav.Date)

	w := env.do(t, "GET", "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FavoriteListResponse
	decode(t, w, &resp)
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, fav.ID, resp.Favorites[0].ID)
}

func TestFavoritesListEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorites": []}`, w.Body.String())
}

func TestFavoritesAddAcceptsLabels(t *testing.T) {
	env := newTestEnv(t)

	fav := addFavorite(t, env, "https://img.example.com/design.jpg", "Living Room", "Scandinavian")
	assert.Equal(t, "Living Room", fav.RoomType)
	assert.Equal(t, "Scandinavian", fav.Style)
}

func TestFavoritesAddValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/api/v1/favorites", models.AddFavoriteRequest{
		RoomType: "bedroom",
		Style:    "modern",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "POST", "/api/v1/favorites", models.AddFavoriteRequest{
		ImageURL: "https://img.example.com/design.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesDelete(t *testing.T) {
	env := newTestEnv(t)
	fav := addFavorite(t, env, "https://img.example.com/design.jpg", "kitchen", "industrial")

	w := env.do(t, "DELETE", fmt.Sprintf("/api/v1/favorites/%d", fav.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FavoriteListResponse
	decode(t, w, &resp)
	assert.Empty(t, resp.Favorites)

	w = env.do(t, "DELETE", "/api/v1/favorites/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	fav := addFavorite(t, env, "https://img.example.com/design.jpg", "bedroom", "modern")

	// Another user's list is empty and their check misses.
	w := env.doAs(t, "other-user", "GET", "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list models.FavoriteListResponse
	decode(t, w, &list)
	assert.Empty(t, list.Favorites)

	query := url.Values{"room_type": {"bedroom"}, "style": {"modern"}}
	w = env.doAs(t, "other-user", "GET", "/api/v1/favorites/check?"+query.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var check models.FavoriteCheckResponse
	decode(t, w, &check)
	assert.False(t, check.IsFavorite)

	// Their delete must not remove the owner's record.
	w = env.doAs(t, "other-user", "DELETE", fmt.Sprintf("/api/v1/favorites/%d", fav.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Len(t, list.Favorites, 1)
	assert.Equal(t, fav.ID, list.Favorites[0].ID)
}

func TestFavoritesCheck(t *testing.T) {
	env := newTestEnv(t)
	fav := addFavorite(t, env, "https://img.example.com/design.jpg", "bedroom", "modern")

	query := url.Values{"room_type": {"bedroom"}, "style": {"modern"}}
	w := env.do(t, "GET", "/api/v1/favorites/check?"+query.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.FavoriteCheckResponse
	decode(t, w, &resp)
	assert.True(t, resp.IsFavorite)
	assert.Equal(t, fav.ID, resp.FavoriteID)

	query = url.Values{"room_type": {"kitchen"}, "style": {"modern"}}
	w = env.do(t, "GET", "/api/v1/favorites/check?"+query.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.False(t, resp.IsFavorite)

	w = env.do(t, "GET", "/api/v1/favorites/check", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
