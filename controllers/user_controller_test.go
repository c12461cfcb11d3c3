package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/models"

	"github.com/stretchr/testify/assert"
)

func TestRegisterUser(t *testing.T) {
	router := setupTest(t)

	req := formRequest(t, "POST", "/user", map[string]string{
		"name":     "Nithin",
		"username": "nithin",
		"email":    "nithin@example.com",
		"password": "secret123",
	}, "")
	w := doRequest(router, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	env := decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "nithin", created.Username)
	assert.NotEmpty(t, created.UUID)

	// The hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "hashed_password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "existing")

	req := formRequest(t, "POST", "/user", map[string]string{
		"name":     "Other",
		"username": "other",
		"email":    "existing@example.com",
		"password": "secret123",
	}, "")
	w := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email is already registered")

	// Rejected before any row was written.
	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "existing")

	req := formRequest(t, "POST", "/user", map[string]string{
		"name":     "Other",
		"username": "existing",
		"email":    "other@example.com",
		"password": "secret123",
	}, "")
	w := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username not available")
}

func TestLoginAndGetMe(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "nithin")

	w := doRequest(router, jsonRequest(t, "POST", "/login", map[string]string{
		"username": "nithin",
		"password": "secret123",
	}, ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var loginData struct {
		AccessToken string `json:"access_token"`
	}
	env := decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &loginData))
	assert.NotEmpty(t, loginData.AccessToken)

	w = doRequest(router, jsonRequest(t, "GET", "/user/me", nil, loginData.AccessToken))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nithin")
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "nithin")

	w := doRequest(router, jsonRequest(t, "POST", "/login", map[string]string{
		"username": "nithin",
		"password": "wrong",
	}, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateUserPartial(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "nithin")

	req := formRequest(t, "PATCH", "/user", map[string]string{
		"name": "Nithin Krishna",
	}, token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	config.DB.First(&updated, user.ID)
	assert.Equal(t, "Nithin Krishna", updated.Name)
	assert.Equal(t, "nithin", updated.Username)
	assert.Equal(t, "nithin@example.com", updated.Email)
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "taken")
	_, token := createTestUser(t, "nithin")

	req := formRequest(t, "PATCH", "/user", map[string]string{
		"email": "taken@example.com",
	}, token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUserByUsername(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "nithin")

	// No token: the profile read is public.
	w := doRequest(router, jsonRequest(t, "GET", "/user/nithin", nil, ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched models.User
	env := decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "nithin", fetched.Username)
	assert.NotContains(t, w.Body.String(), "hashed_password")
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, jsonRequest(t, "GET", "/user/nobody", nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestGetUserByUsernameSoftDeleted(t *testing.T) {
	router := setupTest(t)
	user, _ := createTestUser(t, "nithin")
	config.DB.Delete(&user)

	w := doRequest(router, jsonRequest(t, "GET", "/user/nithin", nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestUpdateUserReplacesImage(t *testing.T) {
	router := setupTest(t)
	storage := stubStorage(t)
	user, token := createTestUser(t, "nithin")
	config.DB.Model(&user).Updates(models.User{
		ImageURL:      "https://res.example.com/menu-card/nithin-old.png",
		ImagePublicID: "menu-card/nithin-old",
	})

	req := formFileRequest(t, "PATCH", "/user", nil, "image", "fresh.png", token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The replaced object is removed exactly once, after the new upload.
	assert.Len(t, storage.Uploads, 1)
	assert.Equal(t, []string{"menu-card/nithin-old"}, storage.Deletes)

	var updated models.User
	config.DB.First(&updated, user.ID)
	assert.Equal(t, "menu-card/nithin", updated.ImagePublicID)
	assert.Equal(t, "https://res.example.com/menu-card/nithin.png", updated.ImageURL)
}

func TestGetUsersPaginated(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "user-one")
	createTestUser(t, "user-two")
	createTestUser(t, "user-three")

	w := doRequest(router, jsonRequest(t, "GET", "/users?page=1&items_per_page=2", nil, ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []models.User `json:"data"`
		Count      int64         `json:"count"`
		TotalPages int           `json:"total_pages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Count)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestDeleteUserSoft(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "nithin")

	w := doRequest(router, jsonRequest(t, "DELETE", "/user", nil, token))
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	config.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	config.DB.Unscoped().Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDbDeleteUserRequiresSuperuser(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "victim")
	_, token := createTestUser(t, "regular")

	w := doRequest(router, jsonRequest(t, "DELETE", "/db_user?username=victim", nil, token))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDbDeleteUserAsSuperuser(t *testing.T) {
	router := setupTest(t)
	victim, _ := createTestUser(t, "victim")
	admin, token := createTestUser(t, "admin")
	config.DB.Model(&admin).Update("is_superuser", true)

	w := doRequest(router, jsonRequest(t, "DELETE", "/db_user?username=victim", nil, token))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The row is physically gone.
	var count int64
	config.DB.Unscoped().Model(&models.User{}).Where("id = ?", victim.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
