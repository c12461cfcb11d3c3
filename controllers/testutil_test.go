package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/models"
	"github.com/NithinKrishna10/Menu-Card/routes"
	"github.com/NithinKrishna10/Menu-Card/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires the router to a fresh in-memory database. Handlers
// read the global config.DB, so tests in this package must not run in
// parallel.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductPortion{},
		&models.Advertisement{},
		&models.Leads{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DB = db
	config.RDB = nil

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func createTestUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	hashed, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		UUID:           uuid.NewString(),
		Name:           username,
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return user, token
}

// formRequest builds a multipart request the way the mutation endpoints
// expect their input.
func formRequest(t *testing.T, method, url string, fields map[string]string, token string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}

	req, _ := http.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// formFileRequest is formRequest plus an image part.
func formFileRequest(t *testing.T, method, url string, fields map[string]string, fileField, fileName, token string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	part, err := writer.CreateFormFile(fileField, fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}

	req, _ := http.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// storageCalls records what the handlers asked the image storage to do.
type storageCalls struct {
	Uploads []string
	Deletes []string
}

// stubStorage swaps the storage backend for an in-memory recorder for
// the duration of the test.
func stubStorage(t *testing.T) *storageCalls {
	t.Helper()

	calls := &storageCalls{}
	origUpload := utils.UploadImage
	origDelete := utils.DeleteImage

	utils.UploadImage = func(name string, file *multipart.FileHeader) (*utils.UploadResult, error) {
		calls.Uploads = append(calls.Uploads, name)
		return &utils.UploadResult{
			PublicID:  "menu-card/" + name,
			SecureURL: "https://res.example.com/menu-card/" + name + ".png",
		}, nil
	}
	utils.DeleteImage = func(publicID string) error {
		calls.Deletes = append(calls.Deletes, publicID)
		return nil
	}

	t.Cleanup(func() {
		utils.UploadImage = origUpload
		utils.DeleteImage = origDelete
	})
	return calls
}

func jsonRequest(t *testing.T, method, url string, payload interface{}, token string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope decodes the uniform response body.
type envelope struct {
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}
