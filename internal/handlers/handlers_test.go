package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts_backend/internal/auth"
	"contacts_backend/internal/email"
	"contacts_backend/internal/handlers"
	"contacts_backend/internal/imageprocessor"
	"contacts_backend/internal/middleware"
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/routes"
	"contacts_backend/internal/services"
	"contacts_backend/internal/storage"
	"contacts_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServer struct {
	router   *gin.Engine
	userRepo repositories.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contact{}))

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/public"})
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	tokens := auth.NewTokenManager("test_secret_key_12345", time.Hour)

	authService := services.NewAuthService(userRepo, email.NoopProvider{}, tokens)
	userService := services.NewUserService(userRepo)
	contactService := services.NewContactService(contactRepo)
	avatarService := services.NewAvatarService(userRepo, store, imageprocessor.NewProcessor(80), 250, 10*1024*1024)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, authService),
		UserHandler:    handlers.NewUserHandler(base, userService, avatarService),
		ContactHandler: handlers.NewContactHandler(base, contactService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(tokens, userRepo), "")

	return &testServer{router: router, userRepo: userRepo}
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

// signupAndLogin walks a user through registration and verification and
// returns a live session token.
func (ts *testServer) signupAndLogin(t *testing.T, userEmail string) (string, *models.User) {
	t.Helper()

	rec, _ := ts.request(t, "POST", "/api/users/signup", "", map[string]string{
		"email":    userEmail,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	user, err := ts.userRepo.FindByEmail(userEmail)
	require.NoError(t, err)

	rec, _ = ts.request(t, "GET", "/api/users/verify/"+user.VerificationToken, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, loginBody := ts.request(t, "POST", "/api/users/login", "", map[string]string{
		"email":    userEmail,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(loginBody), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	user, err = ts.userRepo.FindByEmail(userEmail)
	require.NoError(t, err)
	return loginResp.Token, user
}

func TestSignupFlow(t *testing.T) {
	ts := newTestServer(t)

	rec, body := ts.request(t, "POST", "/api/users/signup", "", map[string]string{
		"email":    "model@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, "model@test.com")
	assert.Contains(t, body, "starter")

	// duplicate registration
	rec, body = ts.request(t, "POST", "/api/users/signup", "", map[string]string{
		"email":    "model@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body, "Email in use")
}

func TestSignup_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.request(t, "POST", "/api/users/signup", "", map[string]string{
		"email":    "not-an-email",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.request(t, "POST", "/api/users/signup", "", map[string]string{
		"email":    "ok@test.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_RejectsUnverified(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.request(t, "POST", "/api/users/signup", "", map[string]string{
		"email":    "pending@test.com",
		"password": "super_password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := ts.request(t, "POST", "/api/users/login", "", map[string]string{
		"email":    "pending@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body, "Wrong email or password")
}

func TestVerify_UnknownToken(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.request(t, "GET", "/api/users/verify/bogus-token", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signupAndLogin(t, "me@test.com")

	rec, body := ts.request(t, "GET", "/api/users/current", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "me@test.com")

	// no token
	rec, _ = ts.request(t, "GET", "/api/users/current", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// token invalidated by logout
	logoutRec, _ := ts.request(t, "GET", "/api/users/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, logoutRec.Code)

	rec, _ = ts.request(t, "GET", "/api/users/current", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateSubscription(t *testing.T) {
	ts := newTestServer(t)
	token, user := ts.signupAndLogin(t, "plan@test.com")

	rec, body := ts.request(t, "PATCH", "/api/users/"+user.ID, token, map[string]string{
		"subscription": "pro",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"subscription":"pro"`)

	// invalid plan name
	rec, _ = ts.request(t, "PATCH", "/api/users/"+user.ID, token, map[string]string{
		"subscription": "platinum",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// someone else's account
	rec, _ = ts.request(t, "PATCH", "/api/users/some-other-id", token, map[string]string{
		"subscription": "pro",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContactEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signupAndLogin(t, "contacts@test.com")

	// unauthenticated access is rejected
	rec, _ := ts.request(t, "GET", "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body := ts.request(t, "POST", "/api/contacts", token, map[string]interface{}{
		"name":  "Allen Raymond",
		"email": "nulla.ante@vestibul.co.uk",
		"phone": "(992) 914-3792",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Favorite)

	rec, body = ts.request(t, "GET", "/api/contacts", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"totalContacts":1`)
	assert.Contains(t, body, `"currentPage":1`)

	rec, _ = ts.request(t, "GET", "/api/contacts/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.request(t, "PUT", "/api/contacts/"+created.ID, token, map[string]interface{}{
		"name":  "Allen R.",
		"email": "allen@vestibul.co.uk",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = ts.request(t, "PATCH", "/api/contacts/"+created.ID+"/favorite", token, map[string]interface{}{
		"favorite": true,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"favorite":true`)

	rec, _ = ts.request(t, "DELETE", "/api/contacts/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = ts.request(t, "GET", "/api/contacts/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoritePatch_MissingField(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signupAndLogin(t, "fav@test.com")

	rec, body := ts.request(t, "POST", "/api/contacts", token, map[string]interface{}{
		"name":  "Starred",
		"email": "starred@test.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Contact
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	rec, _ = ts.request(t, "PATCH", "/api/contacts/"+created.ID+"/favorite", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactValidation(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signupAndLogin(t, "val@test.com")

	// name too short
	rec, _ := ts.request(t, "POST", "/api/contacts", token, map[string]interface{}{
		"name":  "Al",
		"email": "al@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// bad phone
	rec, _ = ts.request(t, "POST", "/api/contacts", token, map[string]interface{}{
		"name":  "Allen Raymond",
		"email": "allen@test.com",
		"phone": "not a phone",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactDelete_Missing(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signupAndLogin(t, "del@test.com")

	rec, body := ts.request(t, "DELETE", "/api/contacts/no-such-id", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body, "The contact was not found")
}

func TestAvatarUpload(t *testing.T) {
	ts := newTestServer(t)
	token, user := ts.signupAndLogin(t, "pic@test.com")

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var fileBuf bytes.Buffer
	require.NoError(t, png.Encode(&fileBuf, img))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = io.Copy(part, &fileBuf)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("PATCH", "/api/users/avatars", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/public/avatars/"+user.ID)

	stored, err := ts.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.AvatarURL, "/public/avatars/")
}

func TestAvatarUpload_NoFile(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.signupAndLogin(t, "nofile@test.com")

	rec, _ := ts.request(t, "PATCH", "/api/users/avatars", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
