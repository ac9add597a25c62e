package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/controllers"
	"dentalpro-backend/repository"
	"dentalpro-backend/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	controllers.Init(services.NewCore(repository.NewBundle(repository.Options{}), nil))
	return SetupRouter()
}

func postJSON(t *testing.T, r *gin.Engine, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) authResponse {
	t.Helper()
	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// The first account self-registers as manager; every later registration must
// carry the manager's bearer token on the same /auth/register route.
func TestRegisterFlow(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/auth/register", "", gin.H{
		"email":    "huda@clinic.ye",
		"name":     "Huda",
		"password": "first-manager-pw",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	manager := decodeAuth(t, w)
	assert.Equal(t, "manager", manager.User.Role)
	require.NotEmpty(t, manager.Token)

	// No token: the manager gate rejects the request.
	w = postJSON(t, r, "/auth/register", "", gin.H{
		"email":    "samia@clinic.ye",
		"name":     "Samia",
		"password": "secretary-pw-1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// The manager's token gets through and defaults the role to secretary.
	w = postJSON(t, r, "/auth/register", manager.Token, gin.H{
		"email":    "samia@clinic.ye",
		"name":     "Samia",
		"password": "secretary-pw-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	secretary := decodeAuth(t, w)
	assert.Equal(t, "secretary", secretary.User.Role)

	// The secretary cannot add accounts.
	w = postJSON(t, r, "/auth/register", secretary.Token, gin.H{
		"email":    "third@clinic.ye",
		"name":     "Third",
		"password": "another-pw-123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Duplicate email is a conflict even for the manager.
	w = postJSON(t, r, "/auth/register", manager.Token, gin.H{
		"email":    "samia@clinic.ye",
		"name":     "Samia",
		"password": "secretary-pw-1",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestLoginAndMe(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/auth/register", "", gin.H{
		"email":    "huda@clinic.ye",
		"name":     "Huda",
		"password": "first-manager-pw",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(t, r, "/auth/login", "", gin.H{
		"email":    "huda@clinic.ye",
		"password": "first-manager-pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decodeAuth(t, w)
	require.NotEmpty(t, login.Token)

	w = postJSON(t, r, "/auth/login", "", gin.H{
		"email":    "huda@clinic.ye",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code, me.Body.String())
	assert.Equal(t, "huda@clinic.ye", decodeAuth(t, me).User.Email)

	// A garbage token is rejected outright, even on register.
	w = postJSON(t, r, "/auth/register", "not-a-jwt", gin.H{
		"email":    "samia@clinic.ye",
		"name":     "Samia",
		"password": "secretary-pw-1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}
