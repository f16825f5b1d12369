package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/J-Hunxho/LowkeyLuxuryMain/handlers"
	"github.com/J-Hunxho/LowkeyLuxuryMain/services/auth"
	"github.com/J-Hunxho/LowkeyLuxuryMain/services/booking"
	ai "github.com/J-Hunxho/LowkeyLuxuryMain/services/intelligence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	wizard := &booking.DefaultWizardService{
		Store:    booking.NewMemorySessionStore(),
		Payments: booking.NewMockPaymentProcessor(logger, 0),
		Bookings: booking.NewMockBookingCreator(logger, 0),
	}
	hb := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(&auth.DefaultAuthService{Store: auth.NewMemoryUserStore()}),
		Booking: handlers.NewBookingHandler(wizard, logger),
		Chat:    handlers.NewChatHandler(&ai.DefaultChatService{Store: ai.NewMemoryTranscriptStore()}),
	}

	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Services []map[string]any `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Services, 9)

	w = doJSON(t, r, http.MethodGet, "/api/services/full-stack", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	pkg := decode(t, w)
	assert.Equal(t, "Platform Architecture", pkg["title"])

	w = doJSON(t, r, http.MethodGet, "/api/services/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "founder@empire.com", "password": "short",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users/signup", "", gin.H{
		"name": "Ada", "email": "ada@empire.com", "password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(t, r, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)
	assert.Equal(t, "Ada", me["name"])
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = doJSON(t, r, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingWizard_EndToEnd(t *testing.T) {
	r := newTestRouter()

	// Sign up to get a token.
	w := doJSON(t, r, http.MethodPost, "/api/users/signup", "", gin.H{
		"name": "Ada", "email": "ada@empire.com", "password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	// Start a session without auth.
	w = doJSON(t, r, http.MethodPost, "/api/booking/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := decode(t, w)["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	base := "/api/booking/session/" + sessionID

	// Selecting a tier-less package while signed out trips the auth gate.
	w = doJSON(t, r, http.MethodPost, base+"/service", "", gin.H{"serviceId": "web-elite"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "auth_required", decode(t, w)["signal"])

	// The selection survived; signing in and re-selecting moves forward.
	w = doJSON(t, r, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode(t, w)
	assert.Equal(t, float64(1), state["step"])
	require.NotNil(t, state["service"])

	w = doJSON(t, r, http.MethodPost, base+"/service", token, gin.H{"serviceId": "web-elite"})
	require.Equal(t, http.StatusOK, w.Code)
	state = decode(t, w)
	assert.Equal(t, float64(3), state["step"])

	// Incomplete schedule is rejected.
	w = doJSON(t, r, http.MethodPost, base+"/schedule", token, gin.H{"date": "2026-09-14"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/schedule", token, gin.H{"date": "2026-09-14", "time": "10:00"})
	require.Equal(t, http.StatusOK, w.Code)

	// Declined card leaves the wizard at the payment step.
	w = doJSON(t, r, http.MethodPost, base+"/payment", token, gin.H{
		"card": gin.H{"number": "123", "expiry": "12/27", "cvv": "123"},
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/payment", token, gin.H{
		"card": gin.H{"number": "4111 1111 1111 1111", "expiry": "12/27", "cvv": "123"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	state = decode(t, w)
	assert.Equal(t, float64(5), state["step"])
	ref, _ := state["bookingRef"].(string)
	assert.Contains(t, ref, "BK-")

	// Reset returns to the catalog.
	w = doJSON(t, r, http.MethodPost, base+"/reset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decode(t, w)
	assert.Equal(t, float64(1), state["step"])
	assert.Nil(t, state["service"])
}

func TestBookingWizard_UnknownSession(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatEndpoints_DisabledWithoutKey(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/chat/session", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/chat/session/s1/message", "", gin.H{"text": "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBookingWizard_TieredFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users/signup", "", gin.H{
		"name": "Ada", "email": "ada@empire.com", "password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/booking/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	base := fmt.Sprintf("/api/booking/session/%s", decode(t, w)["sessionId"])

	// Tiered package advances to tier select even without a token.
	w = doJSON(t, r, http.MethodPost, base+"/service", "", gin.H{"serviceId": "full-stack"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["step"])

	w = doJSON(t, r, http.MethodPost, base+"/tier", token, gin.H{"tierId": "fs-monthly"})
	require.Equal(t, http.StatusOK, w.Code)
	state := decode(t, w)
	assert.Equal(t, float64(3), state["step"])
	service := state["service"].(map[string]any)
	assert.Equal(t, "Platform Architecture - Evolution (Retainer)", service["title"])
	assert.Equal(t, float64(5000), service["price"])

	// Back from schedule restores the original tiered package.
	w = doJSON(t, r, http.MethodPost, base+"/back", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decode(t, w)
	assert.Equal(t, float64(2), state["step"])
	service = state["service"].(map[string]any)
	assert.Equal(t, "Platform Architecture", service["title"])
}
