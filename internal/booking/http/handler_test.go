package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/backend"
	"github.com/nekogravitycat/court-booking-web/internal/booking"
	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/flight"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
)

const testSecret = "test-secret"

type fakeAPI struct {
	backend.API
	creates atomic.Int32
	checks    atomic.Int32
	gate      chan struct{}
	checkGate chan struct{}
	last      backend.CreateBookingRequest
}

func (f *fakeAPI) CreateBooking(_ context.Context, req backend.CreateBookingRequest) (*backend.CreateBookingResponse, error) {
	f.creates.Add(1)
	f.last = req
	if f.gate != nil {
		<-f.gate
	}
	return &backend.CreateBookingResponse{Success: true, Booking: &backend.Booking{BookingCode: "FSL-1234"}}, nil
}

func (f *fakeAPI) CheckBooking(_ context.Context, filter url.Values) (*backend.Booking, error) {
	f.checks.Add(1)
	if f.checkGate != nil {
		<-f.checkGate
	}
	if filter.Get("code") == "FSL-1234" || filter.Get("phone") == "0812" {
		return &backend.Booking{BookingCode: "FSL-1234", Status: "Menunggu Pembayaran", Date: "2025-06-01", Price: 150000}, nil
	}
	return nil, &backend.StatusError{StatusCode: http.StatusNotFound, Message: "Booking tidak ditemukan"}
}

func setupRouter(t *testing.T, api backend.API) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.NewService(catalog.DefaultVenues())
	require.NoError(t, err)
	schedules := schedule.NewService(cat, api, nil, 0)
	h := NewHandler(booking.NewService(api, schedules), schedules, flight.NewGuard())

	jm := auth.NewJWTManager(testSecret, time.Hour)
	token, err := jm.GenerateAccessToken(auth.Session{UserID: "u-1", Name: "Budi"})
	require.NoError(t, err)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.Use(auth.SessionOptional(jm))
	RegisterRoutes(v1, h)
	return r, token
}

func postBooking(r http.Handler, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	api := &fakeAPI{}
	r, token := setupRouter(t, api)

	w := postBooking(r, token, `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"19:00 - 20:00",
		"name":"Budi","phone":"0812","teamName":"Garuda","findOpponent":true,"price":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FSL-1234", resp.BookingCode)
	assert.Equal(t, "Futsal", resp.Sport)
	assert.Equal(t, int64(150000), resp.Price)
	assert.Equal(t, "Rp150.000", resp.PriceLabel)
	assert.Equal(t, "Minggu, 1 Juni 2025", resp.DateLabel)
	assert.True(t, resp.FindOpponent)

	assert.Equal(t, "u-1", api.last.UserID)
	assert.Equal(t, int64(150000), api.last.Price, "client price is ignored")
}

func TestCreateBookingValidation(t *testing.T) {
	api := &fakeAPI{}
	r, token := setupRouter(t, api)

	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
		wantError  string
	}{
		{"Missing name", "", `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"19:00 - 20:00","phone":""}`, http.StatusBadRequest, "name is required"},
		{"Missing phone", "", `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"19:00 - 20:00","name":"Budi"}`, http.StatusBadRequest, "phone number is required"},
		{"No session", "", `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"19:00 - 20:00","name":"Budi","phone":"0812"}`, http.StatusUnauthorized, "your session has ended, please sign in again"},
		{"Invalid token is no session", "garbage", `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"19:00 - 20:00","name":"Budi","phone":"0812"}`, http.StatusUnauthorized, "your session has ended, please sign in again"},
		{"Closed slot", token, `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"12:00 - 13:00","name":"Budi","phone":"0812"}`, http.StatusConflict, "time slot is not available"},
		{"Unknown venue", token, `{"venueId":"tenis-1","date":"2025-06-01","time":"19:00 - 20:00","name":"Budi","phone":"0812"}`, http.StatusNotFound, "venue not found"},
		{"Malformed body", token, `{"venueId":`, http.StatusBadRequest, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postBooking(r, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}

	assert.Zero(t, api.creates.Load(), "validation failures never reach the backend")
}

func TestCreateBookingSingleFlight(t *testing.T) {
	api := &fakeAPI{gate: make(chan struct{})}
	r, token := setupRouter(t, api)
	body := `{"venueId":"futsal-sintetis-1","date":"2025-06-01","time":"19:00 - 20:00","name":"Budi","phone":"0812"}`

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() { first <- postBooking(r, token, body) }()
	require.Eventually(t, func() bool { return api.creates.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := postBooking(r, token, body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	close(api.gate)
	assert.Equal(t, http.StatusCreated, (<-first).Code)

	third := postBooking(r, token, body)
	assert.Equal(t, http.StatusCreated, third.Code, "guard is released once the request settles")
	assert.Equal(t, int32(2), api.creates.Load())
}

func TestCheckBooking(t *testing.T) {
	api := &fakeAPI{}
	r, _ := setupRouter(t, api)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantError  string
	}{
		{"Mode code", "mode=code&value=FSL-1234", http.StatusOK, ""},
		{"Mode phone", "mode=phone&value=0812", http.StatusOK, ""},
		{"Direct code", "code=FSL-1234", http.StatusOK, ""},
		{"Direct phone", "phone=0812", http.StatusOK, ""},
		{"Not found carries backend text", "code=NOPE", http.StatusNotFound, "Booking tidak ditemukan"},
		{"Whitespace only", "mode=phone&value=%20%20%20", http.StatusBadRequest, "please enter a booking code or phone number"},
		{"Nothing given", "", http.StatusBadRequest, "please enter a booking code or phone number"},
		{"Both filters", "code=FSL-1234&phone=0812", http.StatusBadRequest, "use either code or phone, not both"},
		{"Unknown mode", "mode=email&value=a@b.c", http.StatusBadRequest, "search mode must be code or phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/v1/bookings/check?"+tt.query, nil)
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantError != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp["error"])
				return
			}

			var resp BookingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "FSL-1234", resp.BookingCode)
			assert.Equal(t, "pending", resp.StatusClass)
			assert.Equal(t, "Rp150.000", resp.PriceLabel)
		})
	}

	assert.Equal(t, int32(5), api.checks.Load())
}

func TestCheckBookingGuardIsPerClient(t *testing.T) {
	api := &fakeAPI{checkGate: make(chan struct{})}
	r, _ := setupRouter(t, api)

	check := func(clientID string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/v1/bookings/check?code=FSL-1234", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		req.Header.Set(auth.ClientHeader, clientID)
		r.ServeHTTP(w, req)
		return w
	}

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() { first <- check("tab-a") }()
	require.Eventually(t, func() bool { return api.checks.Load() == 1 }, time.Second, 5*time.Millisecond)

	// Same address, same tab: still waiting on the first lookup.
	assert.Equal(t, http.StatusTooManyRequests, check("tab-a").Code)

	// Same address, another device behind the same NAT.
	second := make(chan *httptest.ResponseRecorder, 1)
	go func() { second <- check("tab-b") }()
	require.Eventually(t, func() bool { return api.checks.Load() == 2 }, time.Second, 5*time.Millisecond)

	close(api.checkGate)
	assert.Equal(t, http.StatusOK, (<-first).Code)
	assert.Equal(t, http.StatusOK, (<-second).Code)
}
