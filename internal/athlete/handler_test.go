package athlete

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileRepoMock struct {
	profile *Profile
	err     error
}

func (r *profileRepoMock) GetProfile(_ context.Context) (*Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.profile, nil
}

func TestHandler_HandleGetProfile(t *testing.T) {
	testProfile := &Profile{
		ID:              1,
		Name:            "Leti Martin",
		Avatar:          "LM",
		SportFocus:      "triathlon",
		Age:             31,
		Gender:          "F",
		HeightCm:        168,
		WeightKg:        57,
		Occupation:      "arquitecta",
		Level:           "avanzado",
		ProfileType:     "competitivo",
		FTPWatts:        245,
		RunningPace:     "4:15 min/km",
		PowerZones:      []string{"z1: <150w", "z2: 150-190w"},
		HRZones:         []string{"z1: <135", "z2: 135-150"},
		WeeklyTSSTarget: 450,
	}

	handler := NewHandler(&profileRepoMock{profile: testProfile})
	r := mux.NewRouter()
	handler.SetupRoutes(r)

	req := httptest.NewRequest("GET", "/athlete/profile", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var gotProfile Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gotProfile))
	assert.Equal(t, *testProfile, gotProfile)
}

func TestHandler_HandleGetProfile_notFound(t *testing.T) {
	handler := NewHandler(&profileRepoMock{err: ErrProfileNotFound})
	r := mux.NewRouter()
	handler.SetupRoutes(r)

	req := httptest.NewRequest("GET", "/athlete/profile", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
