package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/canteen-scheduler/internal/config"
	"github.com/BruksfildServices01/canteen-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/canteen-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/logger"
	"github.com/BruksfildServices01/canteen-scheduler/internal/timezone"
)

type api struct {
	t *testing.T
	r *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:     dbtest.Open(t),
		Config: &config.Config{StatusMaxRangeDays: 31},
		Locker: lock.NewLocalLocker(time.Second),
		Log:    logger.Nop(),
	})
	return &api{t: t, r: r}
}

func (a *api) call(method, path, subject string, body any, out any) int {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		req.Header.Set("studentId", subject)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

type idResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type errResponse struct {
	Code    string   `json:"error_code"`
	Details []string `json:"details"`
}

func TestReservationFlow(t *testing.T) {
	a := newAPI(t)
	date := timezone.FormatDate(timezone.Today(time.Now()).AddDate(0, 0, 1))

	var admin, ana, bia idResponse
	require.Equal(t, http.StatusCreated, a.call("POST", "/students", "", gin.H{"name": "Root", "email": "root@uni.edu", "is_admin": true}, &admin))
	require.Equal(t, http.StatusCreated, a.call("POST", "/students", "", gin.H{"name": "Ana", "email": "ana@uni.edu"}, &ana))
	require.Equal(t, http.StatusCreated, a.call("POST", "/students", "", gin.H{"name": "Bia", "email": "bia@uni.edu"}, &bia))

	var e errResponse
	assert.Equal(t, http.StatusConflict, a.call("POST", "/students", "", gin.H{"name": "Ana 2", "email": "ANA@uni.edu"}, &e))
	assert.Equal(t, "duplicate_email", e.Code)

	draft := gin.H{
		"name": "Main Hall", "location": "Block A", "capacity": 1,
		"working_hours": []gin.H{{"meal": "lunch", "from": "11:00", "to": "13:00"}},
	}
	assert.Equal(t, http.StatusUnauthorized, a.call("POST", "/canteens", "", draft, nil))
	assert.Equal(t, http.StatusForbidden, a.call("POST", "/canteens", ana.ID, draft, nil))

	var canteen idResponse
	require.Equal(t, http.StatusCreated, a.call("POST", "/canteens", admin.ID, draft, &canteen))

	e = errResponse{}
	assert.Equal(t, http.StatusBadRequest, a.call("POST", "/canteens", admin.ID, gin.H{"name": "", "capacity": 0}, &e))
	assert.Equal(t, "validation_failed", e.Code)
	assert.NotEmpty(t, e.Details)

	var first idResponse
	require.Equal(t, http.StatusCreated, a.call("POST", "/reservations", ana.ID, gin.H{
		"canteen_id": canteen.ID, "date": date, "time": "12:00", "duration": 30,
	}, &first))
	assert.Equal(t, "active", first.Status)

	e = errResponse{}
	assert.Equal(t, http.StatusUnprocessableEntity, a.call("POST", "/reservations", bia.ID, gin.H{
		"canteen_id": canteen.ID, "date": date, "time": "12:00", "duration": 30,
	}, &e))
	assert.Equal(t, "capacity_exceeded", e.Code)

	assert.Equal(t, http.StatusCreated, a.call("POST", "/reservations", bia.ID, gin.H{
		"canteen_id": canteen.ID, "date": date, "time": "12:30", "duration": 30,
	}, nil))

	var status struct {
		Slots []struct {
			StartTime         string `json:"start_time"`
			RemainingCapacity int    `json:"remaining_capacity"`
		} `json:"slots"`
	}
	path := fmt.Sprintf("/canteens/%s/status?startDate=%s&endDate=%s&startTime=11:00&endTime=13:00&duration=30", canteen.ID, date, date)
	require.Equal(t, http.StatusOK, a.call("GET", path, "", nil, &status))
	require.Len(t, status.Slots, 4)
	assert.Equal(t, []int{1, 1, 0, 0}, []int{
		status.Slots[0].RemainingCapacity, status.Slots[1].RemainingCapacity,
		status.Slots[2].RemainingCapacity, status.Slots[3].RemainingCapacity,
	})

	e = errResponse{}
	assert.Equal(t, http.StatusBadRequest, a.call("GET", "/canteens/status?startDate="+date+"&endDate="+date+"&startTime=11:00&endTime=13:00&duration=0", "", nil, &e))
	assert.Equal(t, "validation_failed", e.Code)

	// cancellation: ownership first, then idempotent
	assert.Equal(t, http.StatusUnauthorized, a.call("DELETE", "/reservations/"+first.ID, "", nil, nil))
	assert.Equal(t, http.StatusForbidden, a.call("DELETE", "/reservations/"+first.ID, bia.ID, nil, nil))

	var cancelled idResponse
	require.Equal(t, http.StatusOK, a.call("DELETE", "/reservations/"+first.ID, ana.ID, nil, &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)
	require.Equal(t, http.StatusOK, a.call("DELETE", "/reservations/"+first.ID, ana.ID, nil, &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	// deleting the canteen cancels what is left
	assert.Equal(t, http.StatusNoContent, a.call("DELETE", "/canteens/"+canteen.ID, admin.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, a.call("GET", "/canteens/"+canteen.ID, "", nil, nil))

	var list struct {
		Total int `json:"total"`
	}
	require.Equal(t, http.StatusOK, a.call("GET", "/canteens", "", nil, &list))
	assert.Zero(t, list.Total)

	assert.Equal(t, http.StatusBadRequest, a.call("GET", "/reservations/not-a-uuid", "", nil, nil))
}

func TestAuditLogsRequireAdmin(t *testing.T) {
	a := newAPI(t)

	var plain idResponse
	require.Equal(t, http.StatusCreated, a.call("POST", "/students", "", gin.H{"name": "Ana", "email": "ana@uni.edu"}, &plain))

	assert.Equal(t, http.StatusForbidden, a.call("GET", "/audit-logs", plain.ID, nil, nil))
}
