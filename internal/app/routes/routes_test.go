package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hostelhive/hostelhive/internal/app/controllers"
	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/app/models/dto"
	"github.com/hostelhive/hostelhive/internal/app/services"
	"github.com/hostelhive/hostelhive/internal/app/state"
	"github.com/hostelhive/hostelhive/internal/seed"
)

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	next := 0
	container := state.NewContainer(seed.Students(), seed.Rooms(), state.WithIDGenerator(func() string {
		next++
		return "generated-" + string(rune('a'+next-1))
	}))
	svcs := services.NewServices(container, nil, zerolog.Nop())

	router := gin.New()
	SetupRouter(router,
		controllers.NewStudentController(svcs.Students, svcs.Fees),
		controllers.NewRoomController(svcs.Rooms),
		controllers.NewDashboardController(svcs.Dashboard),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not a JSON envelope: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestGetStudents(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/students", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var students []models.Student
	if err := json.Unmarshal(env.Data, &students); err != nil {
		t.Fatalf("failed to decode students: %v", err)
	}
	if len(students) != 8 {
		t.Fatalf("expected 8 students, got %d", len(students))
	}
}

func TestGetStudentsFeeFilter(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/students?feeStatus=Due", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var students []models.Student
	if err := json.Unmarshal(env.Data, &students); err != nil {
		t.Fatalf("failed to decode students: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students with dues, got %d", len(students))
	}

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/students?feeStatus=Overdue", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status for bad filter = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("expected VAL_001 error, got %+v", env.Error)
	}
}

func TestCreateStudent(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Divya Nair","studentId":"S2024009","roomNumber":203,"phone":"9876543218","checkInDate":"2024-08-18","feeStatus":"Paid"}`
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/students", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %s", rec.Code, rec.Body.String())
	}

	var student models.Student
	if err := json.Unmarshal(env.Data, &student); err != nil {
		t.Fatalf("failed to decode student: %v", err)
	}
	if student.ID == "" {
		t.Fatalf("created student has no ID")
	}

	_, listEnv := doRequest(t, router, http.MethodGet, "/api/v1/students", "")
	var students []models.Student
	if err := json.Unmarshal(listEnv.Data, &students); err != nil {
		t.Fatalf("failed to decode students: %v", err)
	}
	if len(students) != 9 {
		t.Fatalf("expected 9 students after create, got %d", len(students))
	}
}

func TestCreateStudentRejectsBadPayload(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Divya Nair","studentId":"S2024009","roomNumber":203,"phone":"9876543218","feeStatus":"Pending"}`
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/students", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("expected VAL_001 error, got %+v", env.Error)
	}
}

func TestSetFeeStatus(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/students/3/fee-status", `{"feeStatus":"Paid"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var student models.Student
	if err := json.Unmarshal(env.Data, &student); err != nil {
		t.Fatalf("failed to decode student: %v", err)
	}
	if student.FeeStatus != models.FeePaid {
		t.Fatalf("fee status = %q, want Paid", student.FeeStatus)
	}

	rec, env = doRequest(t, router, http.MethodPut, "/api/v1/students/missing/fee-status", `{"feeStatus":"Paid"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status for unknown student = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Fatalf("expected RES_001 error, got %+v", env.Error)
	}
}

func TestDeleteStudentReconcilesRooms(t *testing.T) {
	router := newTestRouter(t)

	for _, id := range []string{"1", "3"} {
		rec, _ := doRequest(t, router, http.MethodDelete, "/api/v1/students/"+id, "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("delete %s status = %d, want 204", id, rec.Code)
		}
	}

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/rooms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rooms []models.Room
	if err := json.Unmarshal(env.Data, &rooms); err != nil {
		t.Fatalf("failed to decode rooms: %v", err)
	}
	for _, room := range rooms {
		if room.RoomNumber == 101 {
			if room.Occupants != 0 || room.Status != models.RoomVacant {
				t.Fatalf("room 101 after deletes: %+v", room)
			}
			return
		}
	}
	t.Fatalf("room 101 missing from response")
}

func TestAvailableRoomsKeepsCurrent(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/rooms/available?current=101", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rooms []models.Room
	if err := json.Unmarshal(env.Data, &rooms); err != nil {
		t.Fatalf("failed to decode rooms: %v", err)
	}
	has101 := false
	for _, room := range rooms {
		if room.RoomNumber == 204 {
			t.Fatalf("maintenance room offered as available")
		}
		if room.RoomNumber == 101 {
			has101 = true
		}
	}
	if !has101 {
		t.Fatalf("current room 101 not kept in the available list")
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/rooms/available?current=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status for bad current = %d, want 400", rec.Code)
	}
}

func TestRoomMaintenanceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/rooms/203/maintenance", `{"maintenance":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	var room models.Room
	if err := json.Unmarshal(env.Data, &room); err != nil {
		t.Fatalf("failed to decode room: %v", err)
	}
	if room.Status != models.RoomMaintenance {
		t.Fatalf("room status = %q, want Maintenance", room.Status)
	}

	rec, env = doRequest(t, router, http.MethodPut, "/api/v1/rooms/999/maintenance", `{"maintenance":true}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status for unknown room = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Fatalf("expected RES_001 error, got %+v", env.Error)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var metrics dto.DashboardMetrics
	if err := json.Unmarshal(env.Data, &metrics); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if metrics.TotalStudents != 8 || metrics.TotalRooms != 10 {
		t.Fatalf("counters wrong: %+v", metrics)
	}
	if metrics.OccupancyRate != "60.0%" {
		t.Fatalf("OccupancyRate = %q, want \"60.0%%\"", metrics.OccupancyRate)
	}
	if len(metrics.RecentCheckIns) != 5 {
		t.Fatalf("expected 5 recent check-ins, got %d", len(metrics.RecentCheckIns))
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
