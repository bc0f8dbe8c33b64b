package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/edumanage/internal/app/controllers"
	"github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/app/storage/memory"
	"github.com/mertkaya/edumanage/internal/middleware"
	"github.com/mertkaya/edumanage/internal/pkg/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterCustomValidators()

	store := memory.New(memory.WithHostelCapacity(50))
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "edumanage.test",
	})

	svcs := &services.Services{
		Auth:      services.NewAuthService(store, jwtService),
		Student:   services.NewStudentService(store),
		Fee:       services.NewFeeService(store, nil),
		Hostel:    services.NewHostelService(store),
		Library:   services.NewLibraryService(store),
		Exam:      services.NewExamService(store),
		Faculty:   services.NewFacultyService(store),
		Dashboard: services.NewDashboardService(store, nil),
	}

	ctrl := Controllers{
		Auth:      controllers.NewAuthController(svcs.Auth),
		Student:   controllers.NewStudentController(svcs.Student),
		Fee:       controllers.NewFeeController(svcs.Fee),
		Hostel:    controllers.NewHostelController(svcs.Hostel),
		Library:   controllers.NewLibraryController(svcs.Library),
		Exam:      controllers.NewExamController(svcs.Exam),
		Faculty:   controllers.NewFacultyController(svcs.Faculty),
		Dashboard: controllers.NewDashboardController(svcs.Dashboard),
	}

	router := gin.New()
	SetupRouter(router, ctrl, middleware.NewAuthMiddleware(jwtService))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, username, role string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "secret123",
		"email":    username + "@test.edu",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token struct {
				AccessToken string `json:"accessToken"`
			} `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token.AccessToken)
	return resp.Data.Token.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/students", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerUser(t, router, "admin1", "admin")

	w := doJSON(t, router, http.MethodPost, "/api/v1/students", adminToken, gin.H{
		"name":          "Rahul Sharma",
		"email":         "rahul@test.edu",
		"course":        "B.Tech Computer Science",
		"year":          2,
		"admissionDate": "2023-08-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID        string `json:"id"`
			StudentID string `json:"studentId"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Regexp(t, `^STU\d+$`, created.Data.StudentID)
	assert.Equal(t, "active", created.Data.Status)

	w = doJSON(t, router, http.MethodGet, "/api/v1/students/"+created.Data.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/students/missing", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentWriteRequiresStaffRole(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerUser(t, router, "student1", "student")

	w := doJSON(t, router, http.MethodPost, "/api/v1/students", studentToken, gin.H{
		"name":          "Rahul Sharma",
		"email":         "rahul@test.edu",
		"course":        "CS",
		"year":          1,
		"admissionDate": "2024-08-01",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to every authenticated role.
	w = doJSON(t, router, http.MethodGet, "/api/v1/students", studentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateStudent_RejectsMalformedDate(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerUser(t, router, "admin1", "admin")

	w := doJSON(t, router, http.MethodPost, "/api/v1/students", adminToken, gin.H{
		"name":          "Rahul Sharma",
		"email":         "rahul@test.edu",
		"course":        "CS",
		"year":          1,
		"admissionDate": "01-08-2024",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestHostelAllocationConflictOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerUser(t, router, "admin1", "admin")

	w := doJSON(t, router, http.MethodPost, "/api/v1/students", adminToken, gin.H{
		"name":          "Rahul Sharma",
		"email":         "rahul@test.edu",
		"course":        "CS",
		"year":          1,
		"admissionDate": "2024-08-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	allocation := gin.H{
		"studentId":      created.Data.ID,
		"roomNo":         "B-204",
		"block":          "B",
		"allocationDate": "2024-08-15",
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/hostels", adminToken, allocation)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Second active allocation for the same student must conflict.
	w = doJSON(t, router, http.MethodPost, "/api/v1/hostels", adminToken, allocation)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDashboardRequiresStaff(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerUser(t, router, "student1", "student")

	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := registerUser(t, router, "admin1", "admin")
	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
