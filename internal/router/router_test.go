package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedbms/internal/auth"
	"sedbms/internal/cache"
	"sedbms/internal/db"
	"sedbms/internal/handler"
	"sedbms/internal/repository"
	"sedbms/internal/seed"
	"sedbms/internal/service"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	gormDB, err := db.Open(db.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(gormDB)
	studentRepo := repository.NewStudentRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)
	markRepo := repository.NewMarkRepository(gormDB)
	reportRepo, err := repository.NewReportRepository(gormDB, db.SQLDriverName(db.DriverSQLite))
	require.NoError(t, err)

	repos := seed.Repos{Users: userRepo, Students: studentRepo, Subjects: subjectRepo, Marks: markRepo}
	fixture, err := seed.Load("")
	require.NoError(t, err)
	_, err = seed.Apply(context.Background(), repos, fixture)
	require.NoError(t, err)

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	reportService := service.NewReportService(studentRepo, subjectRepo, reportRepo, nil)
	// nothing listens on port 1, so revocation has to survive on the database alone
	redisDown := cache.New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { redisDown.Close() })
	tokenStore := auth.NewTokenStore(repository.NewSessionRepository(gormDB), redisDown)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)

	e := echo.New()
	Register(
		e,
		jwtService,
		authService,
		handler.NewAuthHandler(authService, jwtService.TTL()),
		handler.NewStudentHandler(service.NewStudentService(studentRepo, reportService)),
		handler.NewSubjectHandler(service.NewSubjectService(subjectRepo)),
		handler.NewMarkHandler(service.NewMarkService(markRepo, reportRepo, reportService)),
		handler.NewReportHandler(reportService),
		handler.NewSeedHandler(repos, fixture),
	)
	return e
}

func do(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestRoutes_RequireSession(t *testing.T) {
	e := newServer(t)

	for _, path := range []string{"/api/students", "/api/subjects", "/api/marks", "/api/dashboard", "/api/me"} {
		rec := do(e, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := do(e, http.MethodGet, "/api/students", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_Login(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, e, "student", "student123")
	rec = do(e, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"student","role":"student"}`, rec.Body.String())
}

func TestRoutes_SessionCookie(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "faculty", "faculty123")

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_Logout(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "faculty", "faculty123")

	rec := do(e, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_LogoutBlocksWritesWithoutRedis(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "admin", "admin123")

	rec := do(e, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(e, http.MethodDelete, "/api/students/1CR21CS002", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	fresh := login(t, e, "admin", "admin123")
	rec = do(e, http.MethodGet, "/api/students/1CR21CS002", fresh, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_StudentReport(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "student", "student123")

	rec := do(e, http.MethodGet, "/api/reports/1cr21cs001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report service.StudentReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "9.27", report.CGPA)
	require.Len(t, report.Semesters, 1)
	assert.Equal(t, 6, report.Semesters[0].Semester)
	assert.Equal(t, "9.27", report.Semesters[0].SGPA)

	rec = do(e, http.MethodGet, "/api/reports/1CR99XX999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_MarksEntry(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "faculty", "faculty123")

	mark := map[string]interface{}{
		"usn": "1CR22CS001", "subject_code": "CS401", "semester": 4, "cie_marks": 40, "see_marks": 70,
	}
	rec := do(e, http.MethodPost, "/api/marks", token, mark)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	mark["see_marks"] = 95
	rec = do(e, http.MethodPost, "/api/marks", token, mark)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	mark["see_marks"] = 101
	rec = do(e, http.MethodPost, "/api/marks", token, mark)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	mark["see_marks"] = 50
	mark["usn"] = "1CR99XX999"
	rec = do(e, http.MethodPost, "/api/marks", token, mark)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "REFERENTIAL_VIOLATION")
}

func TestRoutes_DeleteStudentIsAdminOnly(t *testing.T) {
	e := newServer(t)

	faculty := login(t, e, "faculty", "faculty123")
	rec := do(e, http.MethodDelete, "/api/students/1CR21CS001", faculty, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, e, "admin", "admin123")
	rec = do(e, http.MethodDelete, "/api/students/1CR21CS001", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student 1CR21CS001 - Rahul Kumar deleted successfully!")

	rec = do(e, http.MethodGet, "/api/students/1CR21CS001", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_CreateStudentDuplicate(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "faculty", "faculty123")

	student := map[string]interface{}{
		"usn": "1CR21CS001", "name": "Someone Else", "branch": "CSE",
		"admission_year": 2021, "current_semester": 6,
	}
	rec := do(e, http.MethodPost, "/api/students", token, student)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRoutes_RangeErrorsComeFromStore(t *testing.T) {
	e := newServer(t)
	token := login(t, e, "faculty", "faculty123")

	for _, sem := range []int{0, 9} {
		student := map[string]interface{}{
			"usn": "1CR23CS050", "name": "Out Of Range", "branch": "CSE",
			"admission_year": 2023, "current_semester": sem,
		}
		rec := do(e, http.MethodPost, "/api/students", token, student)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "semester %d", sem)
		assert.Contains(t, rec.Body.String(), "CONSTRAINT_VIOLATION")
	}

	for _, credits := range []int{0, 7} {
		subject := map[string]interface{}{
			"code": "CS999", "name": "Out Of Range", "credits": credits, "semester": 5,
		}
		rec := do(e, http.MethodPost, "/api/subjects", token, subject)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "credits %d", credits)
		assert.Contains(t, rec.Body.String(), "CONSTRAINT_VIOLATION")
	}

	student := map[string]interface{}{"usn": "1CR23CS050", "name": "No Semester", "branch": "CSE", "admission_year": 2023}
	rec := do(e, http.MethodPost, "/api/students", token, student)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Seed(t *testing.T) {
	e := newServer(t)

	faculty := login(t, e, "faculty", "faculty123")
	rec := do(e, http.MethodPost, "/api/admin/seed", faculty, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, e, "admin", "admin123")
	rec = do(e, http.MethodPost, "/api/admin/seed", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Students)
	assert.Zero(t, resp.Marks)
}
