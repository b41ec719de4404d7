package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasin/kelasin-api/internal/models"
	"github.com/kelasin/kelasin-api/internal/service"
	"github.com/kelasin/kelasin-api/pkg/response"
)

type courseRepoMock struct {
	courses    []models.Course
	lastFilter models.CourseFilter
	err        error
}

func (m *courseRepoMock) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	return m.courses, nil
}

func (m *courseRepoMock) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.courses {
		if m.courses[i].ID == id {
			return &m.courses[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *courseRepoMock) Create(ctx context.Context, course *models.Course) error {
	course.ID = int64(len(m.courses) + 1)
	m.courses = append(m.courses, *course)
	return nil
}

func (m *courseRepoMock) Update(ctx context.Context, id int64, update models.CourseUpdate) (int64, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			return 1, nil
		}
	}
	return 0, nil
}

func (m *courseRepoMock) Delete(ctx context.Context, id int64) (int64, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newCourseTestHandler(repo *courseRepoMock) *CourseHandler {
	gin.SetMode(gin.TestMode)
	return NewCourseHandler(service.NewCourseService(repo, nil, nil, nil))
}

func TestCourseHandlerListEmptyReturnsMessage(t *testing.T) {
	handler := newCourseTestHandler(&courseRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/course", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "No courses found.", envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestCourseHandlerListParsesQuery(t *testing.T) {
	repo := &courseRepoMock{courses: []models.Course{{ID: 1, Name: "Belajar Go", Price: 150000}}}
	handler := newCourseTestHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/course?kategori=3&search=go&sortBy=price&sortOrder=DESC", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, repo.lastFilter.CategoryID)
	assert.Equal(t, int64(3), *repo.lastFilter.CategoryID)
	assert.Equal(t, "go", repo.lastFilter.Search)
	assert.Equal(t, "price", repo.lastFilter.SortBy)
	assert.Equal(t, "DESC", repo.lastFilter.SortOrder)
}

func TestCourseHandlerGetInvalidID(t *testing.T) {
	handler := newCourseTestHandler(&courseRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/course/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerGetNotFound(t *testing.T) {
	handler := newCourseTestHandler(&courseRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/course/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Class not found")
}

func TestCourseHandlerDelete(t *testing.T) {
	repo := &courseRepoMock{courses: []models.Course{{ID: 1, Name: "Belajar Go"}}}
	handler := newCourseTestHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/course/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Course deleted successfully.")
	assert.Empty(t, repo.courses)
}
