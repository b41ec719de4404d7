package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
)

type courseRepoStub struct {
	courses    map[int64]*models.Course
	nextID     int64
	lastFilter models.CourseFilter
	err        error
}

func newCourseRepoStub() *courseRepoStub {
	return &courseRepoStub{courses: make(map[int64]*models.Course), nextID: 1}
}

func (s *courseRepoStub) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFilter = filter
	result := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		result = append(result, *c)
	}
	return result, nil
}

func (s *courseRepoStub) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	if c, ok := s.courses[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (s *courseRepoStub) Create(ctx context.Context, course *models.Course) error {
	if s.err != nil {
		return s.err
	}
	course.ID = s.nextID
	s.nextID++
	clone := *course
	s.courses[course.ID] = &clone
	return nil
}

func (s *courseRepoStub) Update(ctx context.Context, id int64, update models.CourseUpdate) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	c, ok := s.courses[id]
	if !ok {
		return 0, nil
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Price != nil {
		c.Price = *update.Price
	}
	return 1, nil
}

func (s *courseRepoStub) Delete(ctx context.Context, id int64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.courses[id]; !ok {
		return 0, nil
	}
	delete(s.courses, id)
	return 1, nil
}

type imageStoreStub struct {
	stored []string
	err    error
}

func (s *imageStoreStub) Store(upload FileUpload) (*UploadedFile, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.stored = append(s.stored, upload.Filename)
	return &UploadedFile{Filename: upload.Filename, URL: "/upload/" + upload.Filename}, nil
}

func TestCourseServiceListPassesFilter(t *testing.T) {
	repo := newCourseRepoStub()
	svc := NewCourseService(repo, &imageStoreStub{}, nil, nil)

	categoryID := int64(3)
	_, err := svc.List(context.Background(), models.CourseFilter{
		CategoryID: &categoryID,
		Search:     "golang",
		SortBy:     "price",
		SortOrder:  "DESC",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.CategoryID)
	assert.Equal(t, int64(3), *repo.lastFilter.CategoryID)
	assert.Equal(t, "golang", repo.lastFilter.Search)
	assert.Equal(t, "price", repo.lastFilter.SortBy)
}

func TestCourseServiceGetNotFound(t *testing.T) {
	svc := NewCourseService(newCourseRepoStub(), &imageStoreStub{}, nil, nil)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Equal(t, "Class not found", appErr.Message)
}

func TestCourseServiceCreateWithImage(t *testing.T) {
	repo := newCourseRepoStub()
	images := &imageStoreStub{}
	svc := NewCourseService(repo, images, nil, nil)

	course, err := svc.Create(context.Background(), CreateCourseRequest{
		Name:  "Belajar Go",
		Price: 150000.005,
	}, &FileUpload{Filename: "cover.png", Size: 1024, Content: strings.NewReader("img")})
	require.NoError(t, err)

	assert.Equal(t, int64(1), course.ID)
	assert.Equal(t, 150000.01, course.Price)
	require.NotNil(t, course.ImageURL)
	assert.Equal(t, "/upload/cover.png", *course.ImageURL)
	assert.Len(t, images.stored, 1)
}

func TestCourseServiceCreateRejectsNegativePrice(t *testing.T) {
	svc := NewCourseService(newCourseRepoStub(), &imageStoreStub{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateCourseRequest{Name: "Belajar Go", Price: -1}, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceUpdateNotFound(t *testing.T) {
	svc := NewCourseService(newCourseRepoStub(), &imageStoreStub{}, nil, nil)

	name := "Renamed"
	_, err := svc.Update(context.Background(), 42, UpdateCourseRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestCourseServiceUpdateReloadsCourse(t *testing.T) {
	repo := newCourseRepoStub()
	svc := NewCourseService(repo, &imageStoreStub{}, nil, nil)
	repo.courses[1] = &models.Course{ID: 1, Name: "Belajar Go", Price: 150000}

	name := "Belajar Go Lanjutan"
	course, err := svc.Update(context.Background(), 1, UpdateCourseRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Belajar Go Lanjutan", course.Name)
}

func TestCourseServiceDeleteNotFound(t *testing.T) {
	svc := NewCourseService(newCourseRepoStub(), &imageStoreStub{}, nil, nil)

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
