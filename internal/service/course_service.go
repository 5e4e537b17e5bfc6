package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	courseCachePrefix = "courses:public:"
	courseCacheTTL    = 5 * time.Minute
)

// CoursePublicView is the limited projection returned to viewers without
// full access: marketing fields only, no price, no instructor contact.
type CoursePublicView struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Banner          string         `json:"banner"`
	IsActive        bool           `json:"isActive"`
	CategoryID      uint           `json:"categoryId"`
	CategoryDetails model.Category `json:"categoryDetails"`
}

func publicView(course *model.Course) *CoursePublicView {
	return &CoursePublicView{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Banner:          course.Banner,
		IsActive:        course.IsActive,
		CategoryID:      course.CategoryID,
		CategoryDetails: course.Category,
	}
}

// CourseInput carries the writable course fields.
type CourseInput struct {
	Title       string
	Description string
	Price       float64
	Duration    float64
	IsActive    bool
	CategoryID  uint
}

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	CategoryRepo   *repository.CategoryRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Redis          *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, categoryRepo *repository.CategoryRepository, enrollmentRepo *repository.EnrollmentRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		CategoryRepo:   categoryRepo,
		EnrollmentRepo: enrollmentRepo,
		Redis:          rdb,
	}
}

// isEnrolled computes the relation fact the policy evaluator consumes: an
// active enrollment of the acting student in the course.
func (s *CourseService) isEnrolled(actor *policy.Actor, courseID uint) (bool, error) {
	if actor == nil || actor.Role != model.Student {
		return false, nil
	}
	return s.EnrollmentRepo.ExistsActive(actor.ID, courseID)
}

func (s *CourseService) findCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

// List is public. Teachers are narrowed to their own courses; anonymous
// unfiltered pages are served from the Redis cache.
func (s *CourseService) List(ctx context.Context, actor *policy.Actor, filter repository.CourseFilter) ([]model.Course, int64, error) {
	if actor != nil && actor.Role == model.Teacher {
		filter.InstructorID = actor.ID
	}

	cacheable := actor == nil && filter.CategoryID == 0 && filter.Search == ""
	cacheKey := fmt.Sprintf("%sp%d:l%d", courseCachePrefix, filter.Page, filter.Limit)

	if cacheable {
		if raw, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached struct {
				Courses []model.Course `json:"courses"`
				Total   int64          `json:"total"`
			}
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached.Courses, cached.Total, nil
			}
		}
	}

	courses, total, err := s.CourseRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		payload, err := json.Marshal(struct {
			Courses []model.Course `json:"courses"`
			Total   int64          `json:"total"`
		}{courses, total})
		if err == nil {
			s.Redis.Set(ctx, cacheKey, payload, courseCacheTTL)
		}
	}

	return courses, total, nil
}

// GetDetail returns the full course for the owner, admins and enrolled
// students, and the limited public projection for everyone else. An
// unauthorized read is degraded, not denied.
func (s *CourseService) GetDetail(actor *policy.Actor, id uint) (interface{}, error) {
	course, err := s.findCourse(id)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, course.ID)
	if err != nil {
		return nil, err
	}

	if policy.CourseDetailProjection(actor, course, enrolled) == policy.ProjectionFull {
		return course, nil
	}
	return publicView(course), nil
}

func (s *CourseService) validateInput(input CourseInput) error {
	errs := util.ValidationErrors{}
	if input.Title == "" {
		errs["title"] = "this field is required"
	}
	if input.Price < 0 {
		errs["price"] = "must not be negative"
	}
	if input.CategoryID == 0 {
		errs["categoryId"] = "this field is required"
	} else if _, err := s.CategoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errs["categoryId"] = "category does not exist"
		} else {
			return err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Create is teacher-only; the actor becomes the instructor, which keeps
// the instructor-must-be-a-teacher invariant by construction.
func (s *CourseService) Create(ctx context.Context, actor *policy.Actor, input CourseInput) (*model.Course, error) {
	if decision := policy.CanCreateCourse(actor); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Duration:     input.Duration,
		IsActive:     input.IsActive,
		CategoryID:   input.CategoryID,
		InstructorID: actor.ID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return s.findCourse(course.ID)
}

func (s *CourseService) Update(ctx context.Context, actor *policy.Actor, id uint, input CourseInput) (*model.Course, error) {
	course, err := s.findCourse(id)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Price = input.Price
	course.Duration = input.Duration
	course.IsActive = input.IsActive
	course.CategoryID = input.CategoryID

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return s.findCourse(course.ID)
}

func (s *CourseService) UpdateBanner(ctx context.Context, actor *policy.Actor, id uint, bannerURL string) (*model.Course, error) {
	course, err := s.findCourse(id)
	if err != nil {
		return nil, err
	}

	if decision := policy.CanModifyCourse(actor, course); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	course.Banner = bannerURL
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return course, nil
}

// Delete removes the course and everything hanging off it.
func (s *CourseService) Delete(ctx context.Context, actor *policy.Actor, id uint) error {
	course, err := s.findCourse(id)
	if err != nil {
		return err
	}

	if decision := policy.CanModifyCourse(actor, course); !decision.Allowed {
		return util.Forbidden(decision.Reason)
	}

	if err := s.CourseRepo.DeleteCascade(course.ID); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *CourseService) invalidateListCache(ctx context.Context) {
	iter := s.Redis.Scan(ctx, 0, courseCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
}
