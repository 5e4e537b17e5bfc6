package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionUpdateInput distinguishes absent fields from empty ones; a nil
// pointer means the field was not in the payload.
type QuestionUpdateInput struct {
	Question *string
	Answer   *string
}

type QuestionService struct {
	QuestionRepo   *repository.QuestionRepository
	LessonRepo     *repository.LessonRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, lessonRepo *repository.LessonRepository, enrollmentRepo *repository.EnrollmentRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo:   questionRepo,
		LessonRepo:     lessonRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

func (s *QuestionService) isEnrolled(actor *policy.Actor, courseID uint) (bool, error) {
	if actor == nil || actor.Role != model.Student {
		return false, nil
	}
	return s.EnrollmentRepo.ExistsActive(actor.ID, courseID)
}

func (s *QuestionService) findLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *QuestionService) findQuestion(id uint) (*model.QuestionAnswer, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) ListByLesson(actor *policy.Actor, lessonID uint) ([]model.QuestionAnswer, error) {
	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if decision := policy.CanViewCourseContent(actor, &lesson.Course, enrolled); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	return s.QuestionRepo.ListByLesson(lesson.ID)
}

// Ask creates a question on a lesson; only students enrolled in the
// lesson's course may ask.
func (s *QuestionService) Ask(actor *policy.Actor, lessonID uint, text string) (*model.QuestionAnswer, error) {
	if text == "" {
		return nil, util.ValidationErrors{"question": "this field is required"}
	}

	lesson, err := s.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if decision := policy.CanAskQuestion(actor, enrolled); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	question := &model.QuestionAnswer{
		Question: text,
		IsActive: true,
		UserID:   actor.ID,
		LessonID: lesson.ID,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return s.findQuestion(question.ID)
}

func (s *QuestionService) Get(actor *policy.Actor, id uint) (*model.QuestionAnswer, error) {
	question, err := s.findQuestion(id)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.isEnrolled(actor, question.Lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if decision := policy.CanViewQuestion(actor, &question.Lesson.Course, question, enrolled); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	return question, nil
}

// Update applies only the fields the actor may touch: the asker's edits to
// the answer are dropped, the owning teacher's edits to the question text
// are dropped. Payload fields outside the actor's scope are ignored, not
// rejected.
func (s *QuestionService) Update(actor *policy.Actor, id uint, input QuestionUpdateInput) (*model.QuestionAnswer, error) {
	question, err := s.findQuestion(id)
	if err != nil {
		return nil, err
	}

	scope, decision := policy.QuestionUpdateScope(actor, &question.Lesson.Course, question)
	if !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}

	if scope.Question && input.Question != nil {
		if *input.Question == "" {
			return nil, util.ValidationErrors{"question": "this field is required"}
		}
		question.Question = *input.Question
	}
	if scope.Answer && input.Answer != nil {
		question.Answer = *input.Answer
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(actor *policy.Actor, id uint) error {
	question, err := s.findQuestion(id)
	if err != nil {
		return err
	}

	if decision := policy.CanDeleteQuestion(actor, &question.Lesson.Course, question); !decision.Allowed {
		return util.Forbidden(decision.Reason)
	}

	return s.QuestionRepo.Delete(question.ID)
}
