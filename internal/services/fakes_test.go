package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	users       map[string]*models.User
	userOrder   []string
	instructors map[string]*models.InstructorProfile
	learners    map[string]*models.LearnerProfile
	students    []*models.InstructorStudent
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:       make(map[string]*models.User),
		instructors: make(map[string]*models.InstructorProfile),
		learners:    make(map[string]*models.LearnerProfile),
	}
}

func (r *fakeRepo) User() repositories.UserRepository             { return &fakeUserRepo{r} }
func (r *fakeRepo) Instructor() repositories.InstructorRepository { return &fakeInstructorRepo{r} }
func (r *fakeRepo) Learner() repositories.LearnerRepository       { return &fakeLearnerRepo{r} }
func (r *fakeRepo) Enrollment() repositories.EnrollmentRepository { return &fakeEnrollmentRepo{r} }

func (r *fakeRepo) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *fakeRepo) Ping(ctx context.Context) error { return nil }
func (r *fakeRepo) Close() error                   { return nil }

type fakeUserRepo struct{ r *fakeRepo }

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	email := strings.ToLower(user.Email)
	for _, u := range f.r.users {
		if u.Email == email {
			return repositories.ErrDuplicateEmail
		}
	}
	user.Email = email
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.r.users[user.ID] = user
	f.r.userOrder = append(f.r.userOrder, user.ID)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	lowered := strings.ToLower(email)
	for _, u := range f.r.users {
		if u.Email == lowered {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	u, ok := f.r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	u.Status = status
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	var matched []*models.User
	for i := len(f.r.userOrder) - 1; i >= 0; i-- {
		u := f.r.users[f.r.userOrder[i]]
		if filters.Role != nil && u.Role != *filters.Role {
			continue
		}
		if filters.Status != nil && u.Status != *filters.Status {
			continue
		}
		matched = append(matched, u)
	}

	total := int64(len(matched))
	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[filters.Offset:]
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, total, nil
}

func (f *fakeUserRepo) GetStats(ctx context.Context) (*models.UserStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &models.UserStats{UsersByRole: make(map[string]int64)}
	for _, u := range f.r.users {
		stats.TotalUsers++
		stats.UsersByRole[string(u.Role)]++
		if u.Status == models.StatusActive {
			stats.ActiveUsers++
		}
		if !u.CreatedAt.Before(monthStart) {
			stats.NewUsersThisMonth++
		}
	}
	return stats, nil
}

type fakeInstructorRepo struct{ r *fakeRepo }

func (f *fakeInstructorRepo) Create(ctx context.Context, profile *models.InstructorProfile) error {
	if _, ok := f.r.instructors[profile.UserID]; ok {
		return repositories.ErrProfileExists
	}
	f.r.instructors[profile.UserID] = profile
	return nil
}

func (f *fakeInstructorRepo) GetByUserID(ctx context.Context, userID string) (*models.InstructorProfile, error) {
	p, ok := f.r.instructors[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeInstructorRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	_, ok := f.r.instructors[userID]
	return ok, nil
}

func (f *fakeInstructorRepo) Update(ctx context.Context, userID string, params repositories.UpdateInstructorProfileParams) (*models.InstructorProfile, error) {
	if len(params.Fields()) == 0 {
		return nil, repositories.ErrNoFields
	}
	p, ok := f.r.instructors[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	if params.ExperienceYears != nil {
		p.ExperienceYears = *params.ExperienceYears
	}
	if params.Expertise != nil {
		p.Expertise = params.Expertise
	}
	if params.Bio != nil {
		p.Bio = params.Bio
	}
	if params.PhoneNumber != nil {
		p.PhoneNumber = params.PhoneNumber
	}
	if params.Address != nil {
		p.Address = params.Address
	}
	return p, nil
}

func (f *fakeInstructorRepo) Delete(ctx context.Context, userID string) error {
	if _, ok := f.r.instructors[userID]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(f.r.instructors, userID)
	return nil
}

func (f *fakeInstructorRepo) List(ctx context.Context, filters repositories.InstructorFilters) ([]*models.InstructorProfile, int64, error) {
	var matched []*models.InstructorProfile
	for _, p := range f.r.instructors {
		if filters.MinExperience != nil && p.ExperienceYears < *filters.MinExperience {
			continue
		}
		matched = append(matched, p)
	}
	return matched, int64(len(matched)), nil
}

type fakeLearnerRepo struct{ r *fakeRepo }

func (f *fakeLearnerRepo) Create(ctx context.Context, profile *models.LearnerProfile) error {
	if _, ok := f.r.learners[profile.UserID]; ok {
		return repositories.ErrProfileExists
	}
	if profile.SkillLevel == "" {
		profile.SkillLevel = models.DefaultSkillLevel
	}
	f.r.learners[profile.UserID] = profile
	return nil
}

func (f *fakeLearnerRepo) GetByUserID(ctx context.Context, userID string) (*models.LearnerProfile, error) {
	p, ok := f.r.learners[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeLearnerRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	_, ok := f.r.learners[userID]
	return ok, nil
}

func (f *fakeLearnerRepo) Update(ctx context.Context, userID string, params repositories.UpdateLearnerProfileParams) (*models.LearnerProfile, error) {
	if len(params.Fields()) == 0 && params.Interests == nil {
		return nil, repositories.ErrNoFields
	}
	p, ok := f.r.learners[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	if params.Address != nil {
		p.Address = params.Address
	}
	if params.PhoneNumber != nil {
		p.PhoneNumber = params.PhoneNumber
	}
	if params.LearningGoals != nil {
		p.LearningGoals = params.LearningGoals
	}
	if params.SkillLevel != nil {
		p.SkillLevel = *params.SkillLevel
	}
	if params.Interests != nil {
		data, _ := json.Marshal(params.Interests)
		p.Interests = datatypes.JSON(data)
	}
	return p, nil
}

func (f *fakeLearnerRepo) UpdateProgress(ctx context.Context, userID string, params repositories.UpdateLearnerProgressParams) (*models.LearnerProfile, error) {
	if len(params.Fields()) == 0 {
		return nil, repositories.ErrNoFields
	}
	p, ok := f.r.learners[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	if params.CompletedCourses != nil {
		p.CompletedCourses = *params.CompletedCourses
	}
	if params.CertificatesEarned != nil {
		p.CertificatesEarned = *params.CertificatesEarned
	}
	return p, nil
}

func (f *fakeLearnerRepo) Delete(ctx context.Context, userID string) error {
	if _, ok := f.r.learners[userID]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(f.r.learners, userID)
	return nil
}

func (f *fakeLearnerRepo) List(ctx context.Context, filters repositories.LearnerFilters) ([]*models.LearnerProfile, int64, error) {
	var matched []*models.LearnerProfile
	for _, p := range f.r.learners {
		if filters.SkillLevel != nil && p.SkillLevel != *filters.SkillLevel {
			continue
		}
		matched = append(matched, p)
	}
	return matched, int64(len(matched)), nil
}

type fakeEnrollmentRepo struct{ r *fakeRepo }

func (f *fakeEnrollmentRepo) GetInstructorStudents(ctx context.Context, instructorID string) ([]*models.InstructorStudent, error) {
	return f.r.students, nil
}

// fakePublisher records published events.
type fakePublisher struct {
	registered    []*models.User
	statusChanges []string
}

func (p *fakePublisher) PublishUserRegistered(ctx context.Context, user *models.User) {
	p.registered = append(p.registered, user)
}

func (p *fakePublisher) PublishUserStatusChanged(ctx context.Context, user *models.User, oldStatus models.UserStatus, changedBy string) {
	p.statusChanges = append(p.statusChanges, user.ID+":"+string(oldStatus)+"->"+string(user.Status))
}

func (p *fakePublisher) Close() error { return nil }
