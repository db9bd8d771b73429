package repositories

import "context"

// Repository aggregates all repository interfaces behind one handle.
type Repository interface {
	User() UserRepository
	Instructor() InstructorRepository
	Learner() LearnerRepository
	Enrollment() EnrollmentRepository

	// WithTransaction runs fn against a transactional view of every
	// repository; any error rolls the whole unit back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Ping checks storage and cache connectivity.
	Ping(ctx context.Context) error

	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
