package models

import "time"

// PublicUser is the client-facing view of a user. It never carries the
// password hash.
type PublicUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// PublicView converts a User to its public representation.
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// InstructorStudent is one row of the instructor's enrolled-students listing,
// joined across enrollments and course ownership.
type InstructorStudent struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        UserRole  `json:"role"`
	EnrolledAt  time.Time `json:"enrolled_at"`
	Progress    int       `json:"progress"`
	CourseID    uint      `json:"course_id"`
	CourseTitle string    `json:"course_title"`
}

// UserStats aggregates account counts for the admin dashboard.
type UserStats struct {
	TotalUsers        int64            `json:"total_users"`
	UsersByRole       map[string]int64 `json:"users_by_role"`
	NewUsersThisMonth int64            `json:"new_users_this_month"`
	ActiveUsers       int64            `json:"active_users"`
}
