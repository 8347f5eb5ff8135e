package repoargs

import "github.com/fsdevblog/mentorlink/internal/domain"

type CreateUser struct {
	Login    string
	Email    string
	Password string
	Role     domain.RoleType
}
