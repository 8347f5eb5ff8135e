package pgrepo

import (
	"context"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	const query = `
		INSERT INTO users (login, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, login, email, password, role`

	var user domain.User
	err := r.db.QueryRow(ctx, query, args.Login, args.Email, args.Password, args.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Login, &user.Email, &user.Password, &user.Role)
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Login)
	}
	return &user, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	const query = `
		SELECT id, created_at, updated_at, login, email, password, role
		FROM users
		WHERE login = $1`

	var user domain.User
	err := r.db.QueryRow(ctx, query, login).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Login, &user.Email, &user.Password, &user.Role)
	if err != nil {
		return nil, convertErr(err, "finding user by login %s", login)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, created_at, updated_at, login, email, password, role
		FROM users
		WHERE id = $1`

	var user domain.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Login, &user.Email, &user.Password, &user.Role)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return &user, nil
}
