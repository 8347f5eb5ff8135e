package pgrepo

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

type MentorRepository struct {
	db uow.DBTX
}

func NewMentorRepository(db uow.DBTX) *MentorRepository {
	return &MentorRepository{db: db}
}

func (r *MentorRepository) CreateProfile(
	ctx context.Context,
	args repoargs.CreateMentorProfile,
) (*domain.MentorProfile, error) {
	const query = `
		INSERT INTO mentor_profiles (user_id, display_name, bio, skills, hourly_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, user_id, display_name, bio, skills, hourly_rate`

	var profile domain.MentorProfile
	err := r.db.QueryRow(ctx, query, args.UserID, args.DisplayName, args.Bio, args.Skills, args.HourlyRate).
		Scan(
			&profile.ID, &profile.CreatedAt, &profile.UpdatedAt, &profile.UserID,
			&profile.DisplayName, &profile.Bio, &profile.Skills, &profile.HourlyRate,
		)
	if err != nil {
		return nil, convertErr(err, "creating mentor profile for user %d", args.UserID)
	}
	return &profile, nil
}

func (r *MentorRepository) FindByUserID(ctx context.Context, userID int64) (*domain.MentorProfile, error) {
	const query = `
		SELECT id, created_at, updated_at, user_id, display_name, bio, skills, hourly_rate
		FROM mentor_profiles
		WHERE user_id = $1`

	var profile domain.MentorProfile
	err := r.db.QueryRow(ctx, query, userID).
		Scan(
			&profile.ID, &profile.CreatedAt, &profile.UpdatedAt, &profile.UserID,
			&profile.DisplayName, &profile.Bio, &profile.Skills, &profile.HourlyRate,
		)
	if err != nil {
		return nil, convertErr(err, "finding mentor profile by user id %d", userID)
	}
	return &profile, nil
}

func (r *MentorRepository) UpdateProfile(
	ctx context.Context,
	args repoargs.CreateMentorProfile,
) (*domain.MentorProfile, error) {
	const query = `
		UPDATE mentor_profiles
		SET display_name = $2, bio = $3, skills = $4, hourly_rate = $5, updated_at = now()
		WHERE user_id = $1
		RETURNING id, created_at, updated_at, user_id, display_name, bio, skills, hourly_rate`

	var profile domain.MentorProfile
	err := r.db.QueryRow(ctx, query, args.UserID, args.DisplayName, args.Bio, args.Skills, args.HourlyRate).
		Scan(
			&profile.ID, &profile.CreatedAt, &profile.UpdatedAt, &profile.UserID,
			&profile.DisplayName, &profile.Bio, &profile.Skills, &profile.HourlyRate,
		)
	if err != nil {
		return nil, convertErr(err, "updating mentor profile for user %d", args.UserID)
	}
	return &profile, nil
}

// UpdateEmbedding сохраняет вектор биографии ментора для серверного поиска по близости.
func (r *MentorRepository) UpdateEmbedding(ctx context.Context, userID int64, embedding []float64) error {
	const query = `
		UPDATE mentor_profiles
		SET embedding = $2::vector, updated_at = now()
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, userID, vectorLiteral(embedding))
	if err != nil {
		return convertErr(err, "updating embedding for user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating embedding for user %d", userID)
	}
	return nil
}

// SearchBySimilarity отбирает менторов по косинусной близости эмбеддингов,
// отсекая результаты ниже порога.
func (r *MentorRepository) SearchBySimilarity(
	ctx context.Context,
	args repoargs.SearchBySimilarity,
) ([]domain.MentorProfile, error) {
	const query = `
		SELECT id, created_at, updated_at, user_id, display_name, bio, skills, hourly_rate
		FROM mentor_profiles
		WHERE embedding IS NOT NULL
		  AND 1 - (embedding <=> $1::vector) >= $2
		ORDER BY embedding <=> $1::vector
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, vectorLiteral(args.Embedding), args.Threshold, args.Limit)
	if err != nil {
		return nil, convertErr(err, "searching mentors by similarity")
	}
	defer rows.Close()

	return scanProfiles(rows)
}

// SearchByKeyword запасной путь поиска: регистронезависимое вхождение подстроки
// в биографию или навыки.
func (r *MentorRepository) SearchByKeyword(
	ctx context.Context,
	args repoargs.SearchByKeyword,
) ([]domain.MentorProfile, error) {
	const query = `
		SELECT id, created_at, updated_at, user_id, display_name, bio, skills, hourly_rate
		FROM mentor_profiles
		WHERE bio ILIKE '%' || $1 || '%' OR skills ILIKE '%' || $1 || '%'
		ORDER BY updated_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, args.Query, args.Limit)
	if err != nil {
		return nil, convertErr(err, "searching mentors by keyword %s", args.Query)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func scanProfiles(rows pgx.Rows) ([]domain.MentorProfile, error) {
	var profiles []domain.MentorProfile
	for rows.Next() {
		var profile domain.MentorProfile
		if err := rows.Scan(
			&profile.ID, &profile.CreatedAt, &profile.UpdatedAt, &profile.UserID,
			&profile.DisplayName, &profile.Bio, &profile.Skills, &profile.HourlyRate,
		); err != nil {
			return nil, convertErr(err, "scanning mentor profile")
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "reading mentor profiles")
	}
	return profiles, nil
}

// vectorLiteral сериализует срез в текстовый литерал pgvector вида [0.1,0.2,...].
func vectorLiteral(vec []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
