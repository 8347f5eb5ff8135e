package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/pkg/uow"
)

const reindexTimeout = 15 * time.Second

type MentorService struct {
	userRepo   UserRepository
	mentorRepo MentorRepository
	embClient  EmbeddingClient
	l          *logrus.Entry
}

func NewMentorService(u uow.UOW, embClient EmbeddingClient, l *logrus.Logger) (*MentorService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	mentorRepo, mentorRepoErr := uow.GetRepositoryAs[MentorRepository](u, repoargs.MentorRepoName)
	if mentorRepoErr != nil {
		return nil, mentorRepoErr
	}
	return &MentorService{
		userRepo:   userRepo,
		mentorRepo: mentorRepo,
		embClient:  embClient,
		l:          l.WithField("component", "mentor_service"),
	}, nil
}

type UpdateProfileArgs struct {
	DisplayName string
	Bio         string
	Skills      string
	HourlyRate  decimal.Decimal
}

// GetProfile возвращает профиль ментора по id его юзера.
func (s *MentorService) GetProfile(ctx context.Context, userID int64) (*domain.MentorProfile, error) {
	profile, err := s.mentorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting mentor profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile обновляет профиль вызывающего ментора и перестраивает эмбеддинг
// биографии для векторного поиска. Сбой переиндексации не откатывает обновление
// профиля: поиск по такому ментору до следующей переиндексации будет работать
// только по ключевым словам.
func (s *MentorService) UpdateProfile(
	ctx context.Context,
	callerID int64,
	args UpdateProfileArgs,
) (*domain.MentorProfile, error) {
	caller, callerErr := s.userRepo.FindByID(ctx, callerID)
	if callerErr != nil {
		return nil, fmt.Errorf("updating mentor profile: %w", callerErr)
	}
	if caller.Role != domain.RoleMentor {
		return nil, fmt.Errorf("updating mentor profile: %w", domain.ErrWrongRole)
	}

	profile, updErr := s.mentorRepo.UpdateProfile(ctx, repoargs.CreateMentorProfile{
		UserID:      callerID,
		DisplayName: args.DisplayName,
		Bio:         args.Bio,
		Skills:      args.Skills,
		HourlyRate:  args.HourlyRate,
	})
	if updErr != nil {
		return nil, fmt.Errorf("updating mentor profile: %w", updErr)
	}

	s.reindex(ctx, profile)

	return profile, nil
}

func (s *MentorService) reindex(ctx context.Context, profile *domain.MentorProfile) {
	if s.embClient == nil {
		return
	}
	text := strings.TrimSpace(profile.Bio + "\n" + profile.Skills)
	if text == "" {
		return
	}

	embCtx, cancel := context.WithTimeout(ctx, reindexTimeout)
	defer cancel()

	vector, embErr := s.embClient.Embed(embCtx, text)
	if embErr != nil {
		s.l.WithError(embErr).WithField("userID", profile.UserID).Warn("mentor reindex failed")
		return
	}
	if updErr := s.mentorRepo.UpdateEmbedding(ctx, profile.UserID, vector); updErr != nil {
		s.l.WithError(updErr).WithField("userID", profile.UserID).Warn("mentor embedding update failed")
	}
}
