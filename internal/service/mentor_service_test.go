package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"
	"github.com/fsdevblog/mentorlink/internal/service/mocks"
	"github.com/fsdevblog/mentorlink/pkg/uow"
	uowmocks "github.com/fsdevblog/mentorlink/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type MentorServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockUserRepo   *mocks.MockUserRepository
	mockMentorRepo *mocks.MockMentorRepository
	mockEmbClient  *mocks.MockEmbeddingClient
	mentorService  *MentorService
}

func TestMentorServiceSuite(t *testing.T) {
	suite.Run(t, new(MentorServiceTestSuite))
}

func (s *MentorServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockMentorRepo = mocks.NewMockMentorRepository(s.mockCtrl)
	s.mockEmbClient = mocks.NewMockEmbeddingClient(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.MentorRepoName)).
		Return(s.mockMentorRepo, nil).AnyTimes()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	mentorService, servErr := NewMentorService(s.mockUOW, s.mockEmbClient, logger)
	s.Require().NoError(servErr)
	s.mentorService = mentorService
}

func (s *MentorServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MentorServiceTestSuite) TestGetProfile() {
	var userID int64 = 2
	profile := domain.MentorProfile{UserID: userID, DisplayName: "gopher"}

	s.mockMentorRepo.EXPECT().FindByUserID(gomock.Any(), userID).Return(&profile, nil)

	got, err := s.mentorService.GetProfile(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(profile.DisplayName, got.DisplayName)
}

func (s *MentorServiceTestSuite) TestUpdateProfile() {
	var userID int64 = 2
	args := UpdateProfileArgs{
		DisplayName: "gopher",
		Bio:         "ten years of go",
		Skills:      "go, postgres",
		HourlyRate:  decimal.NewFromInt(100),
	}
	updated := domain.MentorProfile{
		UserID:      userID,
		DisplayName: args.DisplayName,
		Bio:         args.Bio,
		Skills:      args.Skills,
		HourlyRate:  args.HourlyRate,
	}
	vector := []float64{0.1, 0.2}

	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Role: domain.RoleMentor}, nil)
	s.mockMentorRepo.EXPECT().UpdateProfile(gomock.Any(), repoargs.CreateMentorProfile{
		UserID:      userID,
		DisplayName: args.DisplayName,
		Bio:         args.Bio,
		Skills:      args.Skills,
		HourlyRate:  args.HourlyRate,
	}).Return(&updated, nil)

	// после обновления профиля перестраивается эмбеддинг.
	s.mockEmbClient.EXPECT().Embed(gomock.Any(), args.Bio+"\n"+args.Skills).Return(vector, nil)
	s.mockMentorRepo.EXPECT().UpdateEmbedding(gomock.Any(), userID, vector).Return(nil)

	got, err := s.mentorService.UpdateProfile(s.T().Context(), userID, args)
	s.Require().NoError(err)
	s.Equal(args.DisplayName, got.DisplayName)
}

// TestUpdateProfile_ReindexFails сбой переиндексации не откатывает обновление профиля.
func (s *MentorServiceTestSuite) TestUpdateProfile_ReindexFails() {
	var userID int64 = 2
	args := UpdateProfileArgs{DisplayName: "gopher", Bio: "bio", HourlyRate: decimal.NewFromInt(50)}
	updated := domain.MentorProfile{UserID: userID, DisplayName: args.DisplayName, Bio: args.Bio}

	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Role: domain.RoleMentor}, nil)
	s.mockMentorRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(&updated, nil)

	s.mockEmbClient.EXPECT().Embed(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider down"))
	s.mockMentorRepo.EXPECT().UpdateEmbedding(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.mentorService.UpdateProfile(s.T().Context(), userID, args)
	s.Require().NoError(err)
}

func (s *MentorServiceTestSuite) TestUpdateProfile_WrongRole() {
	var userID int64 = 1
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Role: domain.RoleStudent}, nil)

	_, err := s.mentorService.UpdateProfile(s.T().Context(), userID, UpdateProfileArgs{DisplayName: "x"})
	s.Require().ErrorIs(err, domain.ErrWrongRole)
}
