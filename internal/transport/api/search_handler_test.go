package api

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/logger"
	"github.com/fsdevblog/mentorlink/internal/service"
	"github.com/fsdevblog/mentorlink/internal/transport/api/mocks"
	"github.com/fsdevblog/mentorlink/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockSearchService *mocks.MockSearchServicer
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func (s *SearchHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockSearchService = mocks.NewMockSearchServicer(mockCtrl)

	router, routerErr := New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		SearchService: s.mockSearchService,
		JWTSecretKey:  []byte("super secret key"),
	})
	s.Require().NoError(routerErr)
	s.router = router
}

// makeRequest поиск публичный, токен не требуется.
func (s *SearchHandlerTestSuite) makeRequest(url string) *http.Response {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    url,
	})
	s.Require().NoError(err)
	return resp
}

func (s *SearchHandlerTestSuite) TestSearch() {
	s.mockSearchService.EXPECT().
		Search(gomock.Any(), "golang concurrency", uint(0)).
		Return(&service.SearchResult{
			Mentors: []domain.MentorProfile{
				{UserID: 2, DisplayName: "gopher", HourlyRate: decimal.NewFromInt(120)},
				{UserID: 3, DisplayName: "senior gopher", HourlyRate: decimal.NewFromInt(150)},
			},
		}, nil)

	resp := s.makeRequest(RouteGroup + MentorSearchRoute + "?q=golang+concurrency")
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Data     []MentorProfileResponse `json:"data"`
		Fallback bool                    `json:"fallback"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body.Data, 2)
	s.Equal("gopher", body.Data[0].DisplayName)
	s.False(body.Fallback)
}

func (s *SearchHandlerTestSuite) TestSearch_WithLimit() {
	s.mockSearchService.EXPECT().
		Search(gomock.Any(), "golang", uint(5)).
		Return(&service.SearchResult{}, nil)

	resp := s.makeRequest(RouteGroup + MentorSearchRoute + "?q=golang&limit=5")
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *SearchHandlerTestSuite) TestSearch_Fallback() {
	s.mockSearchService.EXPECT().
		Search(gomock.Any(), "golang", uint(0)).
		Return(&service.SearchResult{
			Mentors:  []domain.MentorProfile{{UserID: 2, DisplayName: "gopher"}},
			Fallback: true,
		}, nil)

	resp := s.makeRequest(RouteGroup + MentorSearchRoute + "?q=golang")
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Fallback bool `json:"fallback"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.True(body.Fallback)
}

func (s *SearchHandlerTestSuite) TestSearch_EmptyQuery() {
	s.mockSearchService.EXPECT().
		Search(gomock.Any(), "", uint(0)).
		Return(nil, domain.ErrEmptySearchQuery)

	resp := s.makeRequest(RouteGroup + MentorSearchRoute)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *SearchHandlerTestSuite) TestSearch_BadLimit() {
	// до сервиса дойти не должны.
	s.mockSearchService.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp := s.makeRequest(RouteGroup + MentorSearchRoute + "?q=golang&limit=abc")
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
