package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/fsdevblog/mentorlink/internal/logger"
	"github.com/fsdevblog/mentorlink/internal/service"
	"github.com/fsdevblog/mentorlink/internal/transport/api/mocks"
	"github.com/fsdevblog/mentorlink/internal/transport/api/testutils"
	"github.com/fsdevblog/mentorlink/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type BookingsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBookingService *mocks.MockBookingServicer
	jwtSecret          []byte
}

func TestBookingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingsHandlerTestSuite))
}

func (s *BookingsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockBookingService = mocks.NewMockBookingServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		BookingService: s.mockBookingService,
		JWTSecretKey:   s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *BookingsHandlerTestSuite) userToken(userID int64) string {
	token, err := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *BookingsHandlerTestSuite) makeJSONRequest(method, url, jwtToken string, payload any) *http.Response {
	body, marshalErr := json.Marshal(payload)
	s.Require().NoError(marshalErr)

	opts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}
	if jwtToken != "" {
		opts = append(opts, testutils.WithBearerToken(jwtToken))
	}

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   bytes.NewReader(body),
	}, opts...)
	s.Require().NoError(err)
	return resp
}

func (s *BookingsHandlerTestSuite) TestCreate() {
	var studentID int64 = 1
	var mentorID int64 = 2
	startsAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	s.mockBookingService.EXPECT().
		Book(gomock.Any(), studentID, service.BookArgs{
			MentorID:        mentorID,
			StartsAt:        startsAt,
			DurationMinutes: 60,
			SessionType:     "mock interview",
		}).
		Return(&domain.Booking{
			ID:              uuid.New(),
			MentorID:        mentorID,
			StudentID:       studentID,
			StartsAt:        startsAt,
			DurationMinutes: 60,
			Status:          domain.BookingStatusPending,
			PaymentStatus:   domain.PaymentStatusUnpaid,
			Amount:          decimal.NewFromInt(120),
		}, nil)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+BookingsRoute, s.userToken(studentID), gin.H{
		"mentor_id":        mentorID,
		"starts_at":        startsAt.Format(time.RFC3339),
		"duration_minutes": 60,
		"session_type":     "mock interview",
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var body struct {
		Data BookingResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(domain.BookingStatusPending, body.Data.Status)
	s.InDelta(120, body.Data.Amount, 0.0001)
}

func (s *BookingsHandlerTestSuite) TestCreate_Conflict() {
	var studentID int64 = 1

	s.mockBookingService.EXPECT().
		Book(gomock.Any(), studentID, gomock.Any()).
		Return(nil, domain.ErrBookingConflict)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+BookingsRoute, s.userToken(studentID), gin.H{
		"mentor_id":        2,
		"starts_at":        time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration_minutes": 60,
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *BookingsHandlerTestSuite) TestCreate_Unauthorized() {
	s.mockBookingService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+BookingsRoute, "", gin.H{
		"mentor_id":        2,
		"starts_at":        time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration_minutes": 60,
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *BookingsHandlerTestSuite) TestCreate_BadDuration() {
	s.mockBookingService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// длительность меньше минимальной.
	resp := s.makeJSONRequest(http.MethodPost, RouteGroup+BookingsRoute, s.userToken(1), gin.H{
		"mentor_id":        2,
		"starts_at":        time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration_minutes": 5,
	})
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *BookingsHandlerTestSuite) TestIndex() {
	var studentID int64 = 1
	bookings := []domain.Booking{
		{ID: uuid.New(), StudentID: studentID, Status: domain.BookingStatusPending},
	}

	s.mockBookingService.EXPECT().List(gomock.Any(), studentID).Return(bookings, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+BookingsRoute, s.userToken(studentID), nil)
	defer resp.Body.Close() //nolint:errcheck

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Data []BookingResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Len(body.Data, 1)
}

func (s *BookingsHandlerTestSuite) TestIndex_Empty() {
	var studentID int64 = 1
	s.mockBookingService.EXPECT().List(gomock.Any(), studentID).Return(nil, nil)

	resp := s.makeJSONRequest(http.MethodGet, RouteGroup+BookingsRoute, s.userToken(studentID), nil)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *BookingsHandlerTestSuite) TestManage() {
	var mentorID int64 = 2
	bookingID := uuid.New()

	confirmed := domain.Booking{ID: bookingID, MentorID: mentorID, Status: domain.BookingStatusConfirmed}
	completed := domain.Booking{
		ID:            bookingID,
		MentorID:      mentorID,
		Status:        domain.BookingStatusCompleted,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	cancelled := domain.Booking{ID: bookingID, MentorID: mentorID, Status: domain.BookingStatusCancelled}

	s.mockBookingService.EXPECT().Confirm(gomock.Any(), mentorID, bookingID).Return(&confirmed, nil)
	// payment_status по умолчанию - paid.
	s.mockBookingService.EXPECT().Complete(gomock.Any(), mentorID, bookingID, domain.PaymentStatusPaid).
		Return(&completed, nil)
	s.mockBookingService.EXPECT().Cancel(gomock.Any(), mentorID, bookingID).Return(&cancelled, nil)

	cases := []struct {
		name       string
		payload    gin.H
		wantStatus domain.BookingStatusType
	}{
		{name: "confirm", payload: gin.H{"action": "confirm"}, wantStatus: domain.BookingStatusConfirmed},
		{name: "complete", payload: gin.H{"action": "complete"}, wantStatus: domain.BookingStatusCompleted},
		{name: "cancel", payload: gin.H{"action": "cancel"}, wantStatus: domain.BookingStatusCancelled},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.makeJSONRequest(
				http.MethodPatch,
				RouteGroup+"/bookings/"+bookingID.String(),
				s.userToken(mentorID),
				t.payload,
			)
			defer resp.Body.Close() //nolint:errcheck

			s.Require().Equal(http.StatusOK, resp.StatusCode)

			var body struct {
				Data BookingResponse `json:"data"`
			}
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
			s.Equal(t.wantStatus, body.Data.Status)
		})
	}
}

func (s *BookingsHandlerTestSuite) TestManage_InvalidTransition() {
	var mentorID int64 = 2
	bookingID := uuid.New()

	s.mockBookingService.EXPECT().Confirm(gomock.Any(), mentorID, bookingID).
		Return(nil, domain.NewInvalidTransitionError(domain.BookingStatusCancelled, domain.BookingStatusConfirmed))

	resp := s.makeJSONRequest(
		http.MethodPatch,
		RouteGroup+"/bookings/"+bookingID.String(),
		s.userToken(mentorID),
		gin.H{"action": "confirm"},
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *BookingsHandlerTestSuite) TestManage_NotOwner() {
	bookingID := uuid.New()

	s.mockBookingService.EXPECT().Confirm(gomock.Any(), gomock.Any(), bookingID).
		Return(nil, domain.ErrOwnerConflict)

	resp := s.makeJSONRequest(
		http.MethodPatch,
		RouteGroup+"/bookings/"+bookingID.String(),
		s.userToken(999),
		gin.H{"action": "confirm"},
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *BookingsHandlerTestSuite) TestManage_BadRequest() {
	s.mockBookingService.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name string
		url  string
		body gin.H
	}{
		{name: "bad uuid", url: RouteGroup + "/bookings/not-a-uuid", body: gin.H{"action": "confirm"}},
		{name: "unknown action", url: RouteGroup + "/bookings/" + uuid.NewString(), body: gin.H{"action": "freeze"}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := s.makeJSONRequest(http.MethodPatch, t.url, s.userToken(1), t.body)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(http.StatusBadRequest, resp.StatusCode)
		})
	}
}
