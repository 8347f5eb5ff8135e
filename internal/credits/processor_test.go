package credits

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/fsdevblog/mentorlink/internal/credits/mocks"
	"github.com/fsdevblog/mentorlink/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockBookingSvs *mocks.MockBookingServicer
	mockWalletSvs  *mocks.MockWalletServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockBookingSvs = mocks.NewMockBookingServicer(s.ctrl)
	s.mockWalletSvs = mocks.NewMockWalletServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockBookingSvs, s.mockWalletSvs, logger)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoBookings Тест на случай, когда нет броней для начисления.
func (s *ProcessorTestSuite) TestProcess_NoBookings() {
	s.mockBookingSvs.EXPECT().
		UncreditedBookings(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.Booking{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoBookings)
}

// TestProcess_Success Тест на успешное начисление по всем броням выборки.
func (s *ProcessorTestSuite) TestProcess_Success() {
	testBookings := []domain.Booking{
		{ID: uuid.New(), MentorID: 100, Amount: decimal.NewFromInt(180)},
		{ID: uuid.New(), MentorID: 101, Amount: decimal.NewFromInt(90)},
	}

	s.mockBookingSvs.EXPECT().
		UncreditedBookings(gomock.Any(), s.processor.limitPerIteration).
		Return(testBookings, nil)

	// Убеждаемся что начисление вызвано ровно по одному разу на бронь.
	var mu sync.Mutex
	credited := make(map[uuid.UUID]int)

	s.mockWalletSvs.EXPECT().
		CreditForBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bookingID uuid.UUID) error {
			mu.Lock()
			defer mu.Unlock()
			credited[bookingID]++
			return nil
		}).Times(len(testBookings))

	err := s.processor.process(s.T().Context())
	s.Require().NoError(err)

	for _, booking := range testBookings {
		s.Equal(1, credited[booking.ID])
	}
}

// TestProcess_AlreadyCredited повторное начисление по брони - штатная ситуация
// при ретрае, не ошибка обработки.
func (s *ProcessorTestSuite) TestProcess_AlreadyCredited() {
	testBookings := []domain.Booking{
		{ID: uuid.New(), MentorID: 100},
		{ID: uuid.New(), MentorID: 101},
	}

	s.mockBookingSvs.EXPECT().
		UncreditedBookings(gomock.Any(), s.processor.limitPerIteration).
		Return(testBookings, nil)

	s.mockWalletSvs.EXPECT().
		CreditForBooking(gomock.Any(), testBookings[0].ID).
		Return(domain.ErrAlreadyCredited)
	s.mockWalletSvs.EXPECT().
		CreditForBooking(gomock.Any(), testBookings[1].ID).
		Return(nil)

	err := s.processor.process(s.T().Context())
	s.NoError(err)
}
