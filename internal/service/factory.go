package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/pkg/uow"
)

type AppServices struct {
	UserService    *UserService
	MentorService  *MentorService
	BookingService *BookingService
	WalletService  *WalletService
	SearchService  *SearchService
}

type FactoryArgs struct {
	UOW       uow.UOW
	JWTSecret []byte
	EmbClient EmbeddingClient
	Notifier  Notifier
	Logger    *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW, args.JWTSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	mentorService, mentorServiceErr := NewMentorService(args.UOW, args.EmbClient, args.Logger)
	if mentorServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", mentorServiceErr.Error())
	}

	bookingService, bookingServiceErr := NewBookingService(args.UOW, args.Notifier, args.Logger)
	if bookingServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", bookingServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(args.UOW)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	searchService, searchServiceErr := NewSearchService(args.UOW, args.EmbClient, args.Logger)
	if searchServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", searchServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		MentorService:  mentorService,
		BookingService: bookingService,
		WalletService:  walletService,
		SearchService:  searchService,
	}, nil
}
