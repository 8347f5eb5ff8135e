package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	RegisterRoute      = "/user/register"
	LoginRoute         = "/user/login"
	BookingsRoute      = "/bookings"
	BookingRoute       = "/bookings/:bookingID"
	MentorSearchRoute  = "/mentors/search"
	MentorProfileRoute = "/mentors/profile"
	MentorRoute        = "/mentors/:userID"
	BalanceRoute       = "/wallet/balance"
	WithdrawRoute      = "/wallet/withdraw"
	TransactionsRoute  = "/wallet/transactions"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	MentorService  MentorServicer
	BookingService BookingServicer
	WalletService  WalletServicer
	SearchService  SearchServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	mentorsHandler := NewMentorsHandler(args.MentorService)
	bookingsHandler := NewBookingsHandler(args.BookingService)
	walletHandler := NewWalletHandler(args.WalletService)
	searchHandler := NewSearchHandler(args.SearchService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// публичные роуты каталога менторов.
	api.GET(MentorSearchRoute, searchHandler.Search)
	api.GET(MentorRoute, mentorsHandler.Show)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.PUT(MentorProfileRoute, mentorsHandler.Update)

	api.POST(BookingsRoute, bookingsHandler.Create)
	api.GET(BookingsRoute, bookingsHandler.Index)
	api.PATCH(BookingRoute, bookingsHandler.Manage)

	api.GET(BalanceRoute, walletHandler.Balance)
	api.POST(WithdrawRoute, walletHandler.Withdraw)
	api.GET(TransactionsRoute, walletHandler.Transactions)
	return r, nil
}
