package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/mentorlink/internal/credits"
	"github.com/fsdevblog/mentorlink/internal/repository/repoargs"

	"github.com/fsdevblog/mentorlink/internal/transport/mailer"

	"github.com/fsdevblog/mentorlink/pkg/uow"

	"github.com/fsdevblog/mentorlink/internal/config"
	"github.com/fsdevblog/mentorlink/internal/repository/pgrepo"
	"github.com/fsdevblog/mentorlink/internal/service"
	"github.com/fsdevblog/mentorlink/internal/transport/api"
	embclient "github.com/fsdevblog/mentorlink/internal/transport/embedding/client"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	embClient := embclient.New(a.Config.EmbeddingAPIURL, a.Config.EmbeddingAPIKey, a.Config.EmbeddingModel)

	// Без почтового провайдера уведомления просто не отправляются.
	var notifier service.Notifier
	if a.Config.MailerAPIURL != "" {
		notifier = mailer.NewNotifier(mailer.New(a.Config.MailerAPIURL, a.Config.MailerAPIKey, a.Config.MailerFrom))
	}

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		JWTSecret: []byte(a.Config.JWTUserSecret),
		EmbClient: embClient,
		Notifier:  notifier,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:         a.Logger,
		UserService:    services.UserService,
		MentorService:  services.MentorService,
		BookingService: services.BookingService,
		WalletService:  services.WalletService,
		SearchService:  services.SearchService,
		JWTSecretKey:   []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := credits.New(services.BookingService, services.WalletService, a.Logger).
		SetCreditWorkers(5).     //nolint:mnd
		SetLimitPerIteration(50) //nolint:mnd

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// mentor repo
	mentorRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewMentorRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.MentorRepoName), mentorRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// booking repo
	bookingRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewBookingRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.BookingRepoName), bookingRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// wallet repo
	walletRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewWalletRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.WalletRepoName), walletRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
