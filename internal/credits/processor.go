// Package credits начисляет менторам стоимость завершенных оплаченных сессий.
// Процессор работает в режиме at-least-once: бронь остается в очереди, пока
// начисление не зафиксировано, а идемпотентность гарантирует сервисный слой.
package credits

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/mentorlink/internal/domain"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultCreditTimeout          = 5 * time.Second
	defaultLimitPerIteration uint = 100
	defaultCreditWorkers     uint = 5
	defaultIdlePause              = 5 * time.Second
)

// Processor фоновый обработчик начислений на кошельки менторов.
type Processor struct {
	bookingSvs        BookingServicer
	walletSvs         WalletServicer
	l                 *logrus.Entry
	limitPerIteration uint
	creditWorkers     uint
}

// New создает новый экземпляр процессора начислений.
func New(bookingSvs BookingServicer, walletSvs WalletServicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "credits",
		"module":    "processor",
	})

	return &Processor{
		bookingSvs:        bookingSvs,
		walletSvs:         walletSvs,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		creditWorkers:     defaultCreditWorkers,
	}
}

// SetLimitPerIteration устанавливает кол-во броней, обрабатываемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetCreditWorkers устанавливает кол-во воркеров, выполняющих начисления.
func (p *Processor) SetCreditWorkers(workers uint) *Processor {
	p.creditWorkers = workers
	return p
}

// Run запускает обработку начислений в бесконечном цикле до отмены контекста.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"creditWorkers":     p.creditWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoBookings) {
					p.l.WithError(err).Error("process error")
				}
				// пауза, чтобы не крутить пустые выборки по БД.
				select {
				case <-ctx.Done():
				case <-time.After(defaultIdlePause):
				}
			}
		}
	}
}

// process выполняет одну итерацию: выборка необработанных броней и параллельное
// начисление. Возвращает ErrNoBookings, если очередь пуста.
func (p *Processor) process(ctx context.Context) error {
	bookings, produceErr := p.produce(ctx)
	if produceErr != nil {
		return fmt.Errorf("process: %w", produceErr)
	}

	p.runWorkers(ctx, bookings)
	return nil
}

// runWorkers запускает параллельных воркеров начисления и ожидает конца их работы.
// Паттерн fan-out/fan-in.
func (p *Processor) runWorkers(ctx context.Context, bookings []domain.Booking) {
	var taskCh = make(chan *domain.Booking, len(bookings))
	for _, booking := range bookings {
		taskCh <- &booking
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.creditWorkers)) //nolint:gosec

	for i := range p.creditWorkers {
		go p.worker(ctx, wg, i+1, taskCh)
	}
	wg.Wait()
}

func (p *Processor) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint, taskCh <-chan *domain.Booking) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			p.creditBooking(ctx, workerID, task)
		}
	}
}

func (p *Processor) creditBooking(ctx context.Context, workerID uint, booking *domain.Booking) {
	l := p.l.WithFields(logrus.Fields{
		"worker":    workerID,
		"bookingID": booking.ID,
		"mentorID":  booking.MentorID,
	})

	creditCtx, cancel := context.WithTimeout(ctx, defaultCreditTimeout)
	defer cancel()

	err := p.walletSvs.CreditForBooking(creditCtx, booking.ID)
	switch {
	case err == nil:
		l.WithField("amount", booking.Amount).Info("Credited")
	case errors.Is(err, domain.ErrAlreadyCredited):
		// ретрай после сбоя между записью журнала и отметкой брони - не ошибка.
		l.Info("Already credited, skipping")
	default:
		l.WithError(err).Error("credit booking")
	}
}

// produce получает список броней, ожидающих начисления.
// Возвращает ErrNoBookings, если таких нет.
func (p *Processor) produce(ctx context.Context) ([]domain.Booking, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	bookings, bookingsErr := p.bookingSvs.UncreditedBookings(produceCtx, p.limitPerIteration)
	if bookingsErr != nil {
		return nil, fmt.Errorf("produce: %w", bookingsErr)
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}
	return bookings, nil
}
