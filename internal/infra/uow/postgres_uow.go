package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/infra/readstore"
	"raga-booking/internal/infra/repository"
	"raga-booking/internal/pkg/errs"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	venueRepo    shared.VenueRepository
	bookingRepo  shared.BookingRepository
	reviewRepo   shared.ReviewRepository
	wishlistRepo shared.WishlistRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Venues() shared.VenueRepository {
	if t.venueRepo == nil {
		t.venueRepo = repository.NewVenueRepository()
	}
	return t.venueRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) Wishlist() shared.WishlistRepository {
	if t.wishlistRepo == nil {
		t.wishlistRepo = repository.NewWishlistRepository()
	}
	return t.wishlistRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	venueStore   *readstore.VenueReadStore
	bookingStore *readstore.BookingReadStore
}

func (r *commandReads) venues() *readstore.VenueReadStore {
	if r.venueStore == nil {
		r.venueStore = readstore.NewVenueReadStore(r.dbtx)
	}
	return r.venueStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) VenueBySlug(ctx context.Context, slug string) (*shared.VenueSnapshot, error) {
	row, err := r.venues().FindSnapshotBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.VenueSnapshot{
		ID:           row.ID,
		Name:         row.Name,
		Slug:         row.Slug,
		CategoryID:   row.CategoryID,
		PricePerHour: row.PricePerHour,
	}
	return snapshot, nil
}

func (r *commandReads) VenueAddOns(ctx context.Context, venueID uuid.UUID) ([]shared.AddOnSnapshot, error) {
	views, err := r.venues().FindAddOns(ctx, venueID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shared.AddOnSnapshot, len(views))
	for i, v := range views {
		snapshots[i] = shared.AddOnSnapshot{
			ID:    v.ID,
			Name:  v.Name,
			Price: v.Price,
		}
	}
	return snapshots, nil
}

func (r *commandReads) VenueSlugsLike(ctx context.Context, prefix string) ([]string, error) {
	return r.venues().FindSlugsLike(ctx, prefix)
}

func (r *commandReads) SlotsByVenueDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]booking.ExistingSlot, error) {
	rows, err := r.bookings().FindSlotsByVenueDate(ctx, venueID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]booking.ExistingSlot, 0, len(rows))
	for _, row := range rows {
		slot, err := booking.NewSlot(row.Date, booking.TimeOfDay(row.StartMinutes), booking.TimeOfDay(row.EndMinutes))
		if err != nil {
			return nil, errs.Wrap(err, "stored booking has invalid slot")
		}
		slots = append(slots, booking.ExistingSlot{
			Slot:   slot,
			Status: booking.Status(row.Status),
		})
	}
	return slots, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	view, err := r.bookings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BookingSnapshot{
		ID:        view.ID,
		VenueID:   view.VenueID,
		UserID:    view.UserID,
		Status:    booking.Status(view.Status),
		Date:      view.Date,
		CreatedAt: view.CreatedAt,
	}
	return snapshot, nil
}
