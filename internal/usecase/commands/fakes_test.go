//go:build unit

package commands_test

import (
	"context"
	"strings"
	"time"

	"raga-booking/internal/domain/booking"
	"raga-booking/internal/domain/review"
	"raga-booking/internal/domain/venue"
	"raga-booking/internal/infra"
	"raga-booking/internal/infra/db"
	"raga-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory UnitOfWork for command tests. Within runs the callback directly;
// retry and transaction mechanics are covered at the infra layer.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeTx struct {
	reads    *fakeReads
	venues   *fakeVenueRepo
	bookings *fakeBookingRepo
	reviews  *fakeReviewRepo
	wishlist *fakeWishlistRepo
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		reads: &fakeReads{
			venuesBySlug: make(map[string]*shared.VenueSnapshot),
			addOns:       make(map[uuid.UUID][]shared.AddOnSnapshot),
			slots:        make(map[uuid.UUID][]booking.ExistingSlot),
			bookings:     make(map[uuid.UUID]*shared.BookingSnapshot),
		},
		venues:   &fakeVenueRepo{},
		bookings: &fakeBookingRepo{statuses: make(map[uuid.UUID]booking.Status)},
		reviews:  &fakeReviewRepo{},
		wishlist: &fakeWishlistRepo{present: make(map[wishlistKey]bool)},
	}
}

func (t *fakeTx) Venues() shared.VenueRepository      { return t.venues }
func (t *fakeTx) Bookings() shared.BookingRepository  { return t.bookings }
func (t *fakeTx) Reviews() shared.ReviewRepository    { return t.reviews }
func (t *fakeTx) Wishlist() shared.WishlistRepository { return t.wishlist }
func (t *fakeTx) Reads() shared.CommandReads          { return t.reads }
func (t *fakeTx) DB() db.DBTX                         { return nil }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	venuesBySlug map[string]*shared.VenueSnapshot
	addOns       map[uuid.UUID][]shared.AddOnSnapshot
	slugs        []string
	slots        map[uuid.UUID][]booking.ExistingSlot
	bookings     map[uuid.UUID]*shared.BookingSnapshot
}

func (r *fakeReads) VenueBySlug(_ context.Context, slug string) (*shared.VenueSnapshot, error) {
	snap, ok := r.venuesBySlug[slug]
	if !ok {
		return nil, notFoundErr("venue not found")
	}
	return snap, nil
}

func (r *fakeReads) VenueAddOns(_ context.Context, venueID uuid.UUID) ([]shared.AddOnSnapshot, error) {
	return r.addOns[venueID], nil
}

func (r *fakeReads) VenueSlugsLike(_ context.Context, prefix string) ([]string, error) {
	var out []string
	for _, s := range r.slugs {
		if s == prefix || strings.HasPrefix(s, prefix+"-") {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeReads) SlotsByVenueDate(_ context.Context, venueID uuid.UUID, date time.Time) ([]booking.ExistingSlot, error) {
	var out []booking.ExistingSlot
	for _, s := range r.slots[venueID] {
		if s.Slot.Date().Equal(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.bookings[id]
	if !ok {
		return nil, notFoundErr("booking not found")
	}
	return snap, nil
}

type fakeVenueRepo struct {
	created   []*venue.Venue
	updated   []*venue.Venue
	addOns    []*venue.AddOn
	locked    []uuid.UUID
	createErr error
	updateErr error
	addOnErr  error
}

func (r *fakeVenueRepo) Create(_ context.Context, _ db.DBTX, v *venue.Venue) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, v)
	return v.ID(), nil
}

func (r *fakeVenueRepo) Update(_ context.Context, _ db.DBTX, v *venue.Venue) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, v)
	return nil
}

func (r *fakeVenueRepo) Lock(_ context.Context, _ db.DBTX, venueID uuid.UUID) error {
	r.locked = append(r.locked, venueID)
	return nil
}

func (r *fakeVenueRepo) CreateAddOn(_ context.Context, _ db.DBTX, a *venue.AddOn) (uuid.UUID, error) {
	if r.addOnErr != nil {
		return uuid.Nil, r.addOnErr
	}
	r.addOns = append(r.addOns, a)
	return a.ID(), nil
}

type fakeBookingRepo struct {
	created   []*booking.Booking
	statuses  map[uuid.UUID]booking.Status
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, b)
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	r.statuses[id] = status
	return nil
}

type fakeReviewRepo struct {
	upserted  []*review.Review
	upsertErr error
}

func (r *fakeReviewRepo) Upsert(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if r.upsertErr != nil {
		return uuid.Nil, r.upsertErr
	}
	r.upserted = append(r.upserted, rev)
	return rev.ID(), nil
}

type wishlistKey struct {
	userID  uuid.UUID
	venueID uuid.UUID
}

type fakeWishlistRepo struct {
	present map[wishlistKey]bool
}

func (r *fakeWishlistRepo) Add(_ context.Context, _ db.DBTX, userID, venueID uuid.UUID) (bool, error) {
	k := wishlistKey{userID: userID, venueID: venueID}
	if r.present[k] {
		return false, nil
	}
	r.present[k] = true
	return true, nil
}

func (r *fakeWishlistRepo) Remove(_ context.Context, _ db.DBTX, userID, venueID uuid.UUID) (bool, error) {
	k := wishlistKey{userID: userID, venueID: venueID}
	if !r.present[k] {
		return false, nil
	}
	delete(r.present, k)
	return true, nil
}
