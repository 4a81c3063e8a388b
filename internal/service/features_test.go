package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/repository/memory"
	"github.com/wb-go/wbf/logger"
)

type availabilityFeature struct {
	log          logger.Logger
	store        *memory.Store
	items        *ItemService
	reservations *ReservationService
	item         *domain.BookableItem
	holds        map[string]*domain.Reservation
	err          error
}

func (f *availabilityFeature) reset() {
	f.store = memory.New()
	f.items = NewItemService(f.store.Items(), f.store.Ledger(), f.store.Reservations(), f.store, nopPublisher{}, f.log, testItemConfig)
	f.reservations = NewReservationService(
		f.store.Ledger(), f.store.Reservations(), f.store, f.store.Items(), f.store.Users(),
		nopNotifier{}, nopPublisher{}, f.log,
		ReservationConfig{HoldTTL: 15 * time.Minute, ExpireBatch: 100},
	)
	f.item = nil
	f.holds = make(map[string]*domain.Reservation)
	f.err = nil
}

func (f *availabilityFeature) aTourOpenFromToWithCapacity(start, end string, capacity int) error {
	from, err := domain.ParseTimeOfDay(start)
	if err != nil {
		return err
	}
	to, err := domain.ParseTimeOfDay(end)
	if err != nil {
		return err
	}

	f.item, err = f.items.Create(context.Background(), domain.CreateItemInput{
		Kind:      domain.ItemKindTour,
		Name:      "Harbour walk",
		StartTime: from,
		EndTime:   to,
		Capacity:  capacity,
		Prices:    domain.Prices{A: 2500, B: 2000, C: 1500},
	})
	return err
}

func (f *availabilityFeature) availabilityIsSeededFromTo(from, to string) error {
	fromDate, err := domain.ParseDate(from)
	if err != nil {
		return err
	}
	toDate, err := domain.ParseDate(to)
	if err != nil {
		return err
	}

	_, err = f.items.SeedLedger(context.Background(), f.item.ID, fromDate, toDate)
	return err
}

func (f *availabilityFeature) theSlotsOnAre(date, expected string) error {
	day, err := domain.ParseDate(date)
	if err != nil {
		return err
	}

	entries, err := f.items.Availability(context.Background(), f.item.ID, day, day)
	if err != nil {
		return err
	}

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Time.String())
	}
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected slots %q, got %q", expected, strings.Join(got, ", "))
	}
	return nil
}

func (f *availabilityFeature) cartHoldsOfTheSlotOn(cart string, qty int, slot, date string) error {
	t, err := domain.ParseTimeOfDay(slot)
	if err != nil {
		return err
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return err
	}

	r, err := f.reservations.Reserve(context.Background(), domain.ReserveInput{
		CartID:   cart,
		UserID:   cart,
		ItemID:   f.item.ID,
		Date:     day,
		Time:     t,
		Quantity: qty,
		Tier:     domain.TierA,
	})
	f.err = err
	if err == nil {
		f.holds[cart] = r
	}
	return nil
}

func (f *availabilityFeature) theSlotOnHasRemaining(slot, date string, remaining int) error {
	t, err := domain.ParseTimeOfDay(slot)
	if err != nil {
		return err
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return err
	}

	e, err := f.store.Ledger().Get(context.Background(), domain.NewLedgerKey(f.item.ID, day, t))
	if err != nil {
		return err
	}
	if e.Remaining != remaining {
		return fmt.Errorf("expected %d remaining, got %d", remaining, e.Remaining)
	}
	return nil
}

func (f *availabilityFeature) theHoldFailsBecauseTheSlotIsFull() error {
	if !errors.Is(f.err, domain.ErrSlotUnavailable) {
		return fmt.Errorf("expected slot unavailable, got %v", f.err)
	}
	return nil
}

func (f *availabilityFeature) hold(cart string) (*domain.Reservation, error) {
	r, ok := f.holds[cart]
	if !ok {
		return nil, fmt.Errorf("cart %q holds nothing", cart)
	}
	return r, nil
}

func (f *availabilityFeature) cartConfirmsItsHold(cart string) error {
	r, err := f.hold(cart)
	if err != nil {
		return err
	}
	_, f.err = f.reservations.Confirm(context.Background(), r.ID)
	return f.err
}

func (f *availabilityFeature) cartReleasesItsHold(cart string) error {
	r, err := f.hold(cart)
	if err != nil {
		return err
	}
	_, f.err = f.reservations.Release(context.Background(), r.ID)
	return nil
}

func (f *availabilityFeature) theReleaseIsRejectedAsAnInvalidTransition() error {
	if !errors.Is(f.err, domain.ErrInvalidStateTransition) {
		return fmt.Errorf("expected invalid state transition, got %v", f.err)
	}
	return nil
}

func (f *availabilityFeature) theHoldOfCartIs(cart, status string) error {
	r, err := f.hold(cart)
	if err != nil {
		return err
	}
	cur, err := f.reservations.Get(context.Background(), r.ID)
	if err != nil {
		return err
	}
	if string(cur.Status) != status {
		return fmt.Errorf("expected hold of %q to be %s, got %s", cart, status, cur.Status)
	}
	return nil
}

func (f *availabilityFeature) theTourIsDeleted() error {
	return f.items.Delete(context.Background(), f.item.ID)
}

func (f *availabilityFeature) theTourHasNoLedgerEntries() error {
	far := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	entries, err := f.store.Ledger().ListByItem(context.Background(), f.item.ID, time.Time{}, far)
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		return fmt.Errorf("expected no ledger entries, got %d", len(entries))
	}
	return nil
}

func initializeAvailabilityScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		f := &availabilityFeature{log: newTestLogger(t)}

		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			f.reset()
			return ctx, nil
		})

		ctx.Step(`^a tour open from "([^"]*)" to "([^"]*)" with capacity (\d+)$`, f.aTourOpenFromToWithCapacity)
		ctx.Step(`^availability is seeded from "([^"]*)" to "([^"]*)"$`, f.availabilityIsSeededFromTo)
		ctx.Step(`^cart "([^"]*)" holds (\d+) of the "([^"]*)" slot on "([^"]*)"$`, f.cartHoldsOfTheSlotOn)
		ctx.Step(`^cart "([^"]*)" confirms its hold$`, f.cartConfirmsItsHold)
		ctx.Step(`^cart "([^"]*)" releases its hold$`, f.cartReleasesItsHold)
		ctx.Step(`^the tour is deleted$`, f.theTourIsDeleted)

		ctx.Step(`^the slots on "([^"]*)" are "([^"]*)"$`, f.theSlotsOnAre)
		ctx.Step(`^the "([^"]*)" slot on "([^"]*)" has (\d+) remaining$`, f.theSlotOnHasRemaining)
		ctx.Step(`^the hold fails because the slot is full$`, f.theHoldFailsBecauseTheSlotIsFull)
		ctx.Step(`^the release is rejected as an invalid transition$`, f.theReleaseIsRejectedAsAnInvalidTransition)
		ctx.Step(`^the hold of cart "([^"]*)" is (held|confirmed|released)$`, f.theHoldOfCartIs)
		ctx.Step(`^the tour has no ledger entries$`, f.theTourHasNoLedgerEntries)
	}
}

func TestAvailabilityFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeAvailabilityScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
