package pricing

import (
	"errors"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateNoDates         State = "no_dates"
	StateDatesInvalid    State = "dates_invalid"
	StateDatesValid      State = "dates_valid"
	StatePricingComputed State = "pricing_computed"
	StateComboApplied    State = "combo_applied"
	StateCouponApplied   State = "coupon_applied"
)

var (
	ErrStaleResult     = errors.New("pricing: result superseded by a newer input")
	ErrNoDates         = errors.New("pricing: stay dates are not selected")
	ErrPriceNotReady   = errors.New("pricing: price is not computed yet")
	ErrComboNotOffered = errors.New("pricing: combo is not offered for this homestay")
	ErrInvalidGuests   = errors.New("pricing: guests must be at least 1")
)

const (
	NoticeCouponRemoved = "coupon removed, please re-apply"
	NoticeComboRemoved  = "selected combo does not apply to the new dates and was removed"
)

// Context is an immutable snapshot of one booking's pricing inputs and the
// values derived from them. It only changes through Reduce.
type Context struct {
	ID             string          `json:"id"`
	HomestayID     int64           `json:"homestayId"`
	BasePrice      money.VND       `json:"basePrice"`
	Guests         int             `json:"guests"`
	MinStay        int             `json:"minStay"`
	MaxStay        int             `json:"maxStay,omitempty"`
	ServiceFeeRate decimal.Decimal `json:"serviceFeeRate"`

	// Revision advances on every accepted event.
	Revision uint64 `json:"revision"`
	// PriceRevision advances only when the dates change. Dynamic price
	// results are requested for, and accepted against, this value.
	PriceRevision uint64 `json:"priceRevision"`
	State         State  `json:"state"`

	CheckIn   string         `json:"checkIn,omitempty"`
	CheckOut  string         `json:"checkOut,omitempty"`
	DateError string         `json:"dateError,omitempty"`
	Interval  *stay.Interval `json:"interval,omitempty"`

	Dynamic       *DynamicPriceResult `json:"dynamic,omitempty"`
	Combos        []combo.Package     `json:"combos"`
	SelectedCombo *combo.Package      `json:"selectedCombo,omitempty"`
	Coupon        *coupon.Applied     `json:"coupon,omitempty"`
	Breakdown     *Breakdown          `json:"breakdown,omitempty"`

	// Notices from the last transition only.
	Notices []string `json:"notices,omitempty"`
}

func NewContext(id string, homestayID int64, basePrice money.VND, guests int, limits stay.Limits, serviceFeeRate decimal.Decimal) Context {
	minStay := limits.MinNights
	if minStay < stay.DefaultMinimumStay {
		minStay = stay.DefaultMinimumStay
	}
	return Context{
		ID:             id,
		HomestayID:     homestayID,
		BasePrice:      basePrice,
		Guests:         guests,
		MinStay:        minStay,
		MaxStay:        limits.MaxNights,
		ServiceFeeRate: serviceFeeRate,
		State:          StateNoDates,
		Combos:         []combo.Package{},
	}
}

func (c Context) ReadyToSubmit() bool {
	return c.Breakdown != nil
}

func (c Context) AwaitingPrice() bool {
	return c.Interval != nil && c.Dynamic == nil
}

func (c Context) EligibleCombos() []combo.Package {
	if c.Interval == nil {
		return []combo.Package{}
	}
	return combo.ListEligible(c.Combos, *c.Interval)
}

// CouponBasis is what a coupon validated now would be bound to.
func (c Context) CouponBasis() (coupon.Basis, error) {
	if c.Interval == nil {
		return coupon.Basis{}, ErrNoDates
	}
	if c.Dynamic == nil {
		return coupon.Basis{}, ErrPriceNotReady
	}
	pre := Aggregate(*c.Dynamic, c.ServiceFeeRate, nil, c.SelectedCombo)
	return c.basis(pre.Subtotal), nil
}

func (c Context) basis(subtotal money.VND) coupon.Basis {
	b := coupon.Basis{Subtotal: subtotal, Guests: c.Guests}
	if c.SelectedCombo != nil {
		id := c.SelectedCombo.ID
		b.ComboID = &id
	}
	if c.Interval != nil {
		b.Stay = c.Interval.String()
	}
	return b
}

type Event interface {
	apply(next *Context) error
}

// Reduce returns the context that results from ev. On error the input
// context is returned unchanged.
func Reduce(current Context, ev Event) (Context, error) {
	next := current
	next.Notices = nil
	if err := ev.apply(&next); err != nil {
		return current, err
	}
	next.Revision = current.Revision + 1
	recompute(&next)
	return next, nil
}

type DatesChanged struct {
	CheckIn  string
	CheckOut string
}

func (e DatesChanged) apply(next *Context) error {
	next.CheckIn = e.CheckIn
	next.CheckOut = e.CheckOut
	next.PriceRevision++
	next.Dynamic = nil

	iv, err := stay.Limits{MinNights: next.MinStay, MaxNights: next.MaxStay}.Create(e.CheckIn, e.CheckOut)
	if err != nil {
		next.Interval = nil
		next.DateError = err.Error()
		return nil
	}
	next.Interval = &iv
	next.DateError = ""

	if next.SelectedCombo != nil && !next.SelectedCombo.EligibleFor(iv.Nights()) {
		next.SelectedCombo = nil
		next.Notices = append(next.Notices, NoticeComboRemoved)
	}
	return nil
}

type GuestsChanged struct {
	Guests int
}

func (e GuestsChanged) apply(next *Context) error {
	if e.Guests < 1 {
		return ErrInvalidGuests
	}
	next.Guests = e.Guests
	return nil
}

// PriceResolved delivers a dynamic price computed for PriceRevision.
type PriceResolved struct {
	PriceRevision uint64
	Result        DynamicPriceResult
}

func (e PriceResolved) apply(next *Context) error {
	if e.PriceRevision != next.PriceRevision || next.Interval == nil {
		return ErrStaleResult
	}
	result := e.Result
	next.Dynamic = &result
	return nil
}

type CombosLoaded struct {
	Combos []combo.Package
}

func (e CombosLoaded) apply(next *Context) error {
	next.Combos = append([]combo.Package{}, e.Combos...)
	if next.SelectedCombo == nil {
		return nil
	}
	if _, ok := combo.FindByID(next.Combos, next.SelectedCombo.ID); !ok {
		next.SelectedCombo = nil
		next.Notices = append(next.Notices, NoticeComboRemoved)
	}
	return nil
}

type ComboSelected struct {
	ComboID int64
}

func (e ComboSelected) apply(next *Context) error {
	if next.Interval == nil {
		return ErrNoDates
	}
	pkg, ok := combo.FindByID(next.Combos, e.ComboID)
	if !ok {
		return ErrComboNotOffered
	}
	sel, err := combo.Select(pkg, *next.Interval)
	if err != nil {
		return err
	}
	next.SelectedCombo = sel.Package()
	return nil
}

type ComboCleared struct{}

func (ComboCleared) apply(next *Context) error {
	next.SelectedCombo = nil
	return nil
}

// CouponApplied binds a validation obtained while the context was at Revision.
type CouponApplied struct {
	Revision   uint64
	Validation coupon.Validation
}

func (e CouponApplied) apply(next *Context) error {
	if e.Revision != next.Revision {
		return ErrStaleResult
	}
	basis, err := next.CouponBasis()
	if err != nil {
		return err
	}
	applied := coupon.Apply(e.Validation, basis)
	next.Coupon = &applied
	return nil
}

type CouponRemoved struct{}

func (CouponRemoved) apply(next *Context) error {
	next.Coupon = nil
	return nil
}

func recompute(next *Context) {
	next.Breakdown = nil

	if next.Interval == nil {
		if next.Coupon != nil {
			next.Coupon = nil
			next.Notices = append(next.Notices, NoticeCouponRemoved)
		}
		if next.DateError != "" {
			next.State = StateDatesInvalid
		} else {
			next.State = StateNoDates
		}
		return
	}

	if next.Dynamic == nil {
		// subtotal unknown until the price arrives, everything else must still match
		if next.Coupon != nil && next.Coupon.IsStaleFor(next.basis(next.Coupon.Basis.Subtotal)) {
			next.Coupon = nil
			next.Notices = append(next.Notices, NoticeCouponRemoved)
		}
		next.State = StateDatesValid
		return
	}

	if next.Coupon != nil {
		pre := Aggregate(*next.Dynamic, next.ServiceFeeRate, nil, next.SelectedCombo)
		if next.Coupon.IsStaleFor(next.basis(pre.Subtotal)) {
			next.Coupon = nil
			next.Notices = append(next.Notices, NoticeCouponRemoved)
		}
	}

	b := Aggregate(*next.Dynamic, next.ServiceFeeRate, next.Coupon, next.SelectedCombo)
	next.Breakdown = &b

	switch {
	case next.Coupon != nil:
		next.State = StateCouponApplied
	case next.SelectedCombo != nil:
		next.State = StateComboApplied
	default:
		next.State = StatePricingComputed
	}
}
