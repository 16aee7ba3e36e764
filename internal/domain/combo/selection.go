package combo

import "homestay-pricing/internal/domain/stay"

// Selection holds at most one chosen combo.
type Selection struct {
	selected *Package
}

func NoSelection() Selection {
	return Selection{}
}

// Select fails with ErrComboIneligible when the stay is too short or too long for p.
func Select(p Package, iv stay.Interval) (Selection, error) {
	if !p.EligibleFor(iv.Nights()) {
		return Selection{}, ErrComboIneligible
	}
	return Selection{selected: &p}, nil
}

func (s Selection) Deselect() Selection {
	return Selection{}
}

// Revalidate drops the selection when iv makes it ineligible. The bool reports a drop.
func (s Selection) Revalidate(iv stay.Interval) (Selection, bool) {
	if s.selected == nil {
		return s, false
	}
	if s.selected.EligibleFor(iv.Nights()) {
		return s, false
	}
	return Selection{}, true
}

func (s Selection) Selected() (Package, bool) {
	if s.selected == nil {
		return Package{}, false
	}
	return *s.selected, true
}

func (s Selection) Package() *Package {
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}
