package schedule

import "fmt"

// Grid describes the fixed slot catalog of a service day. All values are
// whole hours; sub-hour slot lengths are not part of this model.
type Grid struct {
	OpenHour  int
	CloseHour int
	SlotHours int
}

// Slot is one bookable unit of the grid, identified by its start hour.
type Slot struct {
	StartHour int
	EndHour   int
}

// Label returns the slot's display label, e.g. "06:00".
func (s Slot) Label() string {
	return HourLabel(s.StartHour)
}

// HourLabel formats an hour integer as the "HH:00" label used everywhere a
// slot is shown or keyed.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// NewGrid normalizes the configured operating hours into a Grid. A slot
// length below one hour collapses to one hour.
func NewGrid(openHour, closeHour, slotHours int) Grid {
	if slotHours < 1 {
		slotHours = 1
	}
	if closeHour < openHour {
		closeHour = openHour
	}
	return Grid{OpenHour: openHour, CloseHour: closeHour, SlotHours: slotHours}
}

// Slots generates the ordered slot catalog. The last slot ends exactly at the
// closing hour; a partial trailing slot is never emitted.
func (g Grid) Slots() []Slot {
	var slots []Slot
	for start := g.OpenHour; start+g.SlotHours <= g.CloseHour; start += g.SlotHours {
		slots = append(slots, Slot{StartHour: start, EndHour: start + g.SlotHours})
	}
	return slots
}

// SlotCount returns the number of slots in the grid.
func (g Grid) SlotCount() int {
	if g.SlotHours < 1 {
		return 0
	}
	return (g.CloseHour - g.OpenHour) / g.SlotHours
}

// AlignedStart reports whether startHour is the start of some grid slot.
func (g Grid) AlignedStart(startHour int) bool {
	if startHour < g.OpenHour || startHour+g.SlotHours > g.CloseHour {
		return false
	}
	return (startHour-g.OpenHour)%g.SlotHours == 0
}
