package schedule

// Interval is the [StartHour, EndHour) span claimed by one active booking.
// Canceled bookings must be filtered out before they reach this package;
// occupancy is always derived live from the active set, never cached.
type Interval struct {
	StartHour int
	EndHour   int
}

// SlotStatus is one grid slot with its derived occupancy flag.
type SlotStatus struct {
	Slot
	Occupied bool
}

// Summary is the at-a-glance capacity view of a service day.
type Summary struct {
	TotalSlots     int
	FreeSlots      int
	BookedSlots    int
	ActiveBookings int
}

// Availability is the occupancy of every slot of a grid for one resource and
// date.
type Availability struct {
	Slots   []SlotStatus
	Summary Summary
}

// Compute marks every grid slot whose start hour falls inside an active
// interval as occupied. Intervals reaching outside the grid only mark the
// slots they actually cover.
func Compute(grid Grid, active []Interval) Availability {
	slots := grid.Slots()
	statuses := make([]SlotStatus, len(slots))
	for i, slot := range slots {
		statuses[i] = SlotStatus{Slot: slot}
	}

	for _, iv := range active {
		for i := range statuses {
			start := statuses[i].StartHour
			if start >= iv.StartHour && start < iv.EndHour {
				statuses[i].Occupied = true
			}
		}
	}

	summary := Summary{
		TotalSlots:     len(statuses),
		ActiveBookings: len(active),
	}
	for _, st := range statuses {
		if st.Occupied {
			summary.BookedSlots++
		} else {
			summary.FreeSlots++
		}
	}

	return Availability{Slots: statuses, Summary: summary}
}

// SlotFree reports whether the slot starting at startHour exists and is free.
func (a Availability) SlotFree(startHour int) bool {
	for _, st := range a.Slots {
		if st.StartHour == startHour {
			return !st.Occupied
		}
	}
	return false
}
