package services

import (
	"sort"
	"time"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// EscalationEngine computes rent escalation schedules for leases. It is a pure
// calculator: no clock reads, no I/O, and it never mutates its inputs, so a
// single instance is safe to share across requests.
type EscalationEngine struct{}

// NewEscalationEngine creates a new escalation engine
func NewEscalationEngine() *EscalationEngine {
	return &EscalationEngine{}
}

// IndexEntry is one month of inflation index data. Value is a decimal
// fraction (0.04 means 4%).
type IndexEntry struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// LeaseTerms is the subset of a lease the engine reads.
type LeaseTerms struct {
	Rent              float64    `json:"rent"`
	LeaseStart        time.Time  `json:"lease_start"`
	LeaseEnd          *time.Time `json:"lease_end,omitempty"`
	LastIncrementDate *time.Time `json:"last_increment_date,omitempty"`
	RentOverride      *float64   `json:"rent_override,omitempty"`
}

// MonthDetail records how a single month contributed to an interval's
// compounding factor.
type MonthDetail struct {
	Month     time.Time `json:"month"`
	Rate      float64   `json:"rate"`
	Projected bool      `json:"projected"`
}

// IntervalResult is the outcome of compounding one escalation window.
type IntervalResult struct {
	NewRent       float64       `json:"new_rent"`
	PercentChange float64       `json:"percent_change"`
	Projected     bool          `json:"projected"`
	Details       []MonthDetail `json:"details"`
}

// EntryStatus distinguishes escalations that already happened from ones still
// ahead of the lease's checkpoint.
type EntryStatus string

const (
	StatusCompleted EntryStatus = constants.EntryStatusCompleted
	StatusPending   EntryStatus = constants.EntryStatusPending
)

// ScheduleEntry is a single escalation event in a lease's schedule.
//
// Completed entries carry RentKnown=false: the system has no record of what
// the rent actually was at that boundary, only the current rent, so NewRent
// and IncreaseAmount stay zero there. Consumers must check RentKnown before
// treating them as amounts.
type ScheduleEntry struct {
	Date           time.Time     `json:"date"`
	NewRent        float64       `json:"new_rent"`
	RentKnown      bool          `json:"rent_known"`
	IncreaseAmount float64       `json:"increase_amount"`
	PercentChange  float64       `json:"percent_change"`
	Projected      bool          `json:"projected"`
	ManualOverride bool          `json:"manual_override"`
	Details        []MonthDetail `json:"details"`
	Status         EntryStatus   `json:"status"`
}

// NextUpdate is the flattened view of the next pending escalation.
type NextUpdate struct {
	NextDate       time.Time     `json:"next_date"`
	CurrentRent    float64       `json:"current_rent"`
	NewRent        float64       `json:"new_rent"`
	IncreaseAmount float64       `json:"increase_amount"`
	PercentChange  float64       `json:"percent_change"`
	Projected      bool          `json:"projected"`
	ManualOverride bool          `json:"manual_override"`
	Details        []MonthDetail `json:"details"`
}

// CompoundInterval compounds baseRent over the window [start, end) using one
// index rate per calendar month. Months without a matching index entry fall
// back to the most recent known rate (or 2.5% when the history is empty) and
// mark the whole interval as projected. The result is rounded to the nearest
// ARS 500.
func (e *EscalationEngine) CompoundInterval(baseRent float64, start, end time.Time, history []IndexEntry) IntervalResult {
	sorted := make([]IndexEntry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Month.Before(sorted[j].Month)
	})

	fallbackRate := constants.DefaultFallbackRate
	if len(sorted) > 0 {
		fallbackRate = sorted[len(sorted)-1].Value
	}

	monthsDiff := helpers.MonthsBetween(start, end)
	if monthsDiff <= 0 {
		monthsDiff = constants.DefaultFrequencyMonths
	}

	factor := 1.0
	projected := false
	details := make([]MonthDetail, 0, monthsDiff)
	for m := 0; m < monthsDiff; m++ {
		month := start.AddDate(0, m, 0)
		rate, found := findMonthRate(sorted, month)
		if !found {
			rate = fallbackRate
			projected = true
		}
		factor *= 1 + rate
		details = append(details, MonthDetail{
			Month:     helpers.FirstOfMonth(month),
			Rate:      rate,
			Projected: !found,
		})
	}

	return IntervalResult{
		NewRent:       helpers.RoundToRentStep(baseRent * factor),
		PercentChange: helpers.Round2((factor - 1) * 100),
		Projected:     projected,
		Details:       details,
	}
}

// scheduleState is the fold state threaded through schedule generation. Each
// pending entry compounds on the previous pending entry's result, and the
// manual override is consumed at most once.
type scheduleState struct {
	runningRent     float64
	overrideApplied bool
}

// FullSchedule produces the ordered list of escalation events for a lease,
// from leaseStart to leaseEnd. It returns an empty slice when the lease has
// no start date or when history is nil; an empty-but-present history is legal
// and handled by the interval fallback.
func (e *EscalationEngine) FullSchedule(lease LeaseTerms, history []IndexEntry, frequencyMonths int) []ScheduleEntry {
	entries := []ScheduleEntry{}
	if lease.LeaseStart.IsZero() || history == nil {
		return entries
	}
	if frequencyMonths <= 0 {
		frequencyMonths = constants.DefaultFrequencyMonths
	}

	leaseEnd := lease.LeaseStart.AddDate(0, constants.DefaultLeaseTermMonths, 0)
	if lease.LeaseEnd != nil {
		leaseEnd = *lease.LeaseEnd
	}
	checkpoint := lease.LeaseStart
	if lease.LastIncrementDate != nil {
		checkpoint = *lease.LastIncrementDate
	}

	state := scheduleState{runningRent: lease.Rent}
	for i := 1; i <= constants.ScheduleIterationCap; i++ {
		targetDate := lease.LeaseStart.AddDate(0, i*frequencyMonths, 0)
		if targetDate.After(leaseEnd) {
			break
		}
		intervalStart := lease.LeaseStart.AddDate(0, (i-1)*frequencyMonths, 0)

		entry, next := e.scheduleStep(state, intervalStart, targetDate, checkpoint, lease.RentOverride, history)
		entries = append(entries, entry)
		state = next
	}
	return entries
}

// scheduleStep computes one schedule entry plus the next fold state. Completed
// entries leave the state untouched: the running rent only evolves along the
// pending chain.
func (e *EscalationEngine) scheduleStep(state scheduleState, intervalStart, targetDate, checkpoint time.Time, override *float64, history []IndexEntry) (ScheduleEntry, scheduleState) {
	interval := e.CompoundInterval(state.runningRent, intervalStart, targetDate, history)

	if !targetDate.After(checkpoint) {
		return ScheduleEntry{
			Date:          targetDate,
			PercentChange: interval.PercentChange,
			Projected:     interval.Projected,
			Details:       interval.Details,
			Status:        StatusCompleted,
		}, state
	}

	entry := ScheduleEntry{
		Date:           targetDate,
		NewRent:        interval.NewRent,
		RentKnown:      true,
		IncreaseAmount: interval.NewRent - state.runningRent,
		PercentChange:  interval.PercentChange,
		Projected:      interval.Projected,
		Details:        interval.Details,
		Status:         StatusPending,
	}
	if override != nil && !state.overrideApplied {
		entry.NewRent = *override
		entry.IncreaseAmount = *override - state.runningRent
		entry.ManualOverride = true
		state.overrideApplied = true
	}
	state.runningRent = entry.NewRent
	return entry, state
}

// NextRent returns the first pending escalation for a lease, reshaped for UI
// consumption. The second return value is false when the lease has no pending
// escalation left or when the index history is empty.
func (e *EscalationEngine) NextRent(lease LeaseTerms, history []IndexEntry, frequencyMonths int) (NextUpdate, bool) {
	if len(history) == 0 {
		return NextUpdate{}, false
	}
	for _, entry := range e.FullSchedule(lease, history, frequencyMonths) {
		if entry.Status != StatusPending {
			continue
		}
		return NextUpdate{
			NextDate:       entry.Date,
			CurrentRent:    lease.Rent,
			NewRent:        entry.NewRent,
			IncreaseAmount: entry.IncreaseAmount,
			PercentChange:  entry.PercentChange,
			Projected:      entry.Projected,
			ManualOverride: entry.ManualOverride,
			Details:        entry.Details,
		}, true
	}
	return NextUpdate{}, false
}

// findMonthRate looks up the index rate whose entry falls in the same calendar
// month as the given date.
func findMonthRate(history []IndexEntry, month time.Time) (float64, bool) {
	for _, entry := range history {
		if helpers.SameYearMonth(entry.Month, month) {
			return entry.Value, true
		}
	}
	return 0, false
}
