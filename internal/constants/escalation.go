package constants

// Escalation defaults
const (
	// DefaultFrequencyMonths is the standard Argentine rental update cadence
	// (every four months).
	DefaultFrequencyMonths = 4

	// DefaultFallbackRate is the monthly inflation rate assumed when no index
	// data exists at all (2.5%).
	DefaultFallbackRate = 0.025

	// DefaultLeaseTermMonths is assumed when a lease has no end date.
	DefaultLeaseTermMonths = 24

	// ScheduleIterationCap bounds schedule generation against malformed lease
	// dates.
	ScheduleIterationCap = 60

	// RentRoundingStep is the ARS granularity rents are rounded to.
	RentRoundingStep = 500.0

	// DefaultNoticeWindowDays is how far ahead upcoming escalations are
	// surfaced and notices queued.
	DefaultNoticeWindowDays = 30
)

// Schedule entry statuses
const (
	EntryStatusCompleted = "completed"
	EntryStatusPending   = "pending"
)
