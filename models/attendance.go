package models

import "time"

// StatusPresent is the only status an attendance record can carry.
// Absence is modelled as the absence of a record, not as a record with a
// different status.
const StatusPresent = "present"

// DateLayout is the canonical day-granularity date format (YYYY-MM-DD)
// used for the Date field of attendance records.
const DateLayout = "2006-01-02"

// AttendanceRecord is a single per-user daily presence mark.
//
// Records form an append-only ledger: they are created exactly once per user
// per calendar day by that user's own mark action and are never mutated or
// removed. At most one record exists per (UserID, Date) pair; the uniqueness
// is enforced by the persistence layer.
type AttendanceRecord struct {
	// RecordID is the internal surrogate key of the record.
	// Not exposed via JSON; callers identify records by (UserID, Date).
	RecordID int64 `json:"-"`

	// UserID references the User the record belongs to.
	// This is a lookup relation, not an ownership relation.
	UserID int64 `json:"userId"`

	// Date is the calendar day of the mark in DateLayout format.
	// There is no time-of-day component.
	Date string `json:"date"`

	// Status is always StatusPresent.
	Status string `json:"status"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AttendanceRecord model.
func (a AttendanceRecord) TableName() string {
	return "attendance"
}
