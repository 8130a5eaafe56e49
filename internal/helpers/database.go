package helpers

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// TimeToNullableDate converts time to nullable pgtype.Date
func TimeToNullableDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// TimeToDate converts time to pgtype.Date
func TimeToDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// DateToNullableTime converts pgtype.Date to *time.Time
func DateToNullableTime(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// Float64ToNumeric converts a float64 to pgtype.Numeric
func Float64ToNumeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// Float64ToNullableNumeric converts an optional float64 to pgtype.Numeric
func Float64ToNullableNumeric(f *float64) pgtype.Numeric {
	if f == nil {
		return pgtype.Numeric{Valid: false}
	}
	return Float64ToNumeric(*f)
}

// NumericToFloat64 converts pgtype.Numeric to float64, zero when null
func NumericToFloat64(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	v, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return v.Float64
}

// NumericToNullableFloat64 converts pgtype.Numeric to *float64
func NumericToNullableFloat64(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}
	f := NumericToFloat64(n)
	return &f
}

// UUIDToNullableUUID converts an optional uuid.UUID to pgtype.UUID
func UUIDToNullableUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// NullableUUIDToString converts pgtype.UUID to its string form, empty when null
func NullableUUIDToString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}
