package helpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToNullableText(t *testing.T) {
	assert.Equal(t, pgtype.Text{Valid: false}, StringToNullableText(""))
	assert.Equal(t, pgtype.Text{String: "3A", Valid: true}, StringToNullableText("3A"))
}

func TestTimeToNullableDate(t *testing.T) {
	assert.Equal(t, pgtype.Date{Valid: false}, TimeToNullableDate(nil))

	d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, pgtype.Date{Time: d, Valid: true}, TimeToNullableDate(&d))
}

func TestDateToNullableTime(t *testing.T) {
	assert.Nil(t, DateToNullableTime(pgtype.Date{Valid: false}))

	d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	got := DateToNullableTime(TimeToDate(d))
	require.NotNil(t, got)
	assert.Equal(t, d, *got)
}

func TestFloat64ToNumeric_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 100000, 25000.5, 0.025, -1200.75} {
		n := Float64ToNumeric(v)
		require.True(t, n.Valid, "value %v", v)
		assert.Equal(t, v, NumericToFloat64(n), "value %v", v)
	}
}

func TestNumericToFloat64_Null(t *testing.T) {
	assert.Equal(t, 0.0, NumericToFloat64(pgtype.Numeric{Valid: false}))
}

func TestFloat64ToNullableNumeric(t *testing.T) {
	assert.Equal(t, pgtype.Numeric{Valid: false}, Float64ToNullableNumeric(nil))

	v := 117000.0
	n := Float64ToNullableNumeric(&v)
	require.True(t, n.Valid)
	assert.Equal(t, v, NumericToFloat64(n))
}

func TestNumericToNullableFloat64(t *testing.T) {
	assert.Nil(t, NumericToNullableFloat64(pgtype.Numeric{Valid: false}))

	got := NumericToNullableFloat64(Float64ToNumeric(0.04))
	require.NotNil(t, got)
	assert.Equal(t, 0.04, *got)
}

func TestUUIDConversions(t *testing.T) {
	assert.Equal(t, pgtype.UUID{Valid: false}, UUIDToNullableUUID(nil))
	assert.Equal(t, "", NullableUUIDToString(pgtype.UUID{Valid: false}))

	id := uuid.New()
	converted := UUIDToNullableUUID(&id)
	require.True(t, converted.Valid)
	assert.Equal(t, id.String(), NullableUUIDToString(converted))
}
