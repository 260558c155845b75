package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2026-10-18"), d)

	require.NoError(t, d.Scan("2026-10-19T00:00:00Z"))
	assert.Equal(t, Date("2026-10-19"), d)

	require.NoError(t, d.Scan([]byte("2026-10-20")))
	assert.Equal(t, Date("2026-10-20"), d)

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, Date(""), d)

	assert.Error(t, d.Scan(3.14))
}

func TestClockTimeScan(t *testing.T) {
	var c ClockTime

	require.NoError(t, c.Scan("09:30:00.000000"))
	assert.Equal(t, ClockTime("09:30:00"), c)

	require.NoError(t, c.Scan([]byte("11:00:00")))
	assert.Equal(t, ClockTime("11:00:00"), c)

	require.NoError(t, c.Scan(int64((10*time.Hour + 15*time.Minute) / time.Microsecond)))
	assert.Equal(t, ClockTime("10:15:00"), c)

	require.NoError(t, c.Scan(time.Date(0, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, ClockTime("08:05:00"), c)
}

func TestEmptyValuesAreNull(t *testing.T) {
	v, err := Date("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ClockTime("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ClockTime("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)
}
