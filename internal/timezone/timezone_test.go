package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Mars/Olympus"))
	assert.Equal(t, "America/Argentina/Buenos_Aires", Location("America/Argentina/Buenos_Aires").String())
}

func TestDateIn(t *testing.T) {
	// 01:30 UTC do dia 19 ainda é dia 18 em Buenos Aires (UTC-3)
	instant := time.Date(2026, 10, 19, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-19", DateIn(instant, "UTC"))
	assert.Equal(t, "2026-10-18", DateIn(instant, "America/Argentina/Buenos_Aires"))
	assert.Equal(t, "2026-10-19", DateIn(instant, ""))
}
