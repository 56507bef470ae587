package timezone_test

import (
	"testing"
	"time"
	"workation/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	assert.False(t, now.IsZero())

	loc := timezone.GetLocation()
	assert.NotNil(t, loc)
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	assert.NotNil(t, appTime.Location())
	assert.True(t, appTime.Equal(utcTime))
}

func TestFormatAndParse(t *testing.T) {
	testTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, time.RFC3339)
	assert.NotEmpty(t, formatted)

	parsed, err := timezone.Parse("2006-01-02", "2025-01-01")
	assert.NoError(t, err)
	assert.False(t, parsed.IsZero())
}
