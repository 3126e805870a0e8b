package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 3, 10, 8, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("08:05"), ts)
}

func TestValidate(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "8:30", "24:00", "12:60", "0830", "08:30:00", "ab:cd"}
	for _, s := range invalid {
		assert.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeFormat, s)
	}
}

func TestLexicalOrdering(t *testing.T) {
	assert.True(t, TimeString("08:30").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("08:30").IsBefore("08:30"))
	assert.False(t, TimeString("08:30").IsAfter("08:30"))
}

func TestAddMinutes(t *testing.T) {
	shifted, err := TimeString("08:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:15"), shifted)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err, "crossing midnight must fail")
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, m)
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("08:30:00"))
	assert.Equal(t, TimeString("08:30"), ts)

	require.NoError(t, ts.Scan([]byte("17:45:00")))
	assert.Equal(t, TimeString("17:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestValue(t *testing.T) {
	v, err := TimeString("08:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
