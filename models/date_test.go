package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", d.String())

	// RFC 3339 from the mobile date picker is truncated to the UTC day
	d2, err := ParseDate("2024-01-02T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", d2.String())

	// local-offset timestamps group by the UTC day, not the local one
	d3, err := ParseDate("2024-01-03T01:30:00+05:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", d3.String())

	_, err = ParseDate("02/01/2024")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	// 03:00 on the 2nd in UTC+8 is still the 1st in UTC
	d := DateOf(time.Date(2024, 1, 2, 3, 0, 0, 0, loc))
	assert.Equal(t, "2024-01-01", d.String())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	b, err := json.Marshal(payload{Date: NewDate(2024, time.January, 2)})
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2024-01-02"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-02"}`), &p))
	assert.Equal(t, NewDate(2024, time.January, 2), p.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-02T12:00:00.000Z"}`), &p))
	assert.Equal(t, "2024-01-02", p.Date.String())
}
