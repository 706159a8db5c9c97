package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasdfgr/id100/protocol"
)

func TestDateTimeFromTime(t *testing.T) {
	// 2026-08-25 is a Tuesday
	dt, err := dateTimeFromTime(time.Date(2026, 8, 25, 14, 30, 45, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, byte(26), dt.Year)
	assert.Equal(t, byte(8), dt.Month)
	assert.Equal(t, byte(25), dt.Day)
	assert.Equal(t, byte(2), dt.Weekday)
	assert.Equal(t, byte(14), dt.Hour)
	assert.Equal(t, byte(30), dt.Minute)
	assert.Equal(t, byte(45), dt.Second)
}

func TestDateTimeFromTimeSunday(t *testing.T) {
	// 2026-08-23 is a Sunday, which the device numbers 7
	dt, err := dateTimeFromTime(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, byte(7), dt.Weekday)
}

func TestDateTimeFromTimeOutOfRange(t *testing.T) {
	_, err := dateTimeFromTime(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC))
	require.Error(t, err)

	_, err = dateTimeFromTime(time.Date(2256, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		hour    byte
		minute  byte
		wantErr bool
	}{
		{in: "06:30", hour: 6, minute: 30},
		{in: "23:59", hour: 23, minute: 59},
		{in: "0:5", hour: 0, minute: 5},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, err := parseClockTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestParseMatrixReader(t *testing.T) {
	rows := make([]string, protocol.MatrixRows)
	for i := range rows {
		rows[i] = strings.Repeat(".", protocol.MatrixColumns)
	}
	rows[0] = "#" + strings.Repeat(".", protocol.MatrixColumns-1)
	rows[15] = strings.Repeat(".", protocol.MatrixColumns-1) + "#"

	matrix, err := parseMatrixReader(strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err)

	assert.True(t, matrix.Pixel(0, 0))
	assert.True(t, matrix.Pixel(15, 15))
	assert.False(t, matrix.Pixel(7, 7))
}

func TestParseMatrixReaderErrors(t *testing.T) {
	full := strings.Repeat(strings.Repeat(".", protocol.MatrixColumns)+"\n", protocol.MatrixRows)

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "too few rows", content: "................\n", errMsg: "found 1 rows"},
		{name: "too many rows", content: full + "................\n", errMsg: "too many rows"},
		{name: "short row", content: "...\n", errMsg: "3 columns"},
		{name: "bad character", content: "...x............\n", errMsg: "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMatrixReader(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

// writeTempFile writes content to a temp file and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStandbyFile(t *testing.T) {
	path := writeTempFile(t, "standby.toml", `
[monday]
on = "22:30"
off = "06:30"

[sunday]
on = "21:00"
off = "08:00"
`)

	standby, err := loadStandbyFile(path)
	require.NoError(t, err)

	assert.Equal(t, protocol.StandbyWindow{OnHour: 22, OnMinute: 30, OffHour: 6, OffMinute: 30}, standby[0])
	assert.Equal(t, protocol.StandbyWindow{OnHour: 21, OffHour: 8}, standby[6])

	// Omitted weekdays stay disabled
	for i := 1; i < 6; i++ {
		assert.True(t, standby[i].Disabled())
	}
}

func TestLoadStandbyFileBadTime(t *testing.T) {
	path := writeTempFile(t, "standby.toml", `
[friday]
on = "25:00"
off = "06:30"
`)

	_, err := loadStandbyFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "friday")
}

func TestLoadAppointmentsFile(t *testing.T) {
	path := writeTempFile(t, "appointments.toml", `
[[appointment]]
month = 12
day = 24
hour = 18
minute = 0

[[appointment]]
month = 1
day = 1
hour = 0
minute = 0
`)

	appointments, err := loadAppointmentsFile(path)
	require.NoError(t, err)

	assert.Equal(t, protocol.Appointment{Month: 12, Day: 24, Hour: 18}, appointments[0])
	assert.Equal(t, protocol.Appointment{Month: 1, Day: 1}, appointments[1])
	for i := 2; i < protocol.AppointmentCount; i++ {
		assert.True(t, appointments[i].Empty())
	}
}

func TestLoadAppointmentsFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "bad month",
			content: "[[appointment]]\nmonth = 13\nday = 1\nhour = 0\nminute = 0\n",
			errMsg:  "month 13 out of range",
		},
		{
			name:    "bad day",
			content: "[[appointment]]\nmonth = 1\nday = 32\nhour = 0\nminute = 0\n",
			errMsg:  "day 32 out of range",
		},
		{
			name:    "bad hour",
			content: "[[appointment]]\nmonth = 1\nday = 1\nhour = 24\nminute = 0\n",
			errMsg:  "hour 24 out of range",
		},
		{
			name:    "bad minute",
			content: "[[appointment]]\nmonth = 1\nday = 1\nhour = 0\nminute = 60\n",
			errMsg:  "minute 60 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadAppointmentsFile(writeTempFile(t, "appointments.toml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadAppointmentsFileTooMany(t *testing.T) {
	entry := "[[appointment]]\nmonth = 1\nday = 1\nhour = 0\nminute = 0\n"
	content := strings.Repeat(entry, protocol.AppointmentCount+1)

	_, err := loadAppointmentsFile(writeTempFile(t, "appointments.toml", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most")
}
