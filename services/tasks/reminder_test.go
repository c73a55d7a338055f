package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medassist/models"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		AppointmentID: "A1B2C3D4",
		PatientName:   "John Doe",
		PatientPhone:  "9876543210",
		DoctorName:    "Dr. Sudeep Kumar",
		Date:          "2025-09-16",
		Time:          "10:00",
	}
	fireAt := time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.Len(t, opts, 1)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
