package handlers

import (
	"testing"
	"time"

	"sanjivani-agritech-api-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBookingUpdateSetStampsConfirmedOnce(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	// first transition to confirmed stamps the timestamp and the admin
	set := bookingUpdateSet(models.Booking{}, UpdateBookingRequest{
		Status: strPtr(models.BookingStatusConfirmed),
	}, "admin", now)
	assert.Equal(t, models.BookingStatusConfirmed, set["status"])
	assert.Equal(t, now, set["confirmedAt"])
	assert.Equal(t, "admin", set["confirmedBy"])

	// re-confirming an already confirmed booking must not overwrite either
	earlier := now.Add(-24 * time.Hour)
	set = bookingUpdateSet(models.Booking{ConfirmedAt: &earlier}, UpdateBookingRequest{
		Status:   strPtr(models.BookingStatusConfirmed),
		TimeSlot: strPtr("10:00-11:00"),
	}, "another-admin", now)
	assert.NotContains(t, set, "confirmedAt")
	assert.NotContains(t, set, "confirmedBy")
	assert.Equal(t, "10:00-11:00", set["timeSlot"])
}

func TestBookingUpdateSetOtherTransitions(t *testing.T) {
	now := time.Now()

	// other statuses never stamp confirmation fields
	for _, status := range []string{models.BookingStatusPending, models.BookingStatusCompleted, models.BookingStatusCancelled} {
		set := bookingUpdateSet(models.Booking{}, UpdateBookingRequest{Status: strPtr(status)}, "admin", now)
		assert.Equal(t, status, set["status"])
		assert.NotContains(t, set, "confirmedAt")
		assert.NotContains(t, set, "confirmedBy")
	}

	// notes-only update leaves status and confirmation untouched
	set := bookingUpdateSet(models.Booking{}, UpdateBookingRequest{AdminNotes: strPtr("call back tomorrow")}, "admin", now)
	assert.NotContains(t, set, "status")
	assert.Equal(t, "call back tomorrow", set["adminNotes"])
}
