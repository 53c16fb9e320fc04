package handlers

import (
	"testing"
	"time"

	"sanjivani-agritech-api-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestContactUpdateSetStampsRepliedOnce(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	// first transition to replied stamps the timestamp
	set := contactUpdateSet(models.Contact{}, UpdateContactRequest{
		Status: strPtr(models.ContactStatusReplied),
	}, now)
	assert.Equal(t, models.ContactStatusReplied, set["status"])
	assert.Equal(t, now, set["repliedAt"])
	assert.Equal(t, now, set["updatedAt"])

	// a later update must never touch the existing timestamp
	earlier := now.Add(-48 * time.Hour)
	set = contactUpdateSet(models.Contact{RepliedAt: &earlier}, UpdateContactRequest{
		Status:       strPtr(models.ContactStatusReplied),
		ReplyMessage: strPtr("We have emailed you the brochure."),
	}, now)
	assert.NotContains(t, set, "repliedAt")
	assert.Equal(t, "We have emailed you the brochure.", set["replyMessage"])
}

func TestContactUpdateSetOtherTransitions(t *testing.T) {
	now := time.Now()

	// non-replied statuses never stamp repliedAt
	for _, status := range []string{models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusArchived} {
		set := contactUpdateSet(models.Contact{}, UpdateContactRequest{Status: strPtr(status)}, now)
		assert.Equal(t, status, set["status"])
		assert.NotContains(t, set, "repliedAt")
	}

	// empty payload only bumps updatedAt
	set := contactUpdateSet(models.Contact{}, UpdateContactRequest{}, now)
	assert.Len(t, set, 1)
	assert.Contains(t, set, "updatedAt")
}
