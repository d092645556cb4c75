package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimeSlot resolves a booking's display slot ("2:00 PM") on a given
// calendar day ("2006-01-02") to an absolute time in the local zone.
func ParseTimeSlot(date, slot string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 3:04 PM", fmt.Sprintf("%s %s", date, slot), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time slot %q on %q: %w", slot, date, err)
	}
	return t, nil
}

// ConversationID builds the legacy thread id for a customer.
func ConversationID(customerUID string) string {
	return customerUID + "_admin"
}

// CustomerUID recovers the customer uid from a legacy thread id.
func CustomerUID(conversationID string) string {
	return strings.TrimSuffix(conversationID, "_admin")
}
