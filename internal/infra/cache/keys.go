package cache

import (
	"fmt"

	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/domain/stay"
)

const keyPrefix = "homestay-pricing"

func scheduleKey(homestayID int64, iv stay.Interval) string {
	return fmt.Sprintf("%s:schedule:%d:%s:%s", keyPrefix, homestayID,
		iv.CheckIn().Format(stay.DateLayout), iv.CheckOut().Format(stay.DateLayout))
}

func calendarKey(homestayID int64, m availability.Month) string {
	return fmt.Sprintf("%s:calendar:%d:%04d-%02d", keyPrefix, homestayID, m.Year, int(m.Month))
}

func sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

func idempotencyKey(scope, key string) string {
	return fmt.Sprintf("%s:idempotency:%s:%s", keyPrefix, scope, key)
}
