package util

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// DurationToCronSpec converts a refresh interval to a seconds-capable cron
// specification firing at that interval. Intervals must divide evenly into the
// next larger unit so the schedule stays aligned.
func DurationToCronSpec(d time.Duration) (string, error) {
	seconds := int(d.Seconds())

	switch {
	case seconds >= 1 && seconds < 60:
		return fmt.Sprintf("*/%d * * * * *", seconds), nil
	case seconds >= 60 && seconds < 3600 && seconds%60 == 0:
		return fmt.Sprintf("0 */%d * * * *", seconds/60), nil
	case seconds >= 3600 && seconds < 86400 && seconds%3600 == 0:
		return fmt.Sprintf("0 0 */%d * * *", seconds/3600), nil
	case seconds == 86400:
		return "0 0 0 * * *", nil
	}

	return "", errors.Errorf("interval %v cannot be expressed as a cron spec", d)
}
