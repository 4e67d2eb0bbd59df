package helpers

import (
	"fmt"
	"time"
)

// GenerateID builds a millisecond-timestamped public identifier such as
// "admin-1715000000000". These identifiers match the format of the
// records migrated from the previous system.
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
