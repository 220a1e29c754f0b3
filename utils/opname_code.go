package utils

import (
	"fmt"
	"time"
)

func GenOpnameCode(seq int64, t time.Time) string {
	return fmt.Sprintf("SO-%d-%06d", t.Year(), seq)
}
