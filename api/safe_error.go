package api

import (
	"moneymap/config"
)

// SafeErrorMessage hides internal error details from clients outside
// of debug mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
