// Package usecase orchestrates the entity stores behind each operation and
// translates store-level outcomes into sentinel errors the delivery layer
// maps to HTTP statuses.
package usecase

import "time"

// timeNow is swapped in tests that assert timestamps.
var timeNow = time.Now
