package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AgeBucket is an inclusive age range. A nil High makes the bucket open-ended.
type AgeBucket struct {
	Low  int
	High *int
}

// ClosedBucket returns the bucket [low, high].
func ClosedBucket(low, high int) AgeBucket {
	return AgeBucket{Low: low, High: &high}
}

// OpenBucket returns the bucket [low, inf).
func OpenBucket(low int) AgeBucket {
	return AgeBucket{Low: low}
}

// DefaultAgeBuckets is the fixed, ascending bucket list of the age report.
var DefaultAgeBuckets = []AgeBucket{
	ClosedBucket(18, 24),
	ClosedBucket(25, 30),
	ClosedBucket(31, 36),
	ClosedBucket(37, 47),
	OpenBucket(48),
}

// Label returns "low-high" for closed buckets and ">low" for the open one.
// Clients key on these strings, keep the format.
func (b AgeBucket) Label() string {
	if b.High == nil {
		return fmt.Sprintf(">%d", b.Low)
	}
	return fmt.Sprintf("%d-%d", b.Low, *b.High)
}

// Contains reports whether age falls into the bucket.
func (b AgeBucket) Contains(age int) bool {
	if age < b.Low {
		return false
	}
	return b.High == nil || age <= *b.High
}

// AgeBucketAverage is a single entry of the age report
type AgeBucketAverage struct {
	Label   string          `json:"label"`   // Bucket label, e.g. "25-30"
	Average decimal.Decimal `json:"average"` // Mean money_spent over matching records, 0 when empty
}
