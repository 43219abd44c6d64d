package orderstatus

import "strings"

type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterBucket
	FilterUnrecognized
)

// Filter is the parsed form of the status query parameter.
type Filter struct {
	Kind   FilterKind
	Bucket Bucket
}

// ParseFilter maps the raw status parameter onto an explicit policy:
// empty and "all" select everything, a known bucket key filters by bucket,
// and anything else becomes Unrecognized, which applies no filter.
func ParseFilter(raw string) Filter {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "all" {
		return Filter{Kind: FilterAll}
	}
	switch Bucket(s) {
	case BucketWaitingForPayment, BucketProcessing, BucketShipping,
		BucketCompleted, BucketCancelled:
		return Filter{Kind: FilterBucket, Bucket: Bucket(s)}
	}
	return Filter{Kind: FilterUnrecognized}
}

// Matches reports whether an order with the given resolved status belongs to
// the filtered set. paymentCompleted suppresses the waiting-for-payment
// bucket: an order paid successfully must never show as awaiting payment,
// whatever its latest history entry says.
func (f Filter) Matches(resolvedStatus string, paymentCompleted bool) bool {
	if f.Kind != FilterBucket {
		return true
	}
	if Classify(resolvedStatus) != f.Bucket {
		return false
	}
	if f.Bucket == BucketWaitingForPayment && paymentCompleted {
		return false
	}
	return true
}
