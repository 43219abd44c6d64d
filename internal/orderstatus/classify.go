// Package orderstatus derives an order's current status from its append-only
// history and classifies free-text status labels into the coarse buckets used
// for listing filters and display. All bucket logic lives here so the filter
// and the display label can never disagree.
package orderstatus

import "strings"

type Bucket string

const (
	BucketWaitingForPayment Bucket = "waiting_for_payment"
	BucketProcessing        Bucket = "processing"
	BucketShipping          Bucket = "shipping"
	BucketCompleted         Bucket = "completed"
	BucketCancelled         Bucket = "cancelled"

	//labels matching no keyword pass through with their own text
	BucketUnclassified Bucket = "unclassified"
)

// Classification is by case-insensitive substring containment.
// The first bucket with a matching keyword wins; table order is fixed.
var bucketKeywords = []struct {
	bucket   Bucket
	keywords []string
}{
	{BucketWaitingForPayment, []string{"pending", "unpaid", "waiting"}},
	{BucketProcessing, []string{"processing", "confirmed"}},
	{BucketShipping, []string{"shipping", "transport"}},
	{BucketCompleted, []string{"completed", "success", "delivered"}},
	{BucketCancelled, []string{"cancel", "return"}},
}

func Classify(label string) Bucket {
	s := strings.ToLower(label)
	for _, row := range bucketKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(s, kw) {
				return row.bucket
			}
		}
	}
	return BucketUnclassified
}

var displayLabels = map[Bucket]string{
	BucketWaitingForPayment: "Chờ thanh toán",
	BucketProcessing:        "Đang xử lý",
	BucketShipping:          "Đang giao hàng",
	BucketCompleted:         "Đã hoàn thành",
	BucketCancelled:         "Đã hủy",
}

// DisplayLabel returns the Vietnamese label for a status. Unclassified labels
// come back verbatim so unknown status strings stay visible in listings.
func DisplayLabel(label string) string {
	if s, ok := displayLabels[Classify(label)]; ok {
		return s
	}
	return label
}
