package utils

import (
	"fmt"
	"time"
)

// GenerateDocumentNumber builds a default document number from a prefix and a
// timestamp suffix, e.g. "INV-493021". Users can edit it afterwards.
func GenerateDocumentNumber(prefix string) string {
	return fmt.Sprintf("%s-%06d", prefix, time.Now().UnixMilli()%1000000)
}

// GenerateReferenceNo generates a sequential reference such as "ORD-000042"
func GenerateReferenceNo(prefix string, n int) string {
	return fmt.Sprintf("%s-%06d", prefix, n)
}
