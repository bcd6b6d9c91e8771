package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentKindUnmarshalRejectsOutOfRangeInt(t *testing.T) {
	var kind DocumentKind
	err := json.Unmarshal([]byte("7"), &kind)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document kind")

	err = json.Unmarshal([]byte("-1"), &kind)
	require.Error(t, err)
}

func TestDocumentKindUnmarshalRejectsUnknownString(t *testing.T) {
	var kind DocumentKind
	err := json.Unmarshal([]byte(`"Estimate"`), &kind)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Estimate"`)

	// A bad value must not silently coerce to the zero kind
	kind = DocumentKindReceipt
	_ = json.Unmarshal([]byte(`"Estimate"`), &kind)
	assert.Equal(t, DocumentKindReceipt, kind)
}

func TestDocumentKindUnmarshalAcceptsDefinedValues(t *testing.T) {
	tests := []struct {
		payload string
		want    DocumentKind
	}{
		{`"Invoice"`, DocumentKindInvoice},
		{`"Quote"`, DocumentKindQuote},
		{`"Receipt"`, DocumentKindReceipt},
		{`0`, DocumentKindInvoice},
		{`1`, DocumentKindQuote},
		{`2`, DocumentKindReceipt},
	}
	for _, tt := range tests {
		var kind DocumentKind
		require.NoError(t, json.Unmarshal([]byte(tt.payload), &kind), "payload %s", tt.payload)
		assert.Equal(t, tt.want, kind, "payload %s", tt.payload)
	}
}

func TestDocumentKindStringDoesNotPanicOutOfRange(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "Unknown", DocumentKind(7).String())
		assert.Equal(t, "DOC", DocumentKind(7).NumberPrefix())
	})
}

func TestStatusEnumsRejectOutOfRangeValues(t *testing.T) {
	var paymentStatus PaymentStatus
	require.Error(t, json.Unmarshal([]byte("9"), &paymentStatus))
	require.Error(t, json.Unmarshal([]byte(`"Settled"`), &paymentStatus))

	var visitStatus VisitStatus
	require.Error(t, json.Unmarshal([]byte("9"), &visitStatus))

	var gigStatus GigStatus
	require.Error(t, json.Unmarshal([]byte("9"), &gigStatus))

	var orderStatus OrderStatus
	require.Error(t, json.Unmarshal([]byte("9"), &orderStatus))

	var premiseType PremiseType
	require.Error(t, json.Unmarshal([]byte("9"), &premiseType))
	require.Error(t, json.Unmarshal([]byte(`"Industrial"`), &premiseType))
}

func TestStatusEnumsMarshalOutOfRangeAsUnknown(t *testing.T) {
	// Rows that predate a validity rule must still render, not panic
	for _, s := range []interface{ String() string }{
		PaymentStatus(9), VisitStatus(9), GigStatus(9), OrderStatus(9),
		PremiseType(9), DraftStep(9), VisitStep(9), RequestType(9),
	} {
		assert.NotPanics(t, func() {
			assert.Equal(t, "Unknown", s.String())
		})
	}
}

func TestIsValidBounds(t *testing.T) {
	assert.True(t, DocumentKindReceipt.IsValid())
	assert.False(t, DocumentKind(3).IsValid())
	assert.False(t, DocumentKind(-1).IsValid())
	assert.True(t, VisitStatusExpired.IsValid())
	assert.False(t, VisitStatus(5).IsValid())
	assert.True(t, PremiseTypeResidence.IsValid())
	assert.False(t, PremiseType(2).IsValid())
}
