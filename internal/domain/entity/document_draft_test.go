package entity

import (
	"testing"

	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStepTransitionsAreLinear(t *testing.T) {
	draft := &DocumentDraft{Step: enum.DraftStepParties}

	assert.ErrorIs(t, draft.Retreat(), ErrDraftStepBoundary)

	require.NoError(t, draft.Advance())
	assert.Equal(t, enum.DraftStepItems, draft.Step)
	require.NoError(t, draft.Advance())
	assert.Equal(t, enum.DraftStepPreview, draft.Step)

	assert.ErrorIs(t, draft.Advance(), ErrDraftStepBoundary)

	require.NoError(t, draft.Retreat())
	assert.Equal(t, enum.DraftStepItems, draft.Step)
}

func TestSyncIssuerOnlyTouchesIssuerFields(t *testing.T) {
	toName := "Wanjiku Hardware"
	toDetails := "P.O. Box 410, Thika"
	draft := &DocumentDraft{
		IssuerName: "Old Name Traders",
		ToName:     &toName,
		ToDetails:  &toDetails,
	}

	address := "New Plaza, 3rd Floor"
	logo := "https://cdn.qaribu.app/logos/rebranded.png"
	draft.SyncIssuer(&BusinessProfile{
		Name:    "Rebranded Traders",
		Address: &address,
		LogoURL: &logo,
	})

	assert.Equal(t, "Rebranded Traders", draft.IssuerName)
	require.NotNil(t, draft.IssuerDetails)
	assert.Equal(t, address, *draft.IssuerDetails)
	require.NotNil(t, draft.IssuerLogoURL)
	assert.Equal(t, logo, *draft.IssuerLogoURL)

	require.NotNil(t, draft.ToName)
	assert.Equal(t, toName, *draft.ToName)
	require.NotNil(t, draft.ToDetails)
	assert.Equal(t, toDetails, *draft.ToDetails)
}

func TestSyncIssuerIgnoresNilProfile(t *testing.T) {
	draft := &DocumentDraft{IssuerName: "Mama Njeri Traders"}
	draft.SyncIssuer(nil)
	assert.Equal(t, "Mama Njeri Traders", draft.IssuerName)
}
