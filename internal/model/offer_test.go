package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "teamup/pkg/errors"
)

func TestOfferAccept(t *testing.T) {
	offer := &Offer{Status: OfferStatusPending}

	require.NoError(t, offer.Accept())
	assert.Equal(t, OfferStatusAccepted, offer.Status)

	// 终态不可再流转
	assert.ErrorIs(t, offer.Accept(), pkgErrors.ErrOfferAlreadyResolved)
	assert.ErrorIs(t, offer.Decline(), pkgErrors.ErrOfferAlreadyResolved)
	assert.ErrorIs(t, offer.Cancel(), pkgErrors.ErrOfferAlreadyResolved)
	assert.Equal(t, OfferStatusAccepted, offer.Status)
}

func TestOfferDecline(t *testing.T) {
	offer := &Offer{Status: OfferStatusPending}

	require.NoError(t, offer.Decline())
	assert.Equal(t, OfferStatusDeclined, offer.Status)
	assert.ErrorIs(t, offer.Accept(), pkgErrors.ErrOfferAlreadyResolved)
}

func TestOfferCancel(t *testing.T) {
	offer := &Offer{Status: OfferStatusPending}

	require.NoError(t, offer.Cancel())
	assert.Equal(t, OfferStatusCancelled, offer.Status)
	assert.False(t, offer.IsPending())
}
