package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/logger"
	"github.com/evovision/evoq-api/internal/store"
)

// AdsGate answers whether the global ad set currently holds any ads
//
//go:generate mockgen -source=ads.go -destination=../mocks/ads_gate.go -package=mocks -mock_names=AdsGate=MockAdsGate
type AdsGate interface {
	// HasActiveAds reports whether the global ad set exists and is non-empty.
	// Lookup failures are logged and reported as false.
	HasActiveAds(ctx context.Context) bool

	// GlobalAds returns the ads of the global set, or domain.ErrNotFound if the set does not exist
	GlobalAds(ctx context.Context) ([]string, error)
}

type adsGate struct {
	store       store.Store
	globalSetID string
}

// NewAdsGate creates an AdsGate reading the ad set with the given ID
func NewAdsGate(store store.Store, globalSetID string) AdsGate {
	if globalSetID == "" {
		globalSetID = domain.DEFAULT_GLOBAL_AD_SET_ID
	}
	return &adsGate{store: store, globalSetID: globalSetID}
}

// HasActiveAds reports whether the global ad set exists and is non-empty
func (g *adsGate) HasActiveAds(ctx context.Context) bool {
	adSet, err := g.store.GetAdSet(ctx, g.globalSetID)
	if err != nil {
		// Only a cosmetic board flag depends on this, so fail open to "no ads"
		logger.WarnCtx(ctx, "Failed to look up global ad set, treating as empty",
			zap.Error(err),
			zap.String("ad_set_id", g.globalSetID),
		)
		return false
	}

	return adSet != nil && len(adSet.Ads) > 0
}

// GlobalAds returns the ads of the global set
func (g *adsGate) GlobalAds(ctx context.Context) ([]string, error) {
	adSet, err := g.store.GetAdSet(ctx, g.globalSetID)
	if err != nil {
		return nil, storeError("get global ad set", err)
	}
	if adSet == nil {
		return nil, fmt.Errorf("%w: ad set %q", domain.ErrNotFound, g.globalSetID)
	}

	ads := make([]string, len(adSet.Ads))
	copy(ads, adSet.Ads)
	return ads, nil
}
