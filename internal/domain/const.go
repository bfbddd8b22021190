package domain

const (
	// Ads constants
	DEFAULT_GLOBAL_AD_SET_ID = "global"

	// Board constants
	DEFAULT_EVO_VISIONS_COUNT = 3
)
