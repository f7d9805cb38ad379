package entities

// ProviderTier is the professional's subscription tier. It is an attribute of
// the provider profile and a read-only input here; the tier decides how far
// the final agreed price may deviate from the suggested range.
type ProviderTier string

const (
	TierVerifiedExpress ProviderTier = "verified_express"
	TierCertifiedPro    ProviderTier = "certified_pro"
	TierPremiumElite    ProviderTier = "premium_elite"
)

// ProviderProfile is the slice of the professional profile this service
// reads. Unrecognized or missing tiers degrade to the most conservative
// flexibility window, so the zero value is safe.
type ProviderProfile struct {
	UserID  string       `json:"user_id"`
	ProTier ProviderTier `json:"pro_tier,omitempty"`
}
