package entity

import (
	"strings"
	"time"
)

// ChallengeMethodS256 is the only PKCE transformation this service emits.
const ChallengeMethodS256 = "S256"

// mobileStatePrefix marks states minted for the deep-link flow.
const mobileStatePrefix = "m."

// Flow is the entry flow that started an authorization.
type Flow string

const (
	// FlowWeb is a browser that gets redirected to the frontend.
	FlowWeb Flow = "web"
	// FlowMobile is a native client that receives a deep link.
	FlowMobile Flow = "mobile"
)

// StatePrefix returns the prefix that a state minted for f carries.
func (f Flow) StatePrefix() string {
	if f == FlowMobile {
		return mobileStatePrefix
	}

	return ""
}

// FlowFromState recovers the entry flow from a state value without a store lookup,
// so failures that happen before consumption still reach the right client.
func FlowFromState(state string) Flow {
	if strings.HasPrefix(state, mobileStatePrefix) {
		return FlowMobile
	}

	return FlowWeb
}

// Challenge is one in-flight PKCE authorization keyed by State.
type Challenge struct {
	State           string       `json:"state"`
	Verifier        string       `json:"verifier"`
	CodeChallenge   string       `json:"codeChallenge"`
	ChallengeMethod string       `json:"challengeMethod"`
	Provider        ProviderType `json:"provider"`
	Flow            Flow         `json:"flow"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// ExpiresAt returns the instant after which the challenge can no longer be consumed.
func (c *Challenge) ExpiresAt(ttl time.Duration) time.Time {
	return c.CreatedAt.Add(ttl)
}

// Expired reports whether the challenge is past its TTL at now.
func (c *Challenge) Expired(now time.Time, ttl time.Duration) bool {
	return !now.Before(c.ExpiresAt(ttl))
}
