package model

// DefaultInteraction is reported for participants that have never logged in.
const DefaultInteraction = "None"

// InteractionLogin is recorded by a login event.
const InteractionLogin = "login"

// EngagementMetrics tracks visits for one participant. Created lazily by the first login.
type EngagementMetrics struct {
	ObjectType        string `json:"objectType"`
	ParticipantID     uint64 `json:"participantId"`
	RecentVisit       int64  `json:"recentVisit"`       // Ledger height of the last login
	VisitCount        uint64 `json:"visitCount"`        // Number of logins
	RecentInteraction string `json:"recentInteraction"` // Label of the last recorded interaction
}

