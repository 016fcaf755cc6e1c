// File: model/participants.go
package model

// ParticipantProfile is the registry record for one participant.
type ParticipantProfile struct {
	ObjectType     string   `json:"objectType"`     // Set to the composite key object type (ParticipantProfile)
	ID             uint64   `json:"id"`             // Sequential identifier, assigned from the registry counter
	DisplayName    string   `json:"displayName"`    // 1-50 bytes
	Owner          string   `json:"owner"`          // Full X.509 ID of the creator, immutable
	EnrollmentDate int64    `json:"enrollmentDate"` // Ledger height at registration
	Statement      string   `json:"statement"`      // 1-160 bytes
	Interests      []string `json:"interests"`      // 1-5 tags, each 1-30 bytes
}

// AccessPermission is a row of the per-participant accessor table.
type AccessPermission struct {
	ObjectType    string `json:"objectType"`
	ParticipantID uint64 `json:"participantId"`
	Accessor      string `json:"accessor"`
	Allowed       bool   `json:"allowed"`
}

// ParticipantPage is the structure returned by paginated participant queries.
type ParticipantPage struct {
	Participants []*ParticipantProfile `json:"participants"`
	NextBookmark string                `json:"nextBookmark"`
	FetchedCount int32                 `json:"fetchedCount"`
}
