package contract

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Access & Ownership Checks ---

// CheckAccess succeeds only when accessor is the stored owner of the participant.
// The accessor table is not consulted; access is derived from ownership.
func (s *ParticipantRegistryContract) CheckAccess(ctx contractapi.TransactionContextInterface, participantID uint64, accessor string) error {
	profile, err := s.getProfileByID(ctx, participantID)
	if err != nil {
		return fmt.Errorf("CheckAccess: %w", err)
	}
	if profile.Owner != accessor {
		return fmt.Errorf("CheckAccess: %w: '%s' is not the owner of participant %d", ErrAccessDenied, accessor, participantID)
	}
	logger.Debugf("CheckAccess: '%s' granted access to participant %d", accessor, participantID)
	return nil
}

// ConfirmOwnership reports whether address owns the participant. A mismatch is false, not an error.
func (s *ParticipantRegistryContract) ConfirmOwnership(ctx contractapi.TransactionContextInterface, participantID uint64, address string) (bool, error) {
	profile, err := s.getProfileByID(ctx, participantID)
	if err != nil {
		return false, fmt.Errorf("ConfirmOwnership: %w", err)
	}
	return profile.Owner == address, nil
}

// GetAccessPermission returns the accessor table flag for (participantID, accessor).
func (s *ParticipantRegistryContract) GetAccessPermission(ctx contractapi.TransactionContextInterface, participantID uint64, accessor string) (bool, error) {
	if _, err := s.getProfileByID(ctx, participantID); err != nil {
		return false, fmt.Errorf("GetAccessPermission: %w", err)
	}
	allowed, err := NewIdentityManager(ctx).HasPermission(participantID, accessor)
	if err != nil {
		return false, fmt.Errorf("GetAccessPermission: %w", err)
	}
	return allowed, nil
}
