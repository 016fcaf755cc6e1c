package contract

import (
	"errors"
	"fmt"

	"participantregistry/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Registration & Profile Updates ---

// CreateParticipantProfile registers a new participant owned by the caller and returns its id.
// Ids are sequential starting at 1.
func (s *ParticipantRegistryContract) CreateParticipantProfile(ctx contractapi.TransactionContextInterface, displayName, statement string, interests []string) (uint64, error) {
	actor, err := s.getCurrentActorInfo(ctx)
	if err != nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}
	if err := validateProfileFields(displayName, statement, interests); err != nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}

	counter, err := s.readCounter(ctx)
	if err != nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}
	participantID := counter + 1

	_, err = s.getProfileByID(ctx, participantID)
	if err == nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w: participant %d already exists", ErrDuplicateEntry, participantID)
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}

	profile := &model.ParticipantProfile{
		ObjectType:     profileObjectType,
		ID:             participantID,
		DisplayName:    displayName,
		Owner:          actor.fullID,
		EnrollmentDate: actor.height,
		Statement:      statement,
		Interests:      append([]string{}, interests...),
	}
	if err := s.putProfile(ctx, profile); err != nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}
	if err := NewIdentityManager(ctx).GrantAccess(participantID, actor.fullID); err != nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}
	if err := s.writeCounter(ctx, participantID); err != nil {
		return 0, fmt.Errorf("CreateParticipantProfile: %w", err)
	}

	s.emitParticipantEvent(ctx, "ParticipantRegistered", participantID, actor, map[string]interface{}{"displayName": displayName})
	logger.Infof("Participant %d ('%s') registered by '%s' at height %d", participantID, displayName, actor.fullID, actor.height)
	return participantID, nil
}

// RegisterNewParticipant is the legacy name of CreateParticipantProfile.
func (s *ParticipantRegistryContract) RegisterNewParticipant(ctx contractapi.TransactionContextInterface, displayName, statement string, interests []string) (uint64, error) {
	return s.CreateParticipantProfile(ctx, displayName, statement, interests)
}

// UpdateInterests replaces the interest tags of a profile owned by the caller.
func (s *ParticipantRegistryContract) UpdateInterests(ctx contractapi.TransactionContextInterface, participantID uint64, interests []string) error {
	profile, actor, err := s.getOwnedProfile(ctx, participantID)
	if err != nil {
		return fmt.Errorf("UpdateInterests: %w", err)
	}
	if err := validateInterests(interests); err != nil {
		return fmt.Errorf("UpdateInterests: %w", err)
	}

	profile.Interests = append([]string{}, interests...)
	if err := s.putProfile(ctx, profile); err != nil {
		return fmt.Errorf("UpdateInterests: %w", err)
	}
	s.emitParticipantEvent(ctx, "ParticipantUpdated", participantID, actor, map[string]interface{}{"fields": []string{"interests"}})
	logger.Infof("Participant %d interests updated by owner", participantID)
	return nil
}

// ChangeDisplayName replaces the display name of a profile owned by the caller.
func (s *ParticipantRegistryContract) ChangeDisplayName(ctx contractapi.TransactionContextInterface, participantID uint64, displayName string) error {
	profile, actor, err := s.getOwnedProfile(ctx, participantID)
	if err != nil {
		return fmt.Errorf("ChangeDisplayName: %w", err)
	}
	if err := validateDisplayName(displayName); err != nil {
		return fmt.Errorf("ChangeDisplayName: %w", err)
	}

	profile.DisplayName = displayName
	if err := s.putProfile(ctx, profile); err != nil {
		return fmt.Errorf("ChangeDisplayName: %w", err)
	}
	s.emitParticipantEvent(ctx, "ParticipantUpdated", participantID, actor, map[string]interface{}{"fields": []string{"displayName"}})
	logger.Infof("Participant %d display name changed to '%s'", participantID, displayName)
	return nil
}

// UpdateFullProfile replaces name, statement and interests together. Nothing is written
// unless all three fields validate.
func (s *ParticipantRegistryContract) UpdateFullProfile(ctx contractapi.TransactionContextInterface, participantID uint64, displayName, statement string, interests []string) error {
	profile, actor, err := s.getOwnedProfile(ctx, participantID)
	if err != nil {
		return fmt.Errorf("UpdateFullProfile: %w", err)
	}
	if err := validateProfileFields(displayName, statement, interests); err != nil {
		return fmt.Errorf("UpdateFullProfile: %w", err)
	}

	profile.DisplayName = displayName
	profile.Statement = statement
	profile.Interests = append([]string{}, interests...)
	if err := s.putProfile(ctx, profile); err != nil {
		return fmt.Errorf("UpdateFullProfile: %w", err)
	}
	s.emitParticipantEvent(ctx, "ParticipantUpdated", participantID, actor, map[string]interface{}{"fields": []string{"displayName", "statement", "interests"}})
	logger.Infof("Participant %d profile fully updated by owner", participantID)
	return nil
}

// OverrideInterests replaces the interest tags of any existing profile. There is no
// ownership check: any caller may use it. Each override is published as an
// InterestsOverridden event naming the actor and the owner.
func (s *ParticipantRegistryContract) OverrideInterests(ctx contractapi.TransactionContextInterface, participantID uint64, interests []string) error {
	profile, err := s.getProfileByID(ctx, participantID)
	if err != nil {
		return fmt.Errorf("OverrideInterests: %w", err)
	}
	if err := validateInterests(interests); err != nil {
		return fmt.Errorf("OverrideInterests: %w", err)
	}
	actor, err := s.eventActor(ctx)
	if err != nil {
		return fmt.Errorf("OverrideInterests: %w", err)
	}

	previous := profile.Interests
	profile.Interests = append([]string{}, interests...)
	if err := s.putProfile(ctx, profile); err != nil {
		return fmt.Errorf("OverrideInterests: %w", err)
	}
	s.emitParticipantEvent(ctx, "InterestsOverridden", participantID, actor, map[string]interface{}{
		"owner":             profile.Owner,
		"previousInterests": previous,
	})
	if actor.fullID != profile.Owner {
		logger.Warningf("Participant %d interests overridden by non-owner '%s'", participantID, actor.fullID)
	} else {
		logger.Infof("Participant %d interests overridden by owner", participantID)
	}
	return nil
}

// QuickUpdateInterests is the legacy name of OverrideInterests.
func (s *ParticipantRegistryContract) QuickUpdateInterests(ctx contractapi.TransactionContextInterface, participantID uint64, interests []string) error {
	return s.OverrideInterests(ctx, participantID, interests)
}
