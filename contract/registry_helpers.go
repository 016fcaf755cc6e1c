package contract

import (
	"encoding/json"
	"fmt"
	"strconv"

	"participantregistry/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Core Helper Methods (used across multiple operations) ---

// getCurrentHeight returns the host clock used as the ledger height: the tx timestamp in Unix seconds.
func (s *ParticipantRegistryContract) getCurrentHeight(ctx contractapi.TransactionContextInterface) (int64, error) {
	ts, err := ctx.GetStub().GetTxTimestamp()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}
	return ts.AsTime().Unix(), nil
}

// getCurrentActorInfo resolves the invoker. Fails with ErrUnauthorized when no identity is present.
func (s *ParticipantRegistryContract) getCurrentActorInfo(ctx contractapi.TransactionContextInterface) (*actorInfo, error) {
	fullID, err := NewIdentityManager(ctx).GetCurrentIdentityFullID()
	if err != nil {
		return nil, fmt.Errorf("failed to get current actor's FullID: %w", err)
	}
	height, err := s.getCurrentHeight(ctx)
	if err != nil {
		return nil, err
	}
	return &actorInfo{fullID: fullID, height: height}, nil
}

func (s *ParticipantRegistryContract) createProfileCompositeKey(ctx contractapi.TransactionContextInterface, participantID uint64) (string, error) {
	return ctx.GetStub().CreateCompositeKey(profileObjectType, []string{strconv.FormatUint(participantID, 10)})
}

func (s *ParticipantRegistryContract) createMetricsCompositeKey(ctx contractapi.TransactionContextInterface, participantID uint64) (string, error) {
	return ctx.GetStub().CreateCompositeKey(metricsObjectType, []string{strconv.FormatUint(participantID, 10)})
}

// --- Counter ---

func (s *ParticipantRegistryContract) readCounter(ctx contractapi.TransactionContextInterface) (uint64, error) {
	counterBytes, err := ctx.GetStub().GetState(counterKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read participant counter: %w", err)
	}
	if counterBytes == nil {
		return 0, nil
	}
	counter, err := strconv.ParseUint(string(counterBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("participant counter holds invalid value '%s': %w", string(counterBytes), err)
	}
	return counter, nil
}

func (s *ParticipantRegistryContract) writeCounter(ctx contractapi.TransactionContextInterface, counter uint64) error {
	if err := ctx.GetStub().PutState(counterKey, []byte(strconv.FormatUint(counter, 10))); err != nil {
		return fmt.Errorf("failed to save participant counter: %w", err)
	}
	return nil
}

// --- Validation Helper Functions ---

// validateLength enforces 1..max bytes. Lengths are byte counts, not runes.
func validateLength(input, field string, max int) error {
	if len(input) == 0 {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, field)
	}
	if len(input) > max {
		return fmt.Errorf("%w: %s is %d bytes, exceeding max length %d", ErrValidationFailed, field, len(input), max)
	}
	return nil
}

func validateDisplayName(name string) error {
	return validateLength(name, "displayName", maxDisplayNameLength)
}

func validateStatement(statement string) error {
	return validateLength(statement, "statement", maxStatementLength)
}

func validateInterests(tags []string) error {
	if len(tags) == 0 {
		return fmt.Errorf("%w: interests must contain at least one tag", ErrValidationFailed)
	}
	if len(tags) > maxInterestTags {
		return fmt.Errorf("%w: interests has %d tags, exceeding maximum of %d", ErrValidationFailed, len(tags), maxInterestTags)
	}
	for i, tag := range tags {
		if err := validateLength(tag, fmt.Sprintf("interests[%d]", i), maxInterestTagLength); err != nil {
			return err
		}
	}
	return nil
}

// validateProfileFields checks all three mutable fields before anything is written.
func validateProfileFields(name, statement string, tags []string) error {
	if err := validateDisplayName(name); err != nil {
		return err
	}
	if err := validateStatement(statement); err != nil {
		return err
	}
	return validateInterests(tags)
}

// --- Profile persistence ---

// getProfileByID is an internal helper to retrieve and unmarshal a profile.
func (s *ParticipantRegistryContract) getProfileByID(ctx contractapi.TransactionContextInterface, participantID uint64) (*model.ParticipantProfile, error) {
	profileKey, err := s.createProfileCompositeKey(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to create key for participant %d: %w", participantID, err)
	}
	profileBytes, err := ctx.GetStub().GetState(profileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read participant %d from ledger: %w", participantID, err)
	}
	if profileBytes == nil {
		return nil, fmt.Errorf("%w: participant %d does not exist", ErrRecordNotFound, participantID)
	}
	var profile model.ParticipantProfile
	if err := json.Unmarshal(profileBytes, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant %d: %w", participantID, err)
	}
	ensureProfileSchemaCompliance(&profile)
	return &profile, nil
}

func (s *ParticipantRegistryContract) putProfile(ctx contractapi.TransactionContextInterface, profile *model.ParticipantProfile) error {
	profileKey, err := s.createProfileCompositeKey(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to create key for participant %d: %w", profile.ID, err)
	}
	profileBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal participant %d: %w", profile.ID, err)
	}
	if err := ctx.GetStub().PutState(profileKey, profileBytes); err != nil {
		return fmt.Errorf("failed to save participant %d: %w", profile.ID, err)
	}
	return nil
}

// getOwnedProfile loads a profile and verifies the current caller owns it.
func (s *ParticipantRegistryContract) getOwnedProfile(ctx contractapi.TransactionContextInterface, participantID uint64) (*model.ParticipantProfile, *actorInfo, error) {
	profile, err := s.getProfileByID(ctx, participantID)
	if err != nil {
		return nil, nil, err
	}
	actor, err := s.getCurrentActorInfo(ctx)
	if err != nil {
		return nil, nil, err
	}
	if profile.Owner != actor.fullID {
		return nil, nil, fmt.Errorf("%w: caller '%s' does not own participant %d", ErrAccessDenied, actor.fullID, participantID)
	}
	return profile, actor, nil
}

func ensureProfileSchemaCompliance(profile *model.ParticipantProfile) {
	if profile.Interests == nil {
		profile.Interests = []string{}
	}
}

// emitParticipantEvent sets the chaincode event for the transaction. Failures are logged only.
func (s *ParticipantRegistryContract) emitParticipantEvent(ctx contractapi.TransactionContextInterface, eventName string, participantID uint64, actor *actorInfo, additionalPayload map[string]interface{}) {
	if actor == nil {
		logger.Errorf("emitParticipantEvent: cannot emit event, actor is nil. Event: %s", eventName)
		return
	}
	payload := map[string]interface{}{
		"participantId": participantID,
		"actorId":       actor.fullID,
		"height":        actor.height,
	}
	for k, v := range additionalPayload {
		payload[k] = v
	}
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Warningf("emitParticipantEvent: Failed to marshal event payload for event '%s' on participant %d: %v", eventName, participantID, err)
		return
	}
	if errSet := ctx.GetStub().SetEvent(eventName, eventBytes); errSet != nil {
		logger.Warningf("emitParticipantEvent: Failed to set event '%s' for participant %d: %v", eventName, participantID, errSet)
	}
}

// eventActor is the best-effort actor for operations that do not gate on the caller.
func (s *ParticipantRegistryContract) eventActor(ctx contractapi.TransactionContextInterface) (*actorInfo, error) {
	height, err := s.getCurrentHeight(ctx)
	if err != nil {
		return nil, err
	}
	return &actorInfo{fullID: MustGetCallerFullID(ctx), height: height}, nil
}
