package contract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"participantregistry/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Query Functions ---

// GetParticipant returns the stored profile.
func (s *ParticipantRegistryContract) GetParticipant(ctx contractapi.TransactionContextInterface, participantID uint64) (*model.ParticipantProfile, error) {
	logger.Debugf("GetParticipant: Querying participant %d", participantID)
	profile, err := s.getProfileByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("GetParticipant: %w", err)
	}
	return profile, nil
}

// GetParticipantCount returns the number of profiles ever created.
func (s *ParticipantRegistryContract) GetParticipantCount(ctx contractapi.TransactionContextInterface) (uint64, error) {
	counter, err := s.readCounter(ctx)
	if err != nil {
		return 0, fmt.Errorf("GetParticipantCount: %w", err)
	}
	return counter, nil
}

// ListParticipants pages through profiles in id order. The bookmark is the next id to read;
// empty starts at 1. NextBookmark is empty once the last profile has been returned.
func (s *ParticipantRegistryContract) ListParticipants(ctx contractapi.TransactionContextInterface, pageSizeStr string, bookmark string) (*model.ParticipantPage, error) {
	pageSize, err := strconv.ParseInt(pageSizeStr, 10, 32)
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	startID := uint64(1)
	if trimmed := strings.TrimSpace(bookmark); trimmed != "" {
		startID, err = strconv.ParseUint(trimmed, 10, 64)
		if err != nil || startID == 0 {
			return nil, fmt.Errorf("ListParticipants: %w: invalid bookmark '%s'", ErrValidationFailed, bookmark)
		}
	}
	logger.Debugf("ListParticipants: pageSize %d, starting at id %d", pageSize, startID)

	counter, err := s.readCounter(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListParticipants: %w", err)
	}

	participants := []*model.ParticipantProfile{}
	fetchedCount := int32(0)
	nextID := startID
	for ; nextID <= counter && fetchedCount < int32(pageSize); nextID++ {
		profile, err := s.getProfileByID(ctx, nextID)
		if err != nil {
			return nil, fmt.Errorf("ListParticipants: %w", err)
		}
		participants = append(participants, profile)
		fetchedCount++
	}

	nextBookmark := ""
	if nextID <= counter {
		nextBookmark = strconv.FormatUint(nextID, 10)
	}
	return &model.ParticipantPage{
		Participants: participants,
		NextBookmark: nextBookmark,
		FetchedCount: fetchedCount,
	}, nil
}

// GetMyParticipants returns every profile owned by the caller.
func (s *ParticipantRegistryContract) GetMyParticipants(ctx contractapi.TransactionContextInterface) ([]*model.ParticipantProfile, error) {
	actor, err := s.getCurrentActorInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetMyParticipants: %w", err)
	}

	resultsIterator, err := ctx.GetStub().GetStateByPartialCompositeKey(profileObjectType, []string{})
	if err != nil {
		return nil, fmt.Errorf("GetMyParticipants: failed to get participants iterator: %w", err)
	}
	defer resultsIterator.Close()

	owned := []*model.ParticipantProfile{}
	for resultsIterator.HasNext() {
		queryResponse, iterErr := resultsIterator.Next()
		if iterErr != nil {
			logger.Warningf("GetMyParticipants: Error iterating results: %v. Skipping.", iterErr)
			continue
		}
		var profile model.ParticipantProfile
		if errUnmarshal := json.Unmarshal(queryResponse.Value, &profile); errUnmarshal != nil {
			logger.Warningf("GetMyParticipants: Error unmarshalling participant (key: %s): %v. Skipping.", queryResponse.Key, errUnmarshal)
			continue
		}
		if profile.Owner == actor.fullID {
			ensureProfileSchemaCompliance(&profile)
			owned = append(owned, &profile)
		}
	}

	logger.Infof("GetMyParticipants: '%s' owns %d participants", actor.fullID, len(owned))
	return owned, nil
}
