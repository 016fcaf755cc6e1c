package contract

import (
	"encoding/json"
	"fmt"

	"participantregistry/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Engagement Tracking ---

func newDefaultEngagementMetrics(participantID uint64) *model.EngagementMetrics {
	return &model.EngagementMetrics{
		ObjectType:        metricsObjectType,
		ParticipantID:     participantID,
		RecentInteraction: model.DefaultInteraction,
	}
}

// getMetricsByID returns the stored metrics, or the defaults when no login was recorded yet.
// The defaults are never written here.
func (s *ParticipantRegistryContract) getMetricsByID(ctx contractapi.TransactionContextInterface, participantID uint64) (*model.EngagementMetrics, error) {
	metricsKey, err := s.createMetricsCompositeKey(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics key for participant %d: %w", participantID, err)
	}
	metricsBytes, err := ctx.GetStub().GetState(metricsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics for participant %d: %w", participantID, err)
	}
	if metricsBytes == nil {
		return newDefaultEngagementMetrics(participantID), nil
	}
	var metrics model.EngagementMetrics
	if err := json.Unmarshal(metricsBytes, &metrics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics for participant %d: %w", participantID, err)
	}
	return &metrics, nil
}

// LogActivity acknowledges an activity for an existing participant. It records nothing.
func (s *ParticipantRegistryContract) LogActivity(ctx contractapi.TransactionContextInterface, participantID uint64, activityType string) error {
	if _, err := s.getProfileByID(ctx, participantID); err != nil {
		return fmt.Errorf("LogActivity: %w", err)
	}
	logger.Debugf("LogActivity: activity '%s' acknowledged for participant %d (not persisted)", activityType, participantID)
	return nil
}

// RegisterLogin increments the visit count and stamps the current height and the "login" label.
func (s *ParticipantRegistryContract) RegisterLogin(ctx contractapi.TransactionContextInterface, participantID uint64) error {
	if _, err := s.getProfileByID(ctx, participantID); err != nil {
		return fmt.Errorf("RegisterLogin: %w", err)
	}
	actor, err := s.eventActor(ctx)
	if err != nil {
		return fmt.Errorf("RegisterLogin: %w", err)
	}
	metrics, err := s.getMetricsByID(ctx, participantID)
	if err != nil {
		return fmt.Errorf("RegisterLogin: %w", err)
	}

	metrics.VisitCount++
	metrics.RecentVisit = actor.height
	metrics.RecentInteraction = model.InteractionLogin

	metricsKey, err := s.createMetricsCompositeKey(ctx, participantID)
	if err != nil {
		return fmt.Errorf("RegisterLogin: failed to create metrics key for participant %d: %w", participantID, err)
	}
	metricsBytes, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("RegisterLogin: failed to marshal metrics for participant %d: %w", participantID, err)
	}
	if err := ctx.GetStub().PutState(metricsKey, metricsBytes); err != nil {
		return fmt.Errorf("RegisterLogin: failed to save metrics for participant %d: %w", participantID, err)
	}

	s.emitParticipantEvent(ctx, "ParticipantLogin", participantID, actor, map[string]interface{}{"visitCount": metrics.VisitCount})
	logger.Infof("Participant %d login recorded (visit %d, height %d)", participantID, metrics.VisitCount, metrics.RecentVisit)
	return nil
}

// GetEngagementMetrics returns the metrics of a participant, defaults included.
func (s *ParticipantRegistryContract) GetEngagementMetrics(ctx contractapi.TransactionContextInterface, participantID uint64) (*model.EngagementMetrics, error) {
	if _, err := s.getProfileByID(ctx, participantID); err != nil {
		return nil, fmt.Errorf("GetEngagementMetrics: %w", err)
	}
	metrics, err := s.getMetricsByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("GetEngagementMetrics: %w", err)
	}
	return metrics, nil
}
