package contract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"participantregistry/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var idLogger = flogging.MustGetLogger("participants.identity")

// Object type for the accessor table, also usable as 'objectType' in CouchDB.
// Attributes for composite key: participant id, accessor FullID.
const permissionObjectType = "AccessPermission"

// IdentityManager resolves the invoking identity and maintains the per-participant accessor table.
type IdentityManager struct {
	Ctx contractapi.TransactionContextInterface
}

// NewIdentityManager creates a new instance of IdentityManager.
func NewIdentityManager(ctx contractapi.TransactionContextInterface) *IdentityManager {
	return &IdentityManager{Ctx: ctx}
}

func isValidX509ID(id string) bool {
	// "eDUwOTo6" is "x509::" base64 encoded
	return strings.HasPrefix(id, "x509::") || strings.HasPrefix(id, "eDUwOTo6")
}

func (im *IdentityManager) createPermissionCompositeKey(participantID uint64, accessor string) (string, error) {
	return im.Ctx.GetStub().CreateCompositeKey(permissionObjectType, []string{strconv.FormatUint(participantID, 10), accessor})
}

// GetCurrentIdentityFullID retrieves the full X.509 ID of the current transactor.
func (im *IdentityManager) GetCurrentIdentityFullID() (string, error) {
	clientIdentity := im.Ctx.GetClientIdentity()
	if clientIdentity == nil {
		return "", fmt.Errorf("%w: client identity is nil from context", ErrUnauthorized)
	}
	id, err := clientIdentity.GetID()
	if err != nil {
		return "", fmt.Errorf("%w: failed to get client identity ID from context: %v", ErrUnauthorized, err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: client identity ID from context is empty", ErrUnauthorized)
	}
	if !isValidX509ID(id) {
		idLogger.Warningf("Current client ID '%s' does not appear to be a standard X.509 format.", id)
	}
	return id, nil
}

// MustGetCallerFullID is a utility to get the caller's ID, returning a placeholder on error.
// Useful for logging and event payloads when a full error return isn't desired.
func MustGetCallerFullID(ctx contractapi.TransactionContextInterface) string {
	clientIdentity := ctx.GetClientIdentity()
	if clientIdentity == nil {
		idLogger.Error("MustGetCallerFullID: Client identity is nil from context. Returning placeholder.")
		return "ERROR_NIL_CLIENT_IDENTITY"
	}
	id, err := clientIdentity.GetID()
	if err != nil {
		idLogger.Errorf("MustGetCallerFullID: Failed to get client identity ID: %v. Returning placeholder.", err)
		return "ERROR_GETTING_CALLER_ID"
	}
	if id == "" {
		idLogger.Error("MustGetCallerFullID: Client identity ID from context is empty. Returning placeholder.")
		return "ERROR_EMPTY_CALLER_ID"
	}
	return id
}

// GrantAccess writes an accessor row for the participant.
func (im *IdentityManager) GrantAccess(participantID uint64, accessor string) error {
	key, err := im.createPermissionCompositeKey(participantID, accessor)
	if err != nil {
		return fmt.Errorf("failed to create permission key for participant %d: %w", participantID, err)
	}
	perm := model.AccessPermission{
		ObjectType:    permissionObjectType,
		ParticipantID: participantID,
		Accessor:      accessor,
		Allowed:       true,
	}
	permBytes, err := json.Marshal(perm)
	if err != nil {
		return fmt.Errorf("failed to marshal access permission for participant %d: %w", participantID, err)
	}
	if err := im.Ctx.GetStub().PutState(key, permBytes); err != nil {
		return fmt.Errorf("failed to save access permission for participant %d: %w", participantID, err)
	}
	idLogger.Debugf("Access to participant %d granted to '%s'.", participantID, accessor)
	return nil
}

// HasPermission reports the stored flag for (participantID, accessor). A missing row is false.
func (im *IdentityManager) HasPermission(participantID uint64, accessor string) (bool, error) {
	key, err := im.createPermissionCompositeKey(participantID, accessor)
	if err != nil {
		return false, fmt.Errorf("failed to create permission key for participant %d: %w", participantID, err)
	}
	permBytes, err := im.Ctx.GetStub().GetState(key)
	if err != nil {
		return false, fmt.Errorf("ledger error reading access permission for participant %d: %w", participantID, err)
	}
	if permBytes == nil {
		return false, nil
	}
	var perm model.AccessPermission
	if err := json.Unmarshal(permBytes, &perm); err != nil {
		return false, fmt.Errorf("failed to unmarshal access permission for participant %d: %w", participantID, err)
	}
	return perm.Allowed, nil
}
