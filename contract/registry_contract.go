package contract

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("participants.registry")

// ContractName is the namespace the registry is installed under.
const ContractName = "ParticipantRegistry"

// Object types used for composite keys and as 'objectType' for CouchDB queries.
const (
	profileObjectType = "ParticipantProfile" // Attribute for composite key: participant id.
	metricsObjectType = "EngagementMetrics"  // Attribute for composite key: participant id.

	// counterKey holds the number of profiles ever created, as a decimal string.
	counterKey = "ParticipantCounter"
)

// Constants for input validation and limits
const (
	maxDisplayNameLength = 50
	maxStatementLength   = 160
	maxInterestTags      = 5
	maxInterestTagLength = 30
	defaultPageSize      = 10
	maxPageSize          = 100
)

// ParticipantRegistryContract stores participant profiles, accessor flags and engagement counters.
// @contract:ParticipantRegistry
type ParticipantRegistryContract struct {
	contractapi.Contract
}

// NewParticipantRegistryContract returns the contract with its name and transaction hooks set.
func NewParticipantRegistryContract() *ParticipantRegistryContract {
	c := new(ParticipantRegistryContract)
	c.Name = ContractName
	c.BeforeTransaction = logTransaction
	return c
}

// actorInfo holds commonly needed details about the transaction invoker.
type actorInfo struct {
	fullID string
	height int64
}

// Instantiate is called during chaincode instantiation.
func (s *ParticipantRegistryContract) Instantiate(ctx contractapi.TransactionContextInterface) {
	logger.Info("ParticipantRegistryContract Instantiated/Upgraded")
}

func logTransaction(ctx contractapi.TransactionContextInterface) error {
	fn, params := ctx.GetStub().GetFunctionAndParameters()
	logger.Infof("Chaincode Call: %s (%d args, tx %s)", fn, len(params), ctx.GetStub().GetTxID())
	return nil
}
