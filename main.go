package main

import (
	"participantregistry/config"
	"participantregistry/contract"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("participants.main")

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Error loading chaincode configuration: " + err.Error())
	}

	cc, err := contractapi.NewChaincode(contract.NewParticipantRegistryContract())
	if err != nil {
		panic("Error creating ParticipantRegistryContract: " + err.Error())
	}

	if !cfg.ExternalService() {
		if err := cc.Start(); err != nil {
			panic("Error starting chaincode: " + err.Error())
		}
		return
	}

	tls, err := cfg.LoadTLSMaterial()
	if err != nil {
		panic("Error loading chaincode TLS material: " + err.Error())
	}
	server := &shim.ChaincodeServer{
		CCID:    cfg.CCID,
		Address: cfg.ServerAddress,
		CC:      cc,
		TLSProps: shim.TLSProperties{
			Disabled:      cfg.TLSDisabled,
			Key:           tls.Key,
			Cert:          tls.Cert,
			ClientCACerts: tls.ClientCACert,
		},
	}
	logger.Infof("Starting chaincode server %s on %s", cfg.CCID, cfg.ServerAddress)
	if err := server.Start(); err != nil {
		panic("Error starting chaincode server: " + err.Error())
	}
}
