package service

import (
	"errors"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/repository"
	"github.com/Design-Arena-Gens/agentic-c0a91717/policy"
)

var (
	// ErrInvalidRunID means the request did not carry exactly one well-formed run identifier.
	ErrInvalidRunID = errors.New("invalid run identifier")
	// ErrRunNotFound means the identifier did not match any run.
	ErrRunNotFound = errors.New("run not found")
)

// Client-facing messages for the errors above.
const (
	InvalidRunIDMessage = "Invalid run identifier"
	RunNotFoundMessage  = "Run not found"
)

type Service struct {
	store        store.Repository
	policyEngine *policy.Engine
}

func New(store store.Repository, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        store,
		policyEngine: policyEngine,
	}
}
