package helpers

import (
	"context"
	"testing"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/repository"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
	"github.com/Design-Arena-Gens/agentic-c0a91717/policy"
)

func NewTestSQLiteStore(t *testing.T, f *store.Fixtures) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:", f)
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// NewTestService wires a service over repo with the default run policy.
func NewTestService(t *testing.T, repo store.Repository) *service.Service {
	t.Helper()

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return service.New(repo, engine)
}
