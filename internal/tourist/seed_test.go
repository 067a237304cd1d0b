package tourist

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SeedSuite struct {
	suite.Suite
	ctx    context.Context
	store  *InMemoryStore
	logger *slog.Logger
}

func (s *SeedSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *SeedSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

func (s *SeedSuite) writeFixture(content string) string {
	path := filepath.Join(s.T().TempDir(), "tourists.json")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *SeedSuite) TestLoadsRecords() {
	path := s.writeFixture(`[
		{"id": "t001", "name": "Asha Verma", "email": "asha@example.com", "verificationStatus": "pending"},
		{"id": "t002", "name": "Rohan Iyer", "email": "rohan@example.com", "verificationStatus": "verified", "blockchainId": "bc_0xseed02"}
	]`)

	loaded := SeedFromFile(s.ctx, path, s.store, s.logger)
	s.Equal(2, loaded)

	got, err := s.store.FindByID(s.ctx, "t002")
	s.Require().NoError(err)
	s.Equal("Rohan Iyer", got.Name)
	s.Equal(StatusVerified, got.VerificationStatus)
	s.Equal("bc_0xseed02", got.BlockchainID)
}

func (s *SeedSuite) TestFillsMissingFields() {
	path := s.writeFixture(`[{"name": "Meera Nair", "email": "meera@example.com"}]`)

	loaded := SeedFromFile(s.ctx, path, s.store, s.logger)
	s.Equal(1, loaded)

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.NotEmpty(all[0].ID)
	s.Equal(StatusPending, all[0].VerificationStatus)
	s.False(all[0].ApplicationDate.IsZero())
}

func (s *SeedSuite) TestMissingFileIsSilent() {
	loaded := SeedFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.json"), s.store, s.logger)
	s.Zero(loaded)

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *SeedSuite) TestMalformedFileLoadsNothing() {
	path := s.writeFixture(`{"not": "an array"`)
	loaded := SeedFromFile(s.ctx, path, s.store, s.logger)
	s.Zero(loaded)
}

func (s *SeedSuite) TestPreservesFileOrder() {
	path := s.writeFixture(`[
		{"id": "t00a", "name": "A", "email": "a@example.com"},
		{"id": "t00b", "name": "B", "email": "b@example.com"},
		{"id": "t00c", "name": "C", "email": "c@example.com"}
	]`)
	s.Equal(3, SeedFromFile(s.ctx, path, s.store, s.logger))

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("t00a", all[0].ID)
	s.Equal("t00c", all[2].ID)
}
