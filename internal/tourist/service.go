package tourist

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"suraksha/internal/bridge"
	dErrors "suraksha/pkg/domain-errors"
	"suraksha/pkg/platform/sentinel"
)

// Service owns the registration and verification workflow. It keeps
// orchestration out of handlers and translates store sentinels into coded
// domain errors.
type Service struct {
	store  Store
	bridge bridge.Service
	logger *slog.Logger
}

func NewService(store Store, bridgeSvc bridge.Service, logger *slog.Logger) *Service {
	return &Service{store: store, bridge: bridgeSvc, logger: logger}
}

// Register validates the input and creates a pending record with a fresh id
// and the current timestamp. Email uniqueness is intentionally not enforced.
func (s *Service) Register(ctx context.Context, reg Registration) (*Tourist, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	t := &Tourist{
		ID:                    "t_" + uuid.NewString(),
		Name:                  reg.Name,
		Email:                 reg.Email,
		Phone:                 reg.Phone,
		Itinerary:             reg.Itinerary,
		EmergencyContactName:  reg.EmergencyContactName,
		EmergencyContactPhone: reg.EmergencyContactPhone,
		DocumentType:          reg.DocumentType,
		DocumentNumber:        reg.DocumentNumber,
		DocumentFileName:      reg.DocumentFileName,
		VerificationStatus:    StatusPending,
		ApplicationDate:       time.Now(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store registration")
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Tourist, error) {
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "tourist not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load tourist")
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]*Tourist, error) {
	return s.store.List(ctx)
}

func (s *Service) ListPending(ctx context.Context) ([]*Tourist, error) {
	return s.store.ListPending(ctx)
}

// Approve issues a blockchain identity and, only when issuance succeeds, marks
// the tourist verified with the issued id. On any bridge failure the record
// stays pending. Re-approving a terminal record is a no-op that skips the
// bridge call entirely.
func (s *Service) Approve(ctx context.Context, id string) (*Tourist, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.VerificationStatus != StatusPending {
		return t, nil
	}

	record, err := s.bridge.IssueIdentity(ctx, bridge.IssueIdentityRequest{
		UserID:         t.ID,
		Name:           t.Name,
		DocumentType:   string(t.DocumentType),
		DocumentNumber: t.DocumentNumber,
	})
	if err != nil {
		s.logger.Warn("identity issuance failed, tourist stays pending",
			"tourist_id", id,
			"error", err.Error(),
		)
		if dErrors.HasCode(err, dErrors.CodeBlockchainError) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBlockchainError, "identity issuance failed")
	}

	updated, err := s.store.SetVerified(ctx, id, record.BlockchainID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark tourist verified")
	}
	s.logger.Info("tourist verified", "tourist_id", id, "blockchain_id", record.BlockchainID)
	return updated, nil
}

// Reject transitions a pending tourist to rejected without any bridge call.
// Rejecting a terminal record is a no-op.
func (s *Service) Reject(ctx context.Context, id string) (*Tourist, error) {
	t, err := s.store.SetRejected(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "tourist not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to reject tourist")
	}
	s.logger.Info("tourist rejected", "tourist_id", id)
	return t, nil
}

// ResolveLogin mirrors the mocked login of the demo: match by email, fall back
// to the first registered tourist, else nil.
func (s *Service) ResolveLogin(ctx context.Context, email string) (*Tourist, error) {
	if email != "" {
		if t, err := s.store.FindByEmail(ctx, email); err == nil {
			return t, nil
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "login lookup failed")
		}
	}
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "login lookup failed")
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func validateRegistration(reg Registration) error {
	if govalidator.IsNull(reg.Name) {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if govalidator.IsNull(reg.Email) {
		return dErrors.New(dErrors.CodeInvalidInput, "email is required")
	}
	if !govalidator.IsEmail(reg.Email) {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid email")
	}
	if !ValidDocumentType(reg.DocumentType) {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid documentType")
	}
	return nil
}
