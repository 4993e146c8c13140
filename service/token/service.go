package token

import (
	"context"
	"errors"
	"strings"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"github.com/QuangTung97/event-checkout/repository"
	"go.uber.org/zap"
)

var (
	// ErrTokenNotFound when the transfer token is unknown or was already consumed
	ErrTokenNotFound = errors.New("transfer token not found")

	// ErrAlreadyCheckedIn ...
	ErrAlreadyCheckedIn = errors.New("registration already checked in")

	// ErrInvalidClaim ...
	ErrInvalidClaim = errors.New("invalid claim request")
)

// ClaimInput ...
type ClaimInput struct {
	TransferToken string
	UserID        string
	Name          string
	Email         string
}

// Service moves registration ownership through single use transfer tokens
type Service struct {
	provider repository.Provider
	regRepo  repository.Registration
	issuer   *Issuer
}

// NewService ...
func NewService(provider repository.Provider, regRepo repository.Registration, issuer *Issuer) *Service {
	return &Service{
		provider: provider,
		regRepo:  regRepo,
		issuer:   issuer,
	}
}

// Claim transfers ownership and replaces the transfer token, so an old claim link can not be replayed
func (s *Service) Claim(ctx context.Context, input ClaimInput) (model.Registration, error) {
	input.TransferToken = strings.TrimSpace(input.TransferToken)
	input.UserID = strings.TrimSpace(input.UserID)
	input.Email = strings.TrimSpace(input.Email)
	if input.TransferToken == "" || input.UserID == "" || input.Email == "" {
		return model.Registration{}, ErrInvalidClaim
	}

	var result model.Registration
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		reg, err := s.regRepo.GetRegistrationByTransferToken(ctx, input.TransferToken)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTokenNotFound
		}
		if err != nil {
			return err
		}
		if reg.CheckedIn {
			return ErrAlreadyCheckedIn
		}

		name := input.Name
		if strings.TrimSpace(name) == "" {
			name = reg.ParticipantName
		}

		newToken := s.issuer.NewTransferToken()
		ok, err := s.regRepo.TransferRegistration(ctx, repository.TransferInput{
			RegistrationID:   reg.ID,
			OldToken:         input.TransferToken,
			NewToken:         newToken,
			NewUserID:        input.UserID,
			ParticipantName:  name,
			ParticipantEmail: input.Email,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrTokenNotFound
		}

		reg.UserID = input.UserID
		reg.ParticipantName = name
		reg.ParticipantEmail = input.Email
		reg.ClaimStatus = model.ClaimStatusClaimed
		reg.TransferToken = newToken
		result = reg
		return nil
	})
	if err != nil {
		return model.Registration{}, err
	}

	otellib.Extract(ctx).Info("registration claimed",
		zap.Int64("registration_id", result.ID),
		zap.String("user_id", result.UserID),
	)
	return result, nil
}
