package token

import (
	"context"
	"fmt"
	"testing"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newSeqIssuer() *Issuer {
	seq := 0
	return NewIssuerWithFunc(func() string {
		seq++
		return fmt.Sprintf("token-%02d", seq)
	})
}

func TestIssuer__Random_Tokens_Unique(t *testing.T) {
	issuer := NewIssuer()

	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		tokens := issuer.Issue()
		assert.NotEqual(t, tokens.CheckIn, tokens.Transfer)
		assert.Equal(t, 32, len(tokens.CheckIn))

		_, existed := seen[tokens.CheckIn]
		assert.Equal(t, false, existed)
		seen[tokens.CheckIn] = struct{}{}

		_, existed = seen[tokens.Transfer]
		assert.Equal(t, false, existed)
		seen[tokens.Transfer] = struct{}{}
	}
}

type claimTest struct {
	provider *repository.ProviderMock
	regRepo  *repository.RegistrationMock
	service  *Service
}

func newClaimTest() *claimTest {
	provider := &repository.ProviderMock{
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	regRepo := &repository.RegistrationMock{}
	return &claimTest{
		provider: provider,
		regRepo:  regRepo,
		service:  NewService(provider, regRepo, newSeqIssuer()),
	}
}

// stubStore keeps one registration and applies compare-and-swap transfers
func (c *claimTest) stubStore(reg model.Registration) *model.Registration {
	current := reg
	c.regRepo.GetRegistrationByTransferTokenFunc = func(
		ctx context.Context, transferToken string,
	) (model.Registration, error) {
		if transferToken != current.TransferToken {
			return model.Registration{}, repository.ErrNotFound
		}
		return current, nil
	}
	c.regRepo.TransferRegistrationFunc = func(ctx context.Context, input repository.TransferInput) (bool, error) {
		if input.OldToken != current.TransferToken {
			return false, nil
		}
		current.TransferToken = input.NewToken
		current.UserID = input.NewUserID
		current.ParticipantEmail = input.ParticipantEmail
		current.ClaimStatus = model.ClaimStatusClaimed
		return true, nil
	}
	return &current
}

func TestService_Claim__Rotates_Transfer_Token(t *testing.T) {
	c := newClaimTest()
	current := c.stubStore(model.Registration{
		ID:               5,
		UserID:           "buyer",
		ParticipantName:  "Alice",
		ParticipantEmail: "buyer@example.com",
		ClaimStatus:      model.ClaimStatusPending,
		TransferToken:    "old-token",
	})

	reg, err := c.service.Claim(newContext(), ClaimInput{
		TransferToken: "old-token",
		UserID:        "alice",
		Email:         "alice@example.com",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, "token-01", reg.TransferToken)
	assert.Equal(t, "alice", reg.UserID)
	assert.Equal(t, "Alice", reg.ParticipantName)
	assert.Equal(t, model.ClaimStatusClaimed, reg.ClaimStatus)
	assert.Equal(t, "token-01", current.TransferToken)

	// replay of the stale link
	_, err = c.service.Claim(newContext(), ClaimInput{
		TransferToken: "old-token",
		UserID:        "mallory",
		Email:         "mallory@example.com",
	})
	assert.Equal(t, ErrTokenNotFound, err)
	assert.Equal(t, "alice", current.UserID)
}

func TestService_Claim__Lost_Race(t *testing.T) {
	c := newClaimTest()
	c.regRepo.GetRegistrationByTransferTokenFunc = func(
		ctx context.Context, transferToken string,
	) (model.Registration, error) {
		return model.Registration{ID: 5, TransferToken: transferToken}, nil
	}
	c.regRepo.TransferRegistrationFunc = func(ctx context.Context, input repository.TransferInput) (bool, error) {
		return false, nil
	}

	_, err := c.service.Claim(newContext(), ClaimInput{
		TransferToken: "old-token",
		UserID:        "alice",
		Email:         "alice@example.com",
	})
	assert.Equal(t, ErrTokenNotFound, err)
}

func TestService_Claim__Checked_In(t *testing.T) {
	c := newClaimTest()
	c.stubStore(model.Registration{ID: 5, TransferToken: "old-token", CheckedIn: true})

	_, err := c.service.Claim(newContext(), ClaimInput{
		TransferToken: "old-token",
		UserID:        "alice",
		Email:         "alice@example.com",
	})
	assert.Equal(t, ErrAlreadyCheckedIn, err)
	assert.Equal(t, 0, len(c.regRepo.TransferRegistrationCalls()))
}

func TestService_Claim__Invalid_Input(t *testing.T) {
	c := newClaimTest()

	_, err := c.service.Claim(newContext(), ClaimInput{TransferToken: " ", UserID: "alice", Email: "a@b.c"})
	assert.Equal(t, ErrInvalidClaim, err)
	assert.Equal(t, 0, len(c.provider.TransactCalls()))
}
