//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/integration"
	"github.com/stretchr/testify/assert"
)

func newRegistration(orderID int64, suffix string) model.Registration {
	return model.Registration{
		OrderID:          orderID,
		TicketID:         21,
		EventID:          11,
		UserID:           "user-1",
		ParticipantName:  "Alice " + suffix,
		ParticipantEmail: "alice-" + suffix + "@example.com",
		ClaimStatus:      model.ClaimStatusPending,
		ApprovalStatus:   model.ApprovalStatusApproved,
		CheckInToken:     "checkin-" + suffix,
		TransferToken:    "transfer-" + suffix,
	}
}

func TestRegistration(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("registration")
	tc.Truncate("registration_signature")
	tc.Truncate("registration_upsell")

	provider := NewProvider(tc.DB)
	repo := NewRegistration()

	//---------------------------------------
	// Insert
	//---------------------------------------
	var firstID int64
	err := provider.Transact(newContext(), func(ctx context.Context) error {
		id, err := repo.InsertRegistration(ctx, newRegistration(5, "a"))
		if err != nil {
			return err
		}
		firstID = id

		_, err = repo.InsertRegistration(ctx, newRegistration(5, "b"))
		if err != nil {
			return err
		}

		err = repo.InsertSignature(ctx, model.RegistrationSignature{
			RegistrationID:    id,
			RegulationVersion: "v3",
			SignedAt:          newTime("2022-05-10T10:00:00Z"),
			Payload:           []byte(`{"accepted":true}`),
		})
		if err != nil {
			return err
		}

		return repo.InsertRegistrationUpsell(ctx, model.RegistrationUpsell{
			RegistrationID: id,
			UpsellID:       31,
			Quantity:       2,
			UnitPrice:      500,
			Currency:       "eur",
		})
	})
	assert.Equal(t, nil, err)

	readCtx := provider.Readonly(newContext())

	count, err := repo.CountRegistrationsByEvent(readCtx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	regs, err := repo.GetRegistrationsByOrder(readCtx, 5)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(regs))
	assert.Equal(t, firstID, regs[0].ID)
	assert.Equal(t, "alice-a@example.com", regs[0].ParticipantEmail)
	assert.Equal(t, "transfer-b", regs[1].TransferToken)

	regs, err = repo.GetRegistrationsByEvent(readCtx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(regs))

	//---------------------------------------
	// Duplicate Token
	//---------------------------------------
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertRegistration(ctx, newRegistration(6, "a"))
		return err
	})
	assert.Equal(t, ErrDuplicate, err)

	//---------------------------------------
	// Transfer
	//---------------------------------------
	input := TransferInput{
		RegistrationID:   firstID,
		OldToken:         "transfer-a",
		NewToken:         "transfer-c",
		NewUserID:        "user-2",
		ParticipantName:  "Bob",
		ParticipantEmail: "bob@example.com",
	}

	var ok bool
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		ok, err = repo.TransferRegistration(ctx, input)
		return err
	})
	assert.Equal(t, nil, err)
	assert.True(t, ok)

	reg, err := repo.GetRegistrationByTransferToken(readCtx, "transfer-c")
	assert.Equal(t, nil, err)
	assert.Equal(t, "user-2", reg.UserID)
	assert.Equal(t, model.ClaimStatusClaimed, reg.ClaimStatus)

	// stale token no longer matches
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		ok, err = repo.TransferRegistration(ctx, input)
		return err
	})
	assert.Equal(t, nil, err)
	assert.False(t, ok)

	_, err = repo.GetRegistrationByTransferToken(readCtx, "transfer-a")
	assert.Equal(t, ErrNotFound, err)
}
