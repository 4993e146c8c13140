package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
)

// Registration ...
type Registration interface {
	CountRegistrationsByEvent(ctx context.Context, eventID int64) (int64, error)
	GetRegistrationsByOrder(ctx context.Context, orderID int64) ([]model.Registration, error)
	GetRegistrationsByEvent(ctx context.Context, eventID int64) ([]model.Registration, error)
	GetRegistrationByTransferToken(ctx context.Context, transferToken string) (model.Registration, error)

	InsertRegistration(ctx context.Context, reg model.Registration) (int64, error)
	InsertSignature(ctx context.Context, sig model.RegistrationSignature) error
	InsertRegistrationUpsell(ctx context.Context, item model.RegistrationUpsell) error

	// TransferRegistration swaps owner and transfer token only if oldToken is still current
	TransferRegistration(ctx context.Context, input TransferInput) (bool, error)
}

// TransferInput ...
type TransferInput struct {
	RegistrationID   int64
	OldToken         string
	NewToken         string
	NewUserID        string
	ParticipantName  string
	ParticipantEmail string
}

type registrationImpl struct {
}

// NewRegistration ...
func NewRegistration() Registration {
	return &registrationImpl{}
}

const registrationColumns = `
	id, order_id, ticket_id, event_id, user_id, participant_name, participant_email,
	claim_status, approval_status, checked_in, check_in_token, transfer_token,
	document_name, document_type, created_at, updated_at
`

// CountRegistrationsByEvent ...
func (r *registrationImpl) CountRegistrationsByEvent(ctx context.Context, eventID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM registration WHERE event_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, eventID)
	return count, err
}

// GetRegistrationsByOrder ...
func (r *registrationImpl) GetRegistrationsByOrder(ctx context.Context, orderID int64) ([]model.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registration WHERE order_id = ? ORDER BY id`
	var result []model.Registration
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, orderID)
	return result, err
}

// GetRegistrationsByEvent ...
func (r *registrationImpl) GetRegistrationsByEvent(ctx context.Context, eventID int64) ([]model.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registration WHERE event_id = ? ORDER BY id`
	var result []model.Registration
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, eventID)
	return result, err
}

// GetRegistrationByTransferToken ...
func (r *registrationImpl) GetRegistrationByTransferToken(
	ctx context.Context, transferToken string,
) (model.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registration WHERE transfer_token = ?`
	var result model.Registration
	err := GetReadonly(ctx).GetContext(ctx, &result, query, transferToken)
	return result, wrapNotFound(err)
}

// InsertRegistration ...
func (r *registrationImpl) InsertRegistration(ctx context.Context, reg model.Registration) (int64, error) {
	query := `
INSERT INTO registration (
	order_id, ticket_id, event_id, user_id, participant_name, participant_email,
	claim_status, approval_status, checked_in, check_in_token, transfer_token,
	document_name, document_type
) VALUES (
	:order_id, :ticket_id, :event_id, :user_id, :participant_name, :participant_email,
	:claim_status, :approval_status, :checked_in, :check_in_token, :transfer_token,
	:document_name, :document_type
)
`
	res, err := GetTx(ctx).NamedExecContext(ctx, query, reg)
	if err != nil {
		return 0, wrapDuplicate(err)
	}
	return res.LastInsertId()
}

// InsertSignature ...
func (r *registrationImpl) InsertSignature(ctx context.Context, sig model.RegistrationSignature) error {
	query := `
INSERT INTO registration_signature (registration_id, regulation_version, signed_at, payload)
VALUES (:registration_id, :regulation_version, :signed_at, :payload)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, sig)
	return err
}

// InsertRegistrationUpsell ...
func (r *registrationImpl) InsertRegistrationUpsell(ctx context.Context, item model.RegistrationUpsell) error {
	query := `
INSERT INTO registration_upsell (registration_id, upsell_id, quantity, unit_price, currency)
VALUES (:registration_id, :upsell_id, :quantity, :unit_price, :currency)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, item)
	return err
}

// TransferRegistration ...
func (r *registrationImpl) TransferRegistration(ctx context.Context, input TransferInput) (bool, error) {
	query := `
UPDATE registration SET
	user_id = ?, participant_name = ?, participant_email = ?,
	claim_status = ?, transfer_token = ?
WHERE id = ? AND transfer_token = ?
`
	res, err := GetTx(ctx).ExecContext(ctx, query,
		input.NewUserID, input.ParticipantName, input.ParticipantEmail,
		model.ClaimStatusClaimed, input.NewToken,
		input.RegistrationID, input.OldToken,
	)
	if err != nil {
		return false, wrapDuplicate(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
