package model

import (
	"database/sql"
	"time"
)

// Registration is one admission for one participant
type Registration struct {
	ID       int64  `db:"id"`
	OrderID  int64  `db:"order_id"`
	TicketID int64  `db:"ticket_id"`
	EventID  int64  `db:"event_id"`
	UserID   string `db:"user_id"`

	ParticipantName  string `db:"participant_name"`
	ParticipantEmail string `db:"participant_email"`

	ClaimStatus    ClaimStatus    `db:"claim_status"`
	ApprovalStatus ApprovalStatus `db:"approval_status"`
	CheckedIn      bool           `db:"checked_in"`

	CheckInToken  string `db:"check_in_token"`
	TransferToken string `db:"transfer_token"`

	DocumentName sql.NullString `db:"document_name"`
	DocumentType sql.NullString `db:"document_type"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ClaimStatus ...
type ClaimStatus int

const (
	// ClaimStatusPending ...
	ClaimStatusPending ClaimStatus = 1

	// ClaimStatusClaimed ...
	ClaimStatusClaimed ClaimStatus = 2
)

// ApprovalStatus ...
type ApprovalStatus int

const (
	// ApprovalStatusPending waits for document review
	ApprovalStatusPending ApprovalStatus = 1

	// ApprovalStatusApproved ...
	ApprovalStatusApproved ApprovalStatus = 2

	// ApprovalStatusRejected ...
	ApprovalStatusRejected ApprovalStatus = 3
)

// String ...
func (s ClaimStatus) String() string {
	if s == ClaimStatusClaimed {
		return "claimed"
	}
	return "pending"
}

// String ...
func (s ApprovalStatus) String() string {
	switch s {
	case ApprovalStatusApproved:
		return "approved"
	case ApprovalStatusRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// InitialApprovalStatus is pending when a document must be reviewed first
func InitialApprovalStatus(requiresDocument bool) ApprovalStatus {
	if requiresDocument {
		return ApprovalStatusPending
	}
	return ApprovalStatusApproved
}

// RegistrationSignature is an immutable legal acceptance snapshot
type RegistrationSignature struct {
	ID                int64     `db:"id"`
	RegistrationID    int64     `db:"registration_id"`
	RegulationVersion string    `db:"regulation_version"`
	SignedAt          time.Time `db:"signed_at"`
	Payload           []byte    `db:"payload"`

	CreatedAt time.Time `db:"created_at"`
}

// RegistrationUpsell ...
type RegistrationUpsell struct {
	ID             int64  `db:"id"`
	RegistrationID int64  `db:"registration_id"`
	UpsellID       int64  `db:"upsell_id"`
	Quantity       int64  `db:"quantity"`
	UnitPrice      int64  `db:"unit_price"`
	Currency       string `db:"currency"`

	CreatedAt time.Time `db:"created_at"`
}
