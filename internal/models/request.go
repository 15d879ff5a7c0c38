package models

import "time"

// RequestStatus defines lifecycle states for inventory requests.
type RequestStatus string

const (
	// RequestStatusPending indicates the request is awaiting review.
	RequestStatusPending RequestStatus = "PENDING"
	// RequestStatusApproved indicates an admin accepted the request.
	RequestStatusApproved RequestStatus = "APPROVED"
	// RequestStatusRejected indicates an admin denied the request.
	RequestStatusRejected RequestStatus = "REJECTED"
	// RequestStatusCancelled indicates the requester withdrew the request.
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is permitted from s.
// PENDING is the only non-terminal state; once left it is never re-entered.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// Request is an employee's ask for a quantity of a catalog item.
// Requester and item references are immutable after creation; only the
// lifecycle engine mutates status, response metadata and admin comments.
type Request struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	UserID           uint          `gorm:"not null;index" json:"user_id"`
	User             *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ItemID           uint          `gorm:"not null;index" json:"item_id"`
	Item             *Item         `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity         int           `gorm:"not null" json:"quantity"`
	Reason           string        `gorm:"type:text" json:"reason"`
	Status           RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	RequestDate      time.Time     `gorm:"not null" json:"request_date"`
	ResponseDate     *time.Time    `json:"response_date"`
	ReviewedByUserID *uint         `json:"reviewed_by_user_id"`
	AdminComments    string        `gorm:"type:text" json:"admin_comments"`
}
