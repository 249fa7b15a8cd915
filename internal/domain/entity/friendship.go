// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// FriendshipStatus represents the state of a friend request.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates the request awaits the receiver.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates both sides are friends.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// String returns the string representation of the FriendshipStatus.
func (s FriendshipStatus) String() string {
	return string(s)
}

// Friendship is one directed relationship row. Only accepted rows carry meaning,
// and then in both directions regardless of who sent the request.
type Friendship struct {
	RequesterID uuid.UUID        `json:"requester_id"` // The user who sent the request.
	ReceiverID  uuid.UUID        `json:"receiver_id"`  // The user who received it.
	Status      FriendshipStatus `json:"status"`       // Current request state.
}

// IsAccepted reports whether the row contributes to the friend graph.
func (f *Friendship) IsAccepted() bool {
	return f != nil && f.Status == FriendshipStatusAccepted
}

// Other returns the side of the row opposite to focal.
// ok is false when focal is not an endpoint of the row.
func (f *Friendship) Other(focal uuid.UUID) (other uuid.UUID, ok bool) {
	switch focal {
	case f.RequesterID:
		return f.ReceiverID, true
	case f.ReceiverID:
		return f.RequesterID, true
	default:
		return uuid.Nil, false
	}
}
