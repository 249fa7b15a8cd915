package entity

import (
	"slices"

	"github.com/google/uuid"
)

// FriendIDs returns focal's deduplicated friend set from the given rows, in
// order of first appearance. Rows that are not accepted or do not touch focal
// are ignored, and focal is never its own friend.
func FriendIDs(rows []*Friendship, focal uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	friends := make([]uuid.UUID, 0, len(rows))

	for _, row := range rows {
		if !row.IsAccepted() {
			continue
		}

		other, ok := row.Other(focal)
		if !ok || other == focal {
			continue
		}

		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		friends = append(friends, other)
	}

	return friends
}

// FriendGraph is a symmetric adjacency built once from accepted friendship rows.
type FriendGraph struct {
	adjacency map[uuid.UUID][]uuid.UUID
	edges     map[[2]uuid.UUID]struct{}
}

// NewFriendGraph scans rows once and links both endpoints of every accepted row.
func NewFriendGraph(rows []*Friendship) *FriendGraph {
	g := &FriendGraph{
		adjacency: make(map[uuid.UUID][]uuid.UUID),
		edges:     make(map[[2]uuid.UUID]struct{}, len(rows)),
	}

	for _, row := range rows {
		if !row.IsAccepted() || row.RequesterID == row.ReceiverID {
			continue
		}
		g.link(row.RequesterID, row.ReceiverID)
		g.link(row.ReceiverID, row.RequesterID)
	}

	return g
}

func (g *FriendGraph) link(from, to uuid.UUID) {
	key := [2]uuid.UUID{from, to}
	if _, ok := g.edges[key]; ok {
		return
	}
	g.edges[key] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// FriendsOf returns a copy of the user's friend set.
func (g *FriendGraph) FriendsOf(userID uuid.UUID) []uuid.UUID {
	return slices.Clone(g.adjacency[userID])
}

// AreFriends reports whether a and b share an accepted row in either direction.
func (g *FriendGraph) AreFriends(a, b uuid.UUID) bool {
	_, ok := g.edges[[2]uuid.UUID{a, b}]

	return ok
}

// Circle returns the user followed by their friends.
func (g *FriendGraph) Circle(userID uuid.UUID) []uuid.UUID {
	friends := g.adjacency[userID]
	circle := make([]uuid.UUID, 0, len(friends)+1)
	circle = append(circle, userID)

	return append(circle, friends...)
}

// Size returns the number of users with at least one friend.
func (g *FriendGraph) Size() int {
	return len(g.adjacency)
}
