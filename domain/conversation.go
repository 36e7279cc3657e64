package domain

import "strings"

// PairKey builds the canonical identifier of a one-to-one conversation.
// Both participants map to the same key regardless of direction, so a
// single Badger prefix holds the whole exchange in chronological order.
func PairKey(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "|" + userB
}
