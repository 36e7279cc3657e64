package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_CanAdvanceTo_Is_Forward_Only(t *testing.T) {
	req := require.New(t)

	// Forward transitions
	req.True(StatusSent.CanAdvanceTo(StatusDelivered))
	req.True(StatusSent.CanAdvanceTo(StatusRead))
	req.True(StatusDelivered.CanAdvanceTo(StatusRead))

	// Regressions and no-ops
	req.False(StatusDelivered.CanAdvanceTo(StatusSent))
	req.False(StatusRead.CanAdvanceTo(StatusDelivered))
	req.False(StatusRead.CanAdvanceTo(StatusSent))
	req.False(StatusSent.CanAdvanceTo(StatusSent))
	req.False(StatusRead.CanAdvanceTo(StatusRead))
}

func TestPairKey_Is_Order_Independent(t *testing.T) {
	req := require.New(t)

	// Both participants resolve to the same conversation
	req.Equal(PairKey("alice", "bob"), PairKey("bob", "alice"))
	req.Equal("alice|bob", PairKey("bob", "alice"))

	// Distinct pairs stay distinct
	req.NotEqual(PairKey("alice", "bob"), PairKey("alice", "carol"))
}
