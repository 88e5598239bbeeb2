package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Linear_Delay(t *testing.T) {
	req := require.New(t)
	policy := RetryPolicy{MaxAttempts: 5, Step: 3 * time.Second}

	req.Equal(time.Duration(0), policy.Delay(0))
	req.Equal(3*time.Second, policy.Delay(1))
	req.Equal(6*time.Second, policy.Delay(2))
	req.Equal(15*time.Second, policy.Delay(5))
}

func TestRetryPolicy_Ceiling(t *testing.T) {
	req := require.New(t)
	policy := DefaultRetryPolicy()

	req.False(policy.Exhausted(0))
	req.False(policy.Exhausted(4))
	req.True(policy.Exhausted(5))
	req.True(policy.Exhausted(6))
}
