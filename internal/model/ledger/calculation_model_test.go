package ledgermodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-commission-api/internal/constant"
)

func TestCalcStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to CalcStatus
		ok       bool
	}{
		{CalcPending, CalcCalculated, true},
		{CalcCalculated, CalcApproved, true},
		{CalcCalculated, CalcDisputed, true},
		{CalcApproved, CalcPaid, true},
		{CalcDisputed, CalcCalculated, true},
		{CalcDisputed, CalcCancelled, true},

		{CalcPending, CalcPaid, false},
		{CalcCalculated, CalcPaid, false},
		{CalcApproved, CalcDisputed, false},
		{CalcPaid, CalcApproved, false},
		{CalcPaid, CalcCancelled, false},
		{CalcCancelled, CalcCalculated, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCalcStatus_ForceCancel(t *testing.T) {
	// 任意非终态可被强制取消
	for _, s := range []CalcStatus{CalcPending, CalcCalculated, CalcApproved, CalcDisputed} {
		assert.True(t, s.CanTransition(CalcCancelled), "%s", s)
	}
}

func TestCalcStatus_Terminal(t *testing.T) {
	assert.True(t, CalcPaid.Terminal())
	assert.True(t, CalcCancelled.Terminal())
	assert.False(t, CalcDisputed.Terminal())
}

func TestTransition(t *testing.T) {
	c := &CommissionCalculation{Status: int8(CalcCalculated)}
	require.NoError(t, c.Transition(CalcApproved))
	assert.Equal(t, int8(CalcApproved), c.Status)

	err := c.Transition(CalcDisputed)
	require.Error(t, err)
	assert.Equal(t, constant.CodeStatusTransitionInvalid, constant.CodeFrom(err))
	assert.Equal(t, int8(CalcApproved), c.Status, "非法流转不落地")
}
