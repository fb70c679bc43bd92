package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusSuccess, StatusSuccess, true},
		{StatusSuccess, StatusRollbackPending, true},
		{StatusSuccess, StatusFail, false},
		{StatusRollbackPending, StatusFail, true},
		{StatusRollbackPending, StatusSuccess, false},
		{StatusRollbackPending, StatusRollbackPending, false},
		{StatusFail, StatusFail, true},
		{StatusFail, StatusSuccess, false},
		{StatusFail, StatusRollbackPending, false},
		{Status("UNKNOWN"), StatusSuccess, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusSuccess.IsTerminal())
	assert.False(t, StatusRollbackPending.IsTerminal())
	assert.True(t, StatusFail.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("ROLLBACK_PENDING")
	require.NoError(t, err)
	assert.Equal(t, StatusRollbackPending, status)

	_, err = ParseStatus("success")
	assert.Error(t, err)
}

func TestStatus_UnmarshalRejectsFreeText(t *testing.T) {
	var h History
	err := json.Unmarshal([]byte(`{"source":"X","status":"DONE","message":"m"}`), &h)
	assert.Error(t, err)
}
