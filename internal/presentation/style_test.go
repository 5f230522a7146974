package presentation

import (
	"testing"

	"github.com/shenikar/campus_connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStyle(t *testing.T) {
	for _, status := range []models.IncidentStatus{
		models.IncidentPending, models.IncidentInProgress, models.IncidentResolved, models.IncidentClosed,
	} {
		token, err := StatusStyle(status)
		require.NoError(t, err, status)
		assert.NotEmpty(t, token, status)
	}

	token, err := StatusStyle("ESCALATED")
	assert.ErrorIs(t, err, ErrUnknownStyle)
	assert.Empty(t, token)
}

func TestPriorityStyle(t *testing.T) {
	token, err := PriorityStyle(models.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "bg-rose-100 text-rose-800", token)

	_, err = PriorityStyle("urgent")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}
