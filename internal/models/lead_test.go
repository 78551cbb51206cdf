package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLead_TableName(t *testing.T) {
	assert.Equal(t, "leads", (&Lead{}).TableName())
}

func TestLead_BeforeCreate(t *testing.T) {
	lead := Lead{
		FirstName:   "Ana",
		LastName:    "López",
		Email:       "ana@example.com",
		Phone:       "5512345678",
		CompanyName: "Taquería Ana",
	}

	err := lead.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.NotZero(t, lead.CreatedAt)
	assert.Equal(t, LeadStatusReceived, lead.Status)
	assert.Equal(t, LeadSourceContactForm, lead.Source)
}

func TestLead_BeforeCreateKeepsExistingValues(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	lead := Lead{
		ID:        id,
		Email:     "demo@avoqado.io",
		Source:    "seed",
		Status:    "contacted",
		CreatedAt: createdAt,
	}

	err := lead.BeforeCreate(nil)
	require.NoError(t, err)

	assert.Equal(t, id, lead.ID)
	assert.Equal(t, createdAt, lead.CreatedAt)
	assert.Equal(t, "contacted", lead.Status)
	assert.Equal(t, "seed", lead.Source)
}
