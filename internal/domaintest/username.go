package domaintest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func NewUsername(t *testing.T) string {
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return fmt.Sprintf("player_%s", id.String()[:8])
}
