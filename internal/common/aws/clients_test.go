// internal/common/aws/clients_test.go
package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClients(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	clients, err := NewClients(context.Background(), "us-east-1")

	require.NoError(t, err)
	assert.NotNil(t, clients.SES)
	assert.NotNil(t, clients.SNS)
}
