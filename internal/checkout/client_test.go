package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	client := NewClient("sk_test_key")

	intentID, clientSecret, err := client.CreateIntent(1900, "EUR", "Pack 5 surveys")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(intentID, "pi_"))
	assert.Len(t, intentID, len("pi_")+24)
	assert.True(t, strings.HasPrefix(clientSecret, intentID+"_secret_"))

	// Each intent gets its own id.
	otherID, _, err := client.CreateIntent(1900, "EUR", "Pack 5 surveys")
	require.NoError(t, err)
	assert.NotEqual(t, intentID, otherID)
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	client := NewClient("sk_test_key")

	for _, amount := range []int{0, -100} {
		_, _, err := client.CreateIntent(amount, "EUR", "Pack")
		assert.Error(t, err)
	}
}
