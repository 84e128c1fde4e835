package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCompletionAccepts(t *testing.T) {
	assert.NoError(t, CheckCompletion(false, true, 150))
	assert.NoError(t, CheckCompletion(false, true, 0.5))
}

func TestCheckCompletionAlreadyCompleted(t *testing.T) {
	// A completed appointment stays completed no matter what else is wrong.
	assert.ErrorIs(t, CheckCompletion(true, true, 150), ErrAlreadyCompleted)
	assert.ErrorIs(t, CheckCompletion(true, false, 0), ErrAlreadyCompleted)
}

func TestCheckCompletionServiceMissing(t *testing.T) {
	assert.ErrorIs(t, CheckCompletion(false, false, 150), ErrServiceNotFound)
}

func TestCheckCompletionInvalidPrice(t *testing.T) {
	assert.ErrorIs(t, CheckCompletion(false, true, 0), ErrInvalidPrice)
	assert.ErrorIs(t, CheckCompletion(false, true, -10), ErrInvalidPrice)
}
