package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	assert.Equal(t, "/auth", Decide(ViewDashboard, false))
	assert.Equal(t, "", Decide(ViewDashboard, true))
	assert.Equal(t, "/dashboard", Decide(ViewLanding, true))
	assert.Equal(t, "", Decide(ViewLanding, false))
	assert.Equal(t, "", Decide("other", false))
}
