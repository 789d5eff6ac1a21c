package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultResolverGet(t *testing.T) {
	t.Setenv("SYSLOCALE_TEST_KEY", "value")

	var r DefaultResolver
	assert.Equal(t, "value", r.Get("SYSLOCALE_TEST_KEY"))
	assert.Equal(t, "", r.Get("SYSLOCALE_TEST_KEY_MISSING"))
}
