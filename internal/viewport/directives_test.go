package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockedContent = "width=device-width, initial-scale=1.0, maximum-scale=1.0, user-scalable=no"

func TestParse(t *testing.T) {
	directives := Parse(lockedContent)
	require.Len(t, directives, 4)

	assert.Equal(t, Directive{Key: "width", Value: "device-width", Raw: "width=device-width"}, directives[0])
	assert.Equal(t, Directive{Key: "initial-scale", Value: "1.0", Raw: "initial-scale=1.0"}, directives[1])
	assert.Equal(t, Directive{Key: "maximum-scale", Value: "1.0", Raw: "maximum-scale=1.0"}, directives[2])
	assert.Equal(t, Directive{Key: "user-scalable", Value: "no", Raw: "user-scalable=no"}, directives[3])
}

func TestParseBareClause(t *testing.T) {
	directives := Parse("width=device-width, minimal-ui")
	require.Len(t, directives, 2)
	assert.Equal(t, Directive{Key: "minimal-ui", Raw: "minimal-ui"}, directives[1])
}

func TestParseEmptyAndWhitespace(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Nil(t, Parse(" , , "))

	directives := Parse("  width = device-width ,  user-scalable=no ")
	require.Len(t, directives, 2)
	assert.Equal(t, "width", directives[0].Key)
	assert.Equal(t, "device-width", directives[0].Value)
}

func TestMissing(t *testing.T) {
	required := []string{"maximum-scale=1.0", "user-scalable=no"}

	assert.Empty(t, Missing(lockedContent, required))

	missing := Missing("width=device-width, initial-scale=1.0, maximum-scale=1.0", required)
	assert.Equal(t, []string{"user-scalable=no"}, missing)

	missing = Missing("width=device-width", required)
	assert.Equal(t, required, missing)
}

func TestMissingPreservesOrder(t *testing.T) {
	required := []string{"user-scalable=no", "maximum-scale=1.0", "initial-scale=1.0"}
	missing := Missing("initial-scale=1.0", required)
	assert.Equal(t, []string{"user-scalable=no", "maximum-scale=1.0"}, missing)
}
