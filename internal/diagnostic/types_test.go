package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("W001", "namespace is empty", "metrics.namespace")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddError("E001", "unknown provider \"dozer\"", "provider", "auto", "reflect")
	d.AddError("E002", "level is required", "")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		`provider: [E001] unknown provider "dozer" (expected one of: auto, reflect); [E002] level is required`)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("W", "w", "")
	b.AddError("E", "e", "x")

	a.Merge(b)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
	assert.Equal(t, SeverityError, a.Errors[0].Severity)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
