package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	assert.False(t, DebugEnabled(), "empty TODO_DEBUG should disable debug output")

	t.Setenv(DebugEnvVar, "1")
	assert.True(t, DebugEnabled())

	t.Setenv(DebugEnvVar, "true")
	assert.True(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	t.Setenv(DebugEnvVar, "")
	Debugf("hidden: %s\n", "test")
	assert.Empty(t, buf.String())

	t.Setenv(DebugEnvVar, "1")
	Debugf("shown: %s\n", "test")
	assert.Equal(t, "shown: test\n", buf.String())
}

func TestDebugln(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	t.Setenv(DebugEnvVar, "")
	Debugln("hidden")
	assert.Empty(t, buf.String())

	t.Setenv(DebugEnvVar, "1")
	Debugln("decoded", 3, "fields")
	assert.Equal(t, "decoded 3 fields\n", buf.String())
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)
	defer SetDebug(false)

	t.Setenv(DebugEnvVar, "")
	SetDebug(true)
	assert.True(t, DebugEnabled())
	Debugf("forced %d\n", 1)
	assert.Equal(t, "forced 1\n", buf.String())

	SetDebug(false)
	assert.False(t, DebugEnabled())
}
