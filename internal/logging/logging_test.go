package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(&buf, false)
	assert.Equal(t, logrus.InfoLevel, quiet.GetLevel())
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	verbose := New(&buf, true)
	assert.Equal(t, logrus.DebugLevel, verbose.GetLevel())
	verbose.WithField("path", "/a.txt").Debug("content skipped")
	assert.Contains(t, buf.String(), "content skipped")
	assert.Contains(t, buf.String(), "path=/a.txt")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Info("goes nowhere")
}
