package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldAttachesField(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Pretty: false, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	fieldLogger := WithField("component", "seed")
	fieldLogger.Info().Msg("seeding demo data")

	out := buf.String()
	assert.Contains(t, out, `"component":"seed"`)
	assert.Contains(t, out, "seeding demo data")
}
