package demo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults(t *testing.T) {
	intSum, floatSum := Results()
	assert.Equal(t, 50, intSum)
	assert.Equal(t, float32(50.5), floatSum)
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	assert.Equal(t, "50\n50.5", buf.String())
}

func TestRunDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Run(&first))
	require.NoError(t, Run(&second))
	assert.Equal(t, first.String(), second.String())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestRunWriteError(t *testing.T) {
	err := Run(&failingWriter{after: 0})
	assert.EqualError(t, err, "disk full")

	err = Run(&failingWriter{after: 1})
	assert.EqualError(t, err, "disk full")
}
