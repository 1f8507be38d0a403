package main

import (
	"bytes"
	"context"
	"testing"

	"foster-intake/internal/domain/dosing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:     "foster-intake",
		Writer:   &buf,
		Commands: []*cli.Command{cmdDoses},
	}
	err := app.Run(context.Background(), append([]string{"foster-intake"}, args...))
	return buf.String(), err
}

func TestWriteDoses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDoses(&buf, 480, dosing.ComputeGrams(480, dosing.TopicalRevolution)))

	out := buf.String()
	assert.Contains(t, out, "480 g")
	assert.Contains(t, out, "Revolution")
	assert.Contains(t, out, "out of range")
	assert.Contains(t, out, "1 tablet")
}

func TestWriteDoses_NoTopical(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDoses(&buf, 907.18, dosing.ComputeGrams(907.18, dosing.TopicalNone)))

	assert.Contains(t, buf.String(), "no topical")
	assert.Contains(t, buf.String(), "0.4 mL")
}

func TestDosesCommand(t *testing.T) {
	out, err := runApp(t, "doses", "--grams", "907.18", "--topical", "advantage")
	require.NoError(t, err)
	assert.Contains(t, out, "Advantage II")

	_, err = runApp(t, "doses", "--grams", "0")
	assert.ErrorIs(t, err, errWeightRequired)

	_, err = runApp(t, "doses", "--grams", "900", "--topical", "collar")
	assert.Error(t, err)
}
