package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromptCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetErr(&errOut)
	return cmd, &errOut
}

func TestReadSecret_Lines(t *testing.T) {
	cmd, errOut := newPromptCmd("first\r\nsecond")

	got, err := readSecret(cmd, "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = readSecret(cmd, "Key: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = readSecret(cmd, "Key: ")
	assert.ErrorIs(t, err, ErrNoInput)

	assert.Equal(t, "Password: Key: Key: ", errOut.String())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: " YES \n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			cmd, _ := newPromptCmd(tt.input)

			got, err := confirm(cmd, "Sure?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
