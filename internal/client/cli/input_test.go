package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	in := rdr("hello world\n")
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := rdr("lastline")
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      int
		expected int
		wantErr  bool
	}{
		{name: "number", input: "42\n", expected: 42},
		{name: "empty uses default", input: "\n", def: 30, expected: 30},
		{name: "garbage", input: "abc\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetInt(rdr(tc.input), "Age", tc.def, &out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer

	got, err := GetFloat(rdr("72.5\n"), "Weight", 0, &out)
	require.NoError(t, err)
	require.Equal(t, 72.5, got)

	got, err = GetFloat(rdr("\n"), "Weight", 68, &out)
	require.NoError(t, err)
	require.Equal(t, 68.0, got)
}
