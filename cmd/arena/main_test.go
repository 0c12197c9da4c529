package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{input: "8x8", wantWidth: 8, wantHeight: 8},
		{input: "6X4", wantWidth: 6, wantHeight: 4},
		{input: "64x64", wantWidth: 64, wantHeight: 64},
		{input: "8x", wantErr: true},
		{input: "x8", wantErr: true},
		{input: "8", wantErr: true},
		{input: "", wantErr: true},
		{input: "65x8", wantErr: true},
		{input: "8x65", wantErr: true},
		{input: "1x8", wantErr: true},
		{input: "0x8", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			width, height, err := parseSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantWidth, width)
			require.Equal(t, tt.wantHeight, height)
		})
	}
}
