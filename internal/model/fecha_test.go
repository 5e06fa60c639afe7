package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFecha(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-02", want: "2024-01-02"},
		{in: " 2024-12-31 ", want: "2024-12-31"},
		{in: "2024-02-30", wantErr: true},
		{in: "02-01-2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFecha(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFechaInvalida)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHora(t *testing.T) {
	got, err := ParseHora("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30:00", got)

	got, err = ParseHora("17:05:09")
	require.NoError(t, err)
	assert.Equal(t, "17:05:09", got)

	_, err = ParseHora("25:00")
	assert.ErrorIs(t, err, ErrHoraInvalida)
}

func TestParseHoraOpcional_EmptyMeansAbsent(t *testing.T) {
	empty := ""
	got, err := ParseHoraOpcional(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseHoraOpcional(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
