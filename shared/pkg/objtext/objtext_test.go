package objtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSkipsBlankAndComments(t *testing.T) {
	src := "# cabeçalho\n\nv 1 2 3 # fim\n   \nvt 0.5 0.5\n"

	var recs []Record
	err := Scan(strings.NewReader(src), func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, Record{Line: 3, Kind: "v", Fields: []string{"1", "2", "3"}}, recs[0])
	assert.Equal(t, 5, recs[1].Line)
	assert.Equal(t, "vt", recs[1].Kind)
}

func TestScanStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Scan(strings.NewReader("v 1 2 3\nv 4 5 6\n"), func(Record) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestFloats(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		n       int
		want    []float32
		wantErr bool
	}{
		{"exato", Record{Kind: "v", Fields: []string{"1", "-2.5", "3e1"}}, 3, []float32{1, -2.5, 30}, false},
		{"campo extra ignorado", Record{Kind: "v", Fields: []string{"1", "2", "3", "1"}}, 3, []float32{1, 2, 3}, false},
		{"poucos campos", Record{Kind: "vt", Fields: []string{"1"}}, 2, nil, true},
		{"token inválido", Record{Kind: "vn", Fields: []string{"1", "x", "3"}}, 3, nil, true},
		{"nan", Record{Kind: "v", Fields: []string{"nan", "0", "0"}}, 3, nil, true},
		{"infinito", Record{Kind: "v", Fields: []string{"1", "Inf", "0"}}, 3, nil, true},
		{"infinito negativo", Record{Kind: "vt", Fields: []string{"-inf", "0"}}, 2, nil, true},
		{"estouro de float32", Record{Kind: "v", Fields: []string{"1e40", "0", "0"}}, 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rec.Floats(tt.n)
			if tt.wantErr {
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndex(t *testing.T) {
	rec := Record{Line: 7, Kind: "f"}
	tests := []struct {
		token    string
		count    int
		want     int
		indexErr bool
		parseErr bool
	}{
		{"1", 3, 0, false, false},
		{"3", 3, 2, false, false},
		{"-1", 3, 2, false, false},
		{"-3", 3, 0, false, false},
		{"4", 3, 0, true, false},
		{"0", 3, 0, true, false},
		{"-4", 3, 0, true, false},
		{"a", 3, 0, false, true},
	}

	for _, tt := range tests {
		got, err := Index(rec, "posição", tt.token, tt.count)
		switch {
		case tt.indexErr:
			var ierr *IndexError
			require.ErrorAs(t, err, &ierr, "token %q", tt.token)
			assert.Equal(t, 7, ierr.Line)
		case tt.parseErr:
			var perr *ParseError
			require.ErrorAs(t, err, &perr, "token %q", tt.token)
		default:
			require.NoError(t, err, "token %q", tt.token)
			assert.Equal(t, tt.want, got, "token %q", tt.token)
		}
	}
}
