package record_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/internal/record"
)

func TestScan_SkipsCommentsAndBlanks(t *testing.T) {
	in := "# NODES\nN;0;Depot\r\n\n# EDGES\nE;0;1;2.5\nX;ignored\n"

	var got []record.Line
	err := record.Scan(strings.NewReader(in), func(l record.Line) error {
		got = append(got, l)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, record.Line{No: 2, Tag: "N", Rest: "0;Depot"}, got[0])
	assert.Equal(t, record.Line{No: 5, Tag: "E", Rest: "0;1;2.5"}, got[1])
	assert.Equal(t, "X", got[2].Tag)
}

func TestScan_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := record.Scan(strings.NewReader("A;1\nB;2\n"), func(record.Line) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestLine_FieldsKeepsTail(t *testing.T) {
	l := record.Line{Tag: "N", Rest: "3;Gare; quai B"}
	f, err := l.Fields(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "Gare; quai B"}, f)

	_, err = record.Line{Tag: "E", Rest: "1;2"}.Fields(3)
	assert.Error(t, err)
}

func TestNumbers(t *testing.T) {
	n, err := record.Int(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = record.Int("4x")
	assert.Error(t, err)

	f, err := record.Float("6.2")
	require.NoError(t, err)
	assert.Equal(t, 6.2, f)
	assert.Equal(t, "6.2", record.FormatFloat(f))
	assert.Equal(t, "0.1", record.FormatFloat(0.1))
	assert.Equal(t, "E;0;2;6.2", record.Join("E", "0", "2", record.FormatFloat(6.2)))
}
