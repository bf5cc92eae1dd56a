package commands

import (
	"bytes"
	"testing"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outputSample struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func sampleView() *tableView {
	view := newTableView("ID", "Name")
	view.add("1", "Football")

	return view
}

func TestRenderOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		query    string
		contains []string
		wantErr  error
	}{
		{name: "json", output: "json", contains: []string{`"id": 1`, `"name": "Football"`}},
		{name: "yaml", output: "yaml", contains: []string{"id: 1", "name: Football"}},
		{name: "table", output: "table", contains: []string{"ID", "Football"}},
		{name: "default is table", output: "", contains: []string{"Football"}},
		{name: "query", output: "json", query: ".name", contains: []string{`"Football"`}},
		{name: "query needs json", output: "yaml", query: ".name", wantErr: constants.ErrQueryRequiresJSON},
		{name: "unknown format", output: "xml", wantErr: constants.ErrUnsupportedOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			viper.Set("output", tt.output)
			viper.Set("query", tt.query)

			var buf bytes.Buffer

			err := renderOutput(&buf, outputSample{ID: 1, Name: "Football"}, sampleView())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderOutput_InvalidQuery(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output", "json")
	viper.Set("query", ".[")

	err := renderOutput(&bytes.Buffer{}, outputSample{}, sampleView())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query expression")
}

func TestRenderOutput_QueryRuntimeError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("output", "json")
	viper.Set("query", ".name | error")

	err := renderOutput(&bytes.Buffer{}, outputSample{Name: "boom"}, sampleView())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query failed")
}

func TestIsTable(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.True(t, isTable())

	viper.Set("output", "json")
	assert.False(t, isTable())

	viper.Set("output", "table")
	viper.Set("query", ".id")
	assert.False(t, isTable())
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, orNA(""))
	assert.Equal(t, "x", orNA("x"))
	assert.Equal(t, "yes", formatBool(true))
	assert.Equal(t, "no", formatBool(false))
	assert.Equal(t, "1,2,3", joinInts([]int{1, 2, 3}))
	assert.Equal(t, constants.NotAvailable, joinInts(nil))
}
