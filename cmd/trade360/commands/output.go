package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/itchyny/gojq"
	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// tableView is the table form of a command result.
type tableView struct {
	headers []any
	rows    [][]string
}

func newTableView(headers ...any) *tableView {
	return &tableView{headers: headers}
}

func (v *tableView) add(cells ...string) {
	v.rows = append(v.rows, cells)
}

// renderOutput writes data in the configured output format. The table form
// comes from view; json and yaml encode data directly.
func renderOutput(w io.Writer, data any, view *tableView) error {
	format := strings.ToLower(viper.GetString("output"))
	query := viper.GetString("query")

	if query != "" && format != constants.FormatJSON {
		return constants.ErrQueryRequiresJSON
	}

	switch format {
	case constants.FormatJSON:
		if query != "" {
			return renderQuery(w, data, query)
		}

		return writeJSON(w, data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		return renderTable(w, view)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, format)
	}
}

func renderTable(w io.Writer, view *tableView) error {
	if view == nil {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(view.headers...)

	for _, row := range view.rows {
		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// isTable reports whether the result will be printed as a table.
func isTable() bool {
	format := strings.ToLower(viper.GetString("output"))

	return (format == constants.FormatTable || format == "") && viper.GetString("query") == ""
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

// renderQuery runs a jq expression over the JSON form of data and writes
// each result.
func renderQuery(w io.Writer, data any, expression string) error {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return fmt.Errorf("invalid query expression: %w", err)
	}

	generic, err := toGeneric(data)
	if err != nil {
		return err
	}

	iter := parsed.Run(generic)

	for {
		value, ok := iter.Next()
		if !ok {
			return nil
		}

		if err, isErr := value.(error); isErr {
			return fmt.Errorf("query failed: %w", err)
		}

		if err := writeJSON(w, value); err != nil {
			return err
		}
	}
}

// toGeneric converts typed data to the map/slice form gojq works on.
func toGeneric(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	return generic, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(constants.DateTimeFormat)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func orNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
