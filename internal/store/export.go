package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// EvalData is one evaluated density curve with the settings that
// produced it.
type EvalData struct {
	Model   string             `json:"model"`
	Backend string             `json:"backend"`
	Params  map[string]float64 `json:"params"`
	Axis    string             `json:"axis"`
	Samples []float64          `json:"samples"`
	Density []float64          `json:"density"`
}

func ExportJSON(path string, data *EvalData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSONTo(file, data)
}

func ExportJSONStdout(data *EvalData) error {
	return ExportJSONTo(os.Stdout, data)
}

func ExportJSONTo(w io.Writer, data *EvalData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportCSV(path string, data *EvalData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{data.Axis, "density"}); err != nil {
		return err
	}
	for i, s := range data.Samples {
		row := []string{
			strconv.FormatFloat(s, 'g', -1, 64),
			strconv.FormatFloat(data.Density[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
