// Package trajectory holds fixed-grid samples of a solution curve.
package trajectory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/dynsys/internal/system"
)

// Trajectory is an ordered sequence of state vectors sampled on a time
// grid. Row i is the state at Times[i]. It keeps no reference back to the
// container it was derived from.
type Trajectory struct {
	Times  []float64
	States []system.State
}

// New wraps the given grid and samples. Both slices are taken over, not
// copied.
func New(times []float64, states []system.State) *Trajectory {
	return &Trajectory{Times: times, States: states}
}

// Len is the number of rows.
func (tr *Trajectory) Len() int { return len(tr.States) }

// Dim is the state dimension, 0 for an empty trajectory.
func (tr *Trajectory) Dim() int {
	if len(tr.States) == 0 {
		return 0
	}
	return len(tr.States[0])
}

// At returns row i.
func (tr *Trajectory) At(i int) (float64, system.State) {
	return tr.Times[i], tr.States[i]
}

// Last returns the final row.
func (tr *Trajectory) Last() (float64, system.State) {
	return tr.At(tr.Len() - 1)
}

// Component extracts column j as a series, one value per row.
func (tr *Trajectory) Component(j int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[j]
	}
	return out
}

// WriteCSV writes rows as t,x0,x1,... with a header line.
func (tr *Trajectory) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 1+tr.Dim())
	header[0] = "t"
	for j := 0; j < tr.Dim(); j++ {
		header[j+1] = fmt.Sprintf("x%d", j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, s := range tr.States {
		row[0] = strconv.FormatFloat(tr.Times[i], 'g', -1, 64)
		for j, v := range s {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonTrajectory struct {
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// EncodeJSON writes the trajectory as an indented JSON document.
func (tr *Trajectory) EncodeJSON(w io.Writer) error {
	data := jsonTrajectory{
		Times:  tr.Times,
		States: make([][]float64, len(tr.States)),
	}
	for i, s := range tr.States {
		data.States[i] = s
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes the JSON document to path.
func (tr *Trajectory) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tr.EncodeJSON(f)
}
