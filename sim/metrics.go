// Formats the per-algorithm results of a run for the console.

package sim

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const ruler = "--------------------------------------------------"

// displayNames maps registry names to report headers.
var displayNames = map[string]string{
	"fcfs":   "FCFS",
	"scan":   "SCAN",
	"c-scan": "C-SCAN",
}

// DisplayName returns the report header for an algorithm name.
func DisplayName(name string) string {
	if d, ok := displayNames[name]; ok {
		return d
	}
	return strings.ToUpper(name)
}

// Metrics aggregates the results of one run for final reporting.
type Metrics struct {
	Head          HeadState
	TotalRequests int
	Results       []ServiceResult
}

// Print writes the run banner followed by one block per algorithm,
// in the order the results were produced.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintf(w, "\n%s", ruler)
	fmt.Fprintf(w, "\nTotal Requests => %d\n", m.TotalRequests)
	fmt.Fprintf(w, "Initial Head Position => %d\n", m.Head.Position)
	fmt.Fprintf(w, "Initial Head Direction => %s\n", m.Head.Direction)
	fmt.Fprintf(w, "%s\n", ruler)
	for _, r := range m.Results {
		printResult(w, r)
	}
}

func printResult(w io.Writer, r ServiceResult) {
	name := DisplayName(r.Algorithm)
	fmt.Fprintf(w, "%s DISK SCHEDULING ALGORITHM: \n\n", name)
	fmt.Fprintf(w, "%s\n", FormatOrder(r.Order))
	fmt.Fprintf(w, "\n%s - Total Head Movements = %d\n", name, r.TotalMovement)
	fmt.Fprintf(w, "%s\n", ruler)
}

// PrintSummary writes a comparison table of all algorithms.
// Writes nothing when there are no results.
func (m *Metrics) PrintSummary(w io.Writer) {
	if len(m.Results) == 0 {
		return
	}
	rows := make([][]string, 0, len(m.Results))
	for _, r := range m.Results {
		avg := 0.0
		if len(r.Order) > 0 {
			avg = float64(r.TotalMovement) / float64(len(r.Order))
		}
		rows = append(rows, []string{
			DisplayName(r.Algorithm),
			strconv.Itoa(r.TotalMovement),
			fmt.Sprintf("%.2f", avg),
			strconv.Itoa(len(r.Reversals)),
			strconv.Itoa(len(r.Wraps)),
		})
	}
	fmt.Fprintln(w, "=== Head Movement Summary ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Total Movement", "Avg Seek", "Reversals", "Wraps"})
	table.AppendBulk(rows)
	table.Render()
}
