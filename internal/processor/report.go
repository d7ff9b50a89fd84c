package processor

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is the outcome of one screen or group.
type Result struct {
	Device   string
	Language string
	Name     string
	Status   Status
	Bytes    int64
	Detail   string
}

// Report collects the results of a run.
type Report struct {
	RunID   string
	Results []Result
}

func (r *Report) add(res Result) { r.Results = append(r.Results, res) }

// Count returns the number of results with status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Table renders the results as a rounded table.
func (r Report) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Device", "Language", "Image", "Status", "Size", "Detail"})
	for _, res := range r.Results {
		size := ""
		if res.Bytes > 0 {
			size = humanize.Bytes(uint64(res.Bytes))
		}
		tw.AppendRow(table.Row{res.Device, res.Language, res.Name, string(res.Status), size, res.Detail})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
