package vam

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// BuildStatsString returns a JSON document describing the run: each process with its 1-based
// block number (0 when not allocated) and the run's statistics. When detailedMap is true, the
// document also lists every block with its remaining capacity and residents.
func BuildStatsString(run *Run, detailedMap bool) string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	run.printParameters(&obj)

	if detailedMap {
		mapObj := obj.Name("DetailedMap").Object()
		run.table.BlockJsonData(mapObj)
		mapObj.End()
	}
	obj.End()

	return string(writer.Bytes())
}

// BuildComparisonString returns a JSON array with one object per summary
func BuildComparisonString(summaries []ComparisonSummary) string {
	writer := jwriter.NewWriter()

	s := writer.Array()
	for _, summary := range summaries {
		o := s.Object()
		o.Name("Algorithm").String(summary.Name())
		o.Name("Allocated").Int(summary.Allocated)
		o.Name("NotAllocated").Int(summary.NotAllocated)
		o.End()
	}
	s.End()

	return string(writer.Bytes())
}
