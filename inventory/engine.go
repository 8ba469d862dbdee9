package inventory

import (
	"context"
	"fmt"

	aws "github.com/cloudtally/cloudtally/providers/aws"
	"github.com/cloudtally/cloudtally/telemetry"
)

// RegionStatus is one region's position in the scan lifecycle.
type RegionStatus string

const (
	RegionPending    RegionStatus = "pending"
	RegionInProgress RegionStatus = "in-progress"
	RegionDone       RegionStatus = "done"
	RegionFailed     RegionStatus = "failed"
)

// Engine drives the full matrix of regions and collectors for one
// account and merges every result into the common record shape.
// Regions and collectors run strictly sequentially, trading wall-clock
// time for predictable request rates against per-service limits.
type Engine struct {
	connector  *aws.Connector
	collectors []aws.Collector
	sink       telemetry.Sink
	silent     bool
}

// NewEngine builds an engine over the full collector registry.
func NewEngine(connector *aws.Connector, sink telemetry.Sink, silent bool) *Engine {
	if sink == nil || silent {
		sink = telemetry.Discard{}
	}
	return &Engine{
		connector:  connector,
		collectors: aws.Registry(),
		sink:       sink,
		silent:     silent,
	}
}

// NewEngineWithCollectors builds an engine over an explicit collector
// set, forwarding the connector to every Collect call. Used for the
// per-service export path and for exercising the consolidation flow
// with test doubles, where connector may be nil.
func NewEngineWithCollectors(connector *aws.Connector, collectors []aws.Collector, sink telemetry.Sink) *Engine {
	if sink == nil {
		sink = telemetry.Discard{}
	}
	return &Engine{connector: connector, collectors: collectors, sink: sink}
}

// runState tracks one run's progress. Constructed fresh per Run call
// so concurrent runs in tests never share flags.
type runState struct {
	globalDone map[string]bool
	regions    map[string]RegionStatus
	hadErrors  bool
}

func newRunState(regions []string) *runState {
	state := &runState{
		globalDone: make(map[string]bool),
		regions:    make(map[string]RegionStatus, len(regions)),
	}
	for _, r := range regions {
		state.regions[r] = RegionPending
	}
	return state
}

// Result is the outcome of one consolidation run. HadErrors means at
// least one collector failed and the report may be incomplete; the run
// still completes and the records are still written.
type Result struct {
	Records      []Record
	RegionStatus map[string]RegionStatus
	HadErrors    bool
}

// CountByType returns how many records each resource type produced.
func (r *Result) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, rec := range r.Records {
		counts[rec.Type]++
	}
	return counts
}

// Run scans every region in order. A failing collector is logged,
// flips the error flag and contributes zero records; a failing region
// does not stop the regions after it. Global collectors fire exactly
// once per run no matter how many regions are scanned, entering
// through the first region processed.
func (e *Engine) Run(ctx context.Context, regions []string) *Result {
	state := newRunState(regions)

	var records []Record
	for _, region := range regions {
		state.regions[region] = RegionInProgress

		regionRecords, ok := e.scanRegion(ctx, region, state)
		records = append(records, regionRecords...)

		if ok {
			state.regions[region] = RegionDone
		} else {
			state.regions[region] = RegionFailed
		}
	}

	return &Result{
		Records:      records,
		RegionStatus: state.regions,
		HadErrors:    state.hadErrors,
	}
}

// scanRegion runs every collector due in one region: all regional
// collectors, plus any global collector that has not fired yet this
// run. Log lines are buffered for the whole region and flushed
// afterwards so they never tear a progress indicator. Returns false
// when every collector in the region failed.
func (e *Engine) scanRegion(ctx context.Context, region string, state *runState) ([]Record, bool) {
	buffer := telemetry.NewBuffer()
	defer buffer.FlushTo(e.sink)

	var records []Record
	attempted, succeeded := 0, 0

	for _, collector := range e.collectors {
		if collector.Global() {
			if state.globalDone[collector.Name()] {
				continue
			}
			state.globalDone[collector.Name()] = true
		}
		attempted++

		resources, err := collector.Collect(ctx, e.connector, region)
		if err != nil {
			state.hadErrors = true
			buffer.Error(fmt.Sprintf("%s failed in %s: %v", collector.Name(), region, err))
			continue
		}
		succeeded++

		if len(resources) > 0 {
			buffer.Log(fmt.Sprintf("%s: %d %s resources in %s",
				collector.Name(), len(resources), collector.ResourceType(), region))
		}
		records = append(records, NormalizeAll(resources)...)
	}

	return records, attempted == 0 || succeeded > 0
}
