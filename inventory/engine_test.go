package inventory

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aws "github.com/cloudtally/cloudtally/providers/aws"
	"github.com/cloudtally/cloudtally/telemetry"
	"github.com/cloudtally/cloudtally/types"
)

// fakeCollector counts invocations and returns canned results.
type fakeCollector struct {
	name      string
	resType   string
	isGlobal  bool
	calls     int
	resources []types.Resource
	err       error
}

func (f *fakeCollector) Name() string         { return f.name }
func (f *fakeCollector) ResourceType() string { return f.resType }
func (f *fakeCollector) Global() bool         { return f.isGlobal }
func (f *fakeCollector) Collect(_ context.Context, _ *aws.Connector, region string) ([]types.Resource, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]types.Resource, len(f.resources))
	copy(out, f.resources)
	for i := range out {
		if out[i].Region == "" {
			out[i].Region = region
		}
	}
	return out, f.err
}

func testEngine(collectors ...aws.Collector) *Engine {
	return &Engine{
		collectors: collectors,
		sink:       telemetry.Discard{},
	}
}

// connectorCapture records the connector each Collect call receives.
type connectorCapture struct {
	seen []*aws.Connector
}

func (c *connectorCapture) Name() string         { return "ec2" }
func (c *connectorCapture) ResourceType() string { return types.TypeEC2Instance }
func (c *connectorCapture) Global() bool         { return false }
func (c *connectorCapture) Collect(_ context.Context, conn *aws.Connector, _ string) ([]types.Resource, error) {
	c.seen = append(c.seen, conn)
	return nil, nil
}

func TestNewEngineWithCollectorsForwardsConnector(t *testing.T) {
	connector := aws.NewConnector(awssdk.Config{Region: "us-east-1"})
	capture := &connectorCapture{}

	engine := NewEngineWithCollectors(connector, []aws.Collector{capture}, telemetry.Discard{})
	engine.Run(context.Background(), []string{"us-east-1"})

	require.Len(t, capture.seen, 1)
	assert.Same(t, connector, capture.seen[0], "export path hands its connector to the collector")
}

func TestRunGlobalCollectorsFireOnce(t *testing.T) {
	regionalFake := &fakeCollector{name: "ec2", resType: types.TypeEC2Instance}
	globalFake := &fakeCollector{name: "s3", resType: types.TypeS3Bucket, isGlobal: true}

	engine := testEngine(regionalFake, globalFake)
	regions := []string{"us-east-1", "eu-west-1", "ap-southeast-2"}

	result := engine.Run(context.Background(), regions)

	assert.Equal(t, len(regions), regionalFake.calls, "regional collector runs per region")
	assert.Equal(t, 1, globalFake.calls, "global collector runs once per run")
	assert.False(t, result.HadErrors)
}

func TestRunGlobalGateIsPerRun(t *testing.T) {
	globalFake := &fakeCollector{name: "s3", resType: types.TypeS3Bucket, isGlobal: true}
	engine := testEngine(globalFake)

	engine.Run(context.Background(), []string{"us-east-1"})
	engine.Run(context.Background(), []string{"us-east-1"})

	assert.Equal(t, 2, globalFake.calls, "each run gets its own gate state")
}

func TestRunCollectorFailureIsIsolated(t *testing.T) {
	working := &fakeCollector{
		name:    "ec2",
		resType: types.TypeEC2Instance,
		resources: []types.Resource{
			{ID: "i-1", Type: types.TypeEC2Instance},
		},
	}
	broken := &fakeCollector{
		name:    "rds",
		resType: types.TypeRDSInstance,
		err:     errors.New("AccessDenied"),
	}
	alsoWorking := &fakeCollector{
		name:    "lambda",
		resType: types.TypeLambdaFunction,
		resources: []types.Resource{
			{ID: "fn-1", Type: types.TypeLambdaFunction},
		},
	}

	engine := testEngine(working, broken, alsoWorking)
	result := engine.Run(context.Background(), []string{"us-east-1"})

	assert.True(t, result.HadErrors)
	require.Len(t, result.Records, 2, "failing collector yields zero records, others keep theirs")
	assert.Equal(t, types.TypeEC2Instance, result.Records[0].Type)
	assert.Equal(t, types.TypeLambdaFunction, result.Records[1].Type)
	assert.Equal(t, RegionDone, result.RegionStatus["us-east-1"])
}

func TestRunRegionFailureDoesNotStopLaterRegions(t *testing.T) {
	broken := &fakeCollector{name: "ec2", resType: types.TypeEC2Instance, err: errors.New("unreachable")}

	engine := testEngine(broken)
	result := engine.Run(context.Background(), []string{"us-east-1", "eu-west-1"})

	assert.Equal(t, 2, broken.calls, "second region still scanned")
	assert.True(t, result.HadErrors)
	assert.Equal(t, RegionFailed, result.RegionStatus["us-east-1"])
	assert.Equal(t, RegionFailed, result.RegionStatus["eu-west-1"])
	assert.Empty(t, result.Records)
}

func TestRunBuffersLogsUntilRegionCompletes(t *testing.T) {
	sink := &recordingSink{}
	collector := &fakeCollector{
		name:    "ec2",
		resType: types.TypeEC2Instance,
		resources: []types.Resource{
			{ID: "i-1", Type: types.TypeEC2Instance},
		},
	}

	engine := &Engine{collectors: []aws.Collector{collector}, sink: sink}
	engine.Run(context.Background(), []string{"us-east-1"})

	require.Len(t, sink.logged, 1)
	assert.Contains(t, sink.logged[0], "ec2")
	assert.Contains(t, sink.logged[0], "us-east-1")
}

func TestRunCountByType(t *testing.T) {
	collector := &fakeCollector{
		name:    "ec2",
		resType: types.TypeEC2Instance,
		resources: []types.Resource{
			{ID: "i-1", Type: types.TypeEC2Instance},
			{ID: "i-2", Type: types.TypeEC2Instance},
		},
	}

	engine := testEngine(collector)
	result := engine.Run(context.Background(), []string{"us-east-1", "eu-west-1"})

	counts := result.CountByType()
	assert.Equal(t, 4, counts[types.TypeEC2Instance])
}

// recordingSink mirrors the telemetry test double locally so the
// buffered flush contract is checked from the engine's side too.
type recordingSink struct {
	logged []string
	errors []string
}

func (r *recordingSink) Log(line string)   { r.logged = append(r.logged, line) }
func (r *recordingSink) Error(line string) { r.errors = append(r.errors, line) }
