package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	logged []string
	errors []string
}

func (r *recordingSink) Log(line string)   { r.logged = append(r.logged, line) }
func (r *recordingSink) Error(line string) { r.errors = append(r.errors, line) }

func TestBufferPreservesOrder(t *testing.T) {
	buf := NewBuffer()
	buf.Log("first")
	buf.Error("second")
	buf.Log("third")

	assert.Equal(t, 3, buf.Len())

	sink := &recordingSink{}
	buf.FlushTo(sink)

	assert.Equal(t, []string{"first", "third"}, sink.logged)
	assert.Equal(t, []string{"second"}, sink.errors)
	assert.Equal(t, 0, buf.Len())
}

func TestBufferFlushTwice(t *testing.T) {
	buf := NewBuffer()
	buf.Log("once")

	sink := &recordingSink{}
	buf.FlushTo(sink)
	buf.FlushTo(sink)

	assert.Equal(t, []string{"once"}, sink.logged)
}

func TestDiscardAcceptsLines(t *testing.T) {
	var d Discard
	d.Log("ignored")
	d.Error("ignored")
}
