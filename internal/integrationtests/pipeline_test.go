package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheler/klang-sub000/internal/app"
	"github.com/atheler/klang-sub000/internal/testutil"
	"github.com/atheler/klang-sub000/modules/bus"
)

// TestPipeline_OscGainOutput renders one tick of a three-block chain and
// checks the exact samples that arrive at the sink.
//
// At a sample rate of 8 Hz a 1 Hz square wave spends the first half of its
// cycle at +1 and the second half at -1. The gain stage halves it.
func TestPipeline_OscGainOutput(t *testing.T) {
	// Arrange
	patch := `
block "osc" "voice" {
  arguments {
    frequency = 1
    shape     = "square"
  }
}

block "gain" "vca" {
  arguments {
    gain = 0.5
  }
}

block "output" "main" {}

wire {
  from = "voice.out"
  to   = "vca.in"
}

wire {
  from = "vca.out"
  to   = "main.in"
}
`
	cfg := app.Config{SampleRate: 8, BufferSize: 8, Ticks: 1}

	// Act
	result := testutil.RunPatchTest(t, patch, cfg)

	// Assert
	require.NoError(t, result.Err)
	require.NotNil(t, result.Built)

	sink, ok := bus.FindOutput(result.Built.Blocks)
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, -0.5, -0.5, -0.5, -0.5, 0.5}, sink.Frame())
}

// TestPipeline_ExecutionOrderFollowsSignalFlow checks that a diamond patch
// runs sources before sinks regardless of declaration order.
func TestPipeline_ExecutionOrderFollowsSignalFlow(t *testing.T) {
	// Arrange
	patch := `
block "output" "main" {}

block "mix" "sum" {
  arguments {
    inputs = 2
  }
}

block "gain" "left" {}

block "gain" "right" {}

block "constant" "source" {
  arguments {
    value = 1
  }
}

wire {
  from = "source.out"
  to   = "left.in"
}

wire {
  from = "source.out"
  to   = "right.in"
}

wire {
  from = "left.out"
  to   = "sum.in1"
}

wire {
  from = "right.out"
  to   = "sum.in2"
}

wire {
  from = "sum.out"
  to   = "main.in"
}
`
	cfg := app.Config{SampleRate: 8, BufferSize: 4, Ticks: 1}

	// Act
	result := testutil.RunPatchTest(t, patch, cfg)

	// Assert
	require.NoError(t, result.Err)
	require.NotNil(t, result.Engine)

	names := make([]string, 0, len(result.Engine.Order()))
	for _, b := range result.Engine.Order() {
		names = append(names, b.Name())
	}
	// Declaration order assigns IDs; the schedule still puts the constant
	// first and the sink last.
	assert.Equal(t, []string{"source", "left", "right", "sum", "main"}, names)

	sink, ok := bus.FindOutput(result.Built.Blocks)
	require.True(t, ok)
	assert.Equal(t, []float64{2, 2, 2, 2}, sink.Frame())
}

// TestPipeline_FeedbackLoopRoundTrip wires a delay back into a mixer and
// checks that the loop breaks cleanly. The mixer reads the delay's previous
// tick and the delay line itself holds one more tick, so a copy of the wave
// comes back around every two ticks.
func TestPipeline_FeedbackLoopRoundTrip(t *testing.T) {
	// Arrange
	patch := `
block "osc" "voice" {
  arguments {
    frequency = 1
    shape     = "square"
  }
}

block "mix" "loop" {
  arguments {
    inputs = 2
  }
}

block "delay" "echo" {
  arguments {
    time     = 1
    feedback = 0
  }
}

block "output" "main" {}

wire {
  from = "voice.out"
  to   = "loop.in1"
}

wire {
  from = "echo.out"
  to   = "loop.in2"
}

wire {
  from = "loop.out"
  to   = "echo.in"
}

wire {
  from = "loop.out"
  to   = "main.in"
}
`
	// One tick covers exactly the delay line. By tick three the first copy
	// has made it around the loop once.
	cfg := app.Config{SampleRate: 4, BufferSize: 4, Ticks: 3}

	// Act
	result := testutil.RunPatchTest(t, patch, cfg)

	// Assert
	require.NoError(t, result.Err)

	names := make([]string, 0, len(result.Engine.Order()))
	for _, b := range result.Engine.Order() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"voice", "loop", "echo", "main"}, names)

	sink, ok := bus.FindOutput(result.Built.Blocks)
	require.True(t, ok)
	assert.Equal(t, []float64{2, -2, -2, 2}, sink.Frame())
}
