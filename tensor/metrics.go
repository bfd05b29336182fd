package tensor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tensorsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loom_tensors_built_total",
		Help: "Total number of tensors successfully built, by value source",
	}, []string{"source"})

	buildFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_tensor_build_failures_total",
		Help: "Total number of construction failures returned as Err tensors",
	})

	leavesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_tensor_leaves_total",
		Help: "Total number of scalar leaves generated",
	})

	samplesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loom_samples_drawn_total",
		Help: "Total number of draws taken from samplers during random builds",
	})
)
