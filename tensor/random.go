package tensor

// Sampler is the opaque sampling capability: one draw per call from some
// probability distribution. Seeding, and the catalog of distributions, are
// the sampler constructor's concern (see the dist package).
type Sampler interface {
	Sample() float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() float64

func (f SamplerFunc) Sample() float64 { return f() }

// RandomSample builds a float64 tensor whose leaves are successive draws
// from s. The build is always eager so draw order is fixed: depth-first,
// outer-to-inner, the first index's coordinate-0 subtree fully sampled
// before coordinate 1 begins. With a seeded sampler this makes repeated
// builds of the same shape reproducible.
func RandomSample(names string, sizes []int, v Variance, s Sampler) Tensor[float64] {
	return generate(names, sizes, v, func([]int) float64 {
		samplesDrawn.Inc()
		return s.Sample()
	}, false, "random")
}
