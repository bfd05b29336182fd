// Package dist is the sampling capability consumed by the random tensor
// builders: a small catalog of named probability distributions backed by
// gonum/stat/distuv. The tensor core never inspects a distribution; it
// only draws from the Sampler the distribution hands out.
//
// Unseeded samplers draw from the process-wide entropy-seeded generator
// and are not reproducible across runs. Seeded samplers derive a private
// PCG state from the seed, so identical (distribution, seed) pairs
// produce identical draw sequences.
package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/23skdu/longbow-loom/tensor"
)

// Distribution describes a named probability distribution and hands out
// samplers bound to it.
type Distribution interface {
	// Sampler returns a sampler drawing with fresh system entropy.
	Sampler() tensor.Sampler
	// SamplerSeeded returns a reproducible sampler for the given seed.
	SamplerSeeded(seed uint64) tensor.Sampler
}

// rander is the draw surface shared by all distuv distributions.
type rander interface {
	Rand() float64
}

type distribution struct {
	bind func(src rand.Source) rander
}

func (d distribution) Sampler() tensor.Sampler {
	// A nil source leaves distuv on the global generator, which Go seeds
	// from system entropy at startup.
	r := d.bind(nil)
	return tensor.SamplerFunc(r.Rand)
}

func (d distribution) SamplerSeeded(seed uint64) tensor.Sampler {
	r := d.bind(rand.NewPCG(seed, seed))
	return tensor.SamplerFunc(r.Rand)
}

// Normal is the normal distribution with mean mu and standard deviation
// sigma.
func Normal(mu, sigma float64) Distribution {
	return distribution{bind: func(src rand.Source) rander {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	}}
}

// Uniform is the continuous uniform distribution on [min, max).
func Uniform(min, max float64) Distribution {
	return distribution{bind: func(src rand.Source) rander {
		return distuv.Uniform{Min: min, Max: max, Src: src}
	}}
}

// Exponential is the exponential distribution with the given rate.
func Exponential(rate float64) Distribution {
	return distribution{bind: func(src rand.Source) rander {
		return distuv.Exponential{Rate: rate, Src: src}
	}}
}

// Poisson is the Poisson distribution with mean lambda.
func Poisson(lambda float64) Distribution {
	return distribution{bind: func(src rand.Source) rander {
		return distuv.Poisson{Lambda: lambda, Src: src}
	}}
}

// Bernoulli is the Bernoulli distribution with success probability p.
func Bernoulli(p float64) Distribution {
	return distribution{bind: func(src rand.Source) rander {
		return distuv.Bernoulli{P: p, Src: src}
	}}
}
