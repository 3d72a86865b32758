package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flag (--karatsuba-parallel-threshold)
//   2. Environment variable (MPL_KARATSUBA_PARALLEL_THRESHOLD)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveThresholds fills in KaratsubaParallelThreshold from a
// hardware-based estimate when it's left at its zero default, preserving
// any user-specified override from a flag or environment variable.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaParallelThreshold == 0 {
		cfg.KaratsubaParallelThreshold = EstimateOptimalKaratsubaParallelThreshold()
	}
	return cfg
}

// EstimateOptimalKaratsubaParallelThreshold picks a bit-length threshold
// above which bigint.MulParallel's split-and-fan-out is worth the extra
// goroutine and scratch arena, scaled down as more cores are available to
// absorb that overhead.
func EstimateOptimalKaratsubaParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1 << 30 // effectively disabled: nothing to parallelize onto
	case numCPU <= 2:
		return 1 << 17
	case numCPU <= 4:
		return 1 << 16
	case numCPU <= 8:
		return 1 << 15
	default:
		return 1 << 14
	}
}
