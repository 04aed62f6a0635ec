package congestion

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	log "github.com/sirupsen/logrus"
)

// HostLoadSampler maps the host's current CPU utilization into the
// multiplier range: an idle host yields MinMultiplier, a saturated one
// MaxMultiplier. This is a demo-oriented alternative to UniformSampler;
// unlike it, consecutive draws are correlated through the host's load.
type HostLoadSampler struct{}

// NewHostLoadSampler returns a sampler backed by host CPU metrics.
func NewHostLoadSampler() *HostLoadSampler {
	return &HostLoadSampler{}
}

// Sample reads instantaneous CPU utilization and maps it linearly into
// [MinMultiplier, MaxMultiplier]. If CPU metrics are unavailable it falls
// back to the 1-minute load average, and failing that to a neutral 1.0.
func (s *HostLoadSampler) Sample() float64 {
	percents, err := cpu.Percent(0, false)
	if err == nil && len(percents) > 0 {
		return clampMultiplier(MinMultiplier + (percents[0]/100.0)*(MaxMultiplier-MinMultiplier))
	}
	log.Warnf("cpu utilization unavailable, falling back to load average: %v", err)

	avg, err := load.Avg()
	if err != nil {
		log.Warnf("load average unavailable, using neutral multiplier: %v", err)
		return 1.0
	}
	cores := float64(countCores())
	return clampMultiplier(MinMultiplier + (avg.Load1/cores)*(MaxMultiplier-MinMultiplier))
}

func countCores() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func clampMultiplier(m float64) float64 {
	if m < MinMultiplier {
		return MinMultiplier
	}
	if m > MaxMultiplier {
		return MaxMultiplier
	}
	return m
}
