package game

// accrualThresholdMinutes suppresses resource accrual for near-zero
// elapsed intervals. Queue and policy sweeps run regardless.
const accrualThresholdMinutes = 0.1

// Tick runs one simulation step at the clock's current time: commit
// due queue entries, expire policies, recompute modifiers, accrue
// elapsed production, then reproject mission progress. Elapsed time is
// always a real timestamp delta; callers wanting acceleration shorten
// the interval between ticks instead.
func (e *Engine) Tick() {
	now := e.clock.Now()

	e.sweepConstruction(now)
	e.sweepResearch(now)
	e.sweepTraining(now)
	e.sweepPolicies(now)

	elapsed := now.Sub(e.state.LastTick).Minutes()
	if elapsed >= accrualThresholdMinutes {
		rates := e.EffectiveRates()
		efficiency := e.EffectiveIndices().EfficiencyMultiplier()
		gain := rates.Scale(elapsed * efficiency)

		e.state.Resources = e.state.Resources.Add(gain).ClampZero()
		e.state.Produced = e.state.Produced.Add(gain.ClampZero())
		e.state.LastTick = now
	}

	e.recomputeMissions(now)
}
