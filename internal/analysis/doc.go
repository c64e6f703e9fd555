// Package analysis post-processes headless runs.
//
//   - [PowerSpectrum]: magnitude spectrum of a sampled series
//   - [DominantPeriod]: strongest oscillation period, in ticks
//   - [OrbitToASCII]: character plot of a rocket path around the planet
//
// The orbital period of a bound rocket shows up as the dominant period of
// its distance series:
//
//	period, ok := analysis.DominantPeriod(result.Distances)
package analysis
