// Package economy holds the credit pricing rules. Amounts are flat
// integers; there is no real billing behind them.
package economy

const (
	// GenerationCost is charged per generated image.
	GenerationCost = 1

	// WelcomeCredits is granted once on login.
	WelcomeCredits = 50

	// DailyReward is granted by the once-per-day claim.
	DailyReward = 10

	// AdReward is granted per simulated ad view.
	AdReward = 5
)

// BatchCost prices a batch of n generations.
func BatchCost(n int) int {
	if n < 0 {
		return 0
	}
	return n * GenerationCost
}
