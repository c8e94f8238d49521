package gifcodec

// NormalizeDelay returns the output delay derived from a source delay in
// hundredths of a second. Zero becomes 100, values below 30 are multiplied
// by ten and anything else is kept.
func NormalizeDelay(delay int) int {
	switch {
	case delay <= 0:
		return 100
	case delay < 30:
		return delay * 10
	default:
		return delay
	}
}
