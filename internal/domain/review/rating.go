package review

// Provider star-rating labels as returned by the review listing endpoint.
var starLabels = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

// NormalizeStarRating maps a provider star label to its integer value.
// Unrecognized or missing labels yield 0.
func NormalizeStarRating(label string) int {
	return starLabels[label]
}
