// ABOUTME: Image carousel index arithmetic for the preview view
// ABOUTME: Pure so wraparound behavior is testable without a terminal
package tui

// carouselNext advances an image index, wrapping from the last image to
// the first. With zero or one image the index stays at 0.
func carouselNext(current, count int) int {
	if count <= 1 {
		return 0
	}
	return (current + 1) % count
}

// carouselPrev retreats an image index, wrapping from the first image to
// the last.
func carouselPrev(current, count int) int {
	if count <= 1 {
		return 0
	}
	return (current - 1 + count) % count
}

// clampCarousel keeps a remembered index valid after images are removed.
func clampCarousel(current, count int) int {
	if count == 0 {
		return 0
	}
	if current >= count {
		return count - 1
	}
	if current < 0 {
		return 0
	}
	return current
}
