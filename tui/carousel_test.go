// ABOUTME: Tests for image carousel index arithmetic
package tui

import "testing"

func TestCarouselWrapsForward(t *testing.T) {
	if got := carouselNext(2, 3); got != 0 {
		t.Errorf("carouselNext(2, 3) = %d, want 0", got)
	}
	if got := carouselNext(0, 3); got != 1 {
		t.Errorf("carouselNext(0, 3) = %d, want 1", got)
	}
}

func TestCarouselWrapsBackward(t *testing.T) {
	if got := carouselPrev(0, 3); got != 2 {
		t.Errorf("carouselPrev(0, 3) = %d, want 2", got)
	}
	if got := carouselPrev(2, 3); got != 1 {
		t.Errorf("carouselPrev(2, 3) = %d, want 1", got)
	}
}

func TestCarouselSingleImageStaysPut(t *testing.T) {
	for _, count := range []int{0, 1} {
		if got := carouselNext(0, count); got != 0 {
			t.Errorf("carouselNext(0, %d) = %d, want 0", count, got)
		}
		if got := carouselPrev(0, count); got != 0 {
			t.Errorf("carouselPrev(0, %d) = %d, want 0", count, got)
		}
	}
}

func TestCarouselFullCycleReturnsToStart(t *testing.T) {
	const count = 5
	pos := 0
	for i := 0; i < count; i++ {
		pos = carouselNext(pos, count)
	}
	if pos != 0 {
		t.Errorf("after %d steps pos = %d, want 0", count, pos)
	}
}

func TestClampCarouselAfterRemoval(t *testing.T) {
	cases := []struct {
		current, count, want int
	}{
		{4, 3, 2},
		{2, 3, 2},
		{0, 0, 0},
		{-1, 3, 0},
	}
	for _, c := range cases {
		if got := clampCarousel(c.current, c.count); got != c.want {
			t.Errorf("clampCarousel(%d, %d) = %d, want %d", c.current, c.count, got, c.want)
		}
	}
}
