//go:build unit

package venue_test

import (
	"testing"

	"raga-booking/internal/domain/venue"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name", input: "Arena Sinar Utama", want: "arena-sinar-utama"},
		{name: "already a slug", input: "arena-sinar-utama", want: "arena-sinar-utama"},
		{name: "punctuation collapses", input: "Joe's Futsal & Grill!", want: "joe-s-futsal-grill"},
		{name: "digits kept", input: "Studio 54", want: "studio-54"},
		{name: "leading and trailing junk", input: "  --Hello World--  ", want: "hello-world"},
		{name: "consecutive separators", input: "a   b///c", want: "a-b-c"},
		{name: "empty", input: "", want: ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, venue.Slugify(c.input))
		})
	}
}

func TestGenerateSlug(t *testing.T) {
	t.Run("no collision uses the base", func(t *testing.T) {
		got := venue.GenerateSlug("Arena Sinar Utama", map[string]bool{}, "")
		assert.Equal(t, "arena-sinar-utama", got)
	})

	t.Run("first collision gets -2", func(t *testing.T) {
		taken := map[string]bool{"arena-sinar-utama": true}
		got := venue.GenerateSlug("Arena Sinar Utama", taken, "")
		assert.Equal(t, "arena-sinar-utama-2", got)
	})

	t.Run("counter keeps climbing", func(t *testing.T) {
		taken := map[string]bool{
			"arena-sinar-utama":   true,
			"arena-sinar-utama-2": true,
			"arena-sinar-utama-3": true,
		}
		got := venue.GenerateSlug("Arena Sinar Utama", taken, "")
		assert.Equal(t, "arena-sinar-utama-4", got)
	})

	t.Run("update with unchanged name keeps its slug", func(t *testing.T) {
		taken := map[string]bool{"arena-sinar-utama": true}
		got := venue.GenerateSlug("Arena Sinar Utama", taken, "arena-sinar-utama")
		assert.Equal(t, "arena-sinar-utama", got)
	})

	t.Run("update colliding with another venue bumps", func(t *testing.T) {
		taken := map[string]bool{"arena-sinar-utama": true}
		got := venue.GenerateSlug("Arena Sinar Utama", taken, "old-arena")
		assert.Equal(t, "arena-sinar-utama-2", got)
	})
}
