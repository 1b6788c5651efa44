package textnorm

import (
	"reflect"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"umlaut a", "Bäcker", "baecker"},
		{"umlaut o", "Größe", "groesse"},
		{"umlaut u", "Müller", "mueller"},
		{"sharp s", "Straße", "strasse"},
		{"uppercase umlaut", "Übung", "uebung"},
		{"french accent", "Café", "cafe"},
		{"plain ascii", "Schmidt", "schmidt"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripFilenameNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"size suffix", "anke-hennig-1024x693.jpg", "anke-hennig"},
		{"id prefix", "20180412_brosche.jpg", "brosche"},
		{"extension only", "brosche.jpeg", "brosche"},
		{"no noise", "brosche-silber", "brosche-silber"},
		{"size without extension", "ring-300x300", "ring"},
		{"uppercase extension", "ring.JPG", "ring"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFilenameNoise(tt.input); got != tt.want {
				t.Errorf("StripFilenameNoise(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilenameTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "drops numeric and short tokens",
			input: "anke-hennig-brosche-2015.jpg",
			want:  []string{"anke", "hennig", "brosche"},
		},
		{
			name:  "size suffix stripped",
			input: "anke-hennig-brosche-2015-1024x693.jpg",
			want:  []string{"anke", "hennig", "brosche"},
		},
		{
			name:  "underscores and spaces split",
			input: "eva_maria ring.png",
			want:  []string{"eva", "maria", "ring"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilenameTokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilenameTokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Umlaut folding and size-suffix stripping must be independent of each other:
// the folded original and the pre-transliterated upload normalize identically.
func TestNormalizationRoundTrip(t *testing.T) {
	a := FilenameKey("Müller-Schmidt-1024x693.jpg")
	b := FilenameKey("mueller-schmidt.jpg")
	if a != b {
		t.Errorf("FilenameKey mismatch: %q vs %q", a, b)
	}
	if a == "" {
		t.Error("expected non-empty key")
	}
}

func TestFilenameKeySizeVariants(t *testing.T) {
	orig := FilenameKey("anke-hennig-brosche-2015.jpg")
	scaled := FilenameKey("anke-hennig-brosche-2015-1024x693.jpg")
	if orig != scaled {
		t.Errorf("size variant key mismatch: %q vs %q", orig, scaled)
	}
}

func TestYears(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"year token", "anke-hennig-brosche-2015.jpg", []string{"2015"}},
		{"nineties year", "kette-1998.jpg", []string{"1998"}},
		{"size suffix is not a year", "ring-2048x2048.jpg", nil},
		{"no year", "brosche-silber.jpg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Years(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Years(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
