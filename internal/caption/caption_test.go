package caption

import (
	"reflect"
	"testing"

	"artlink/internal/lexicon"
)

func TestParseGermanCaption(t *testing.T) {
	fields := Parse("Ring. Silber, Gold, 2018, H 2,1 cm", German, lexicon.Default())

	if fields.Title != "Ring" {
		t.Errorf("Title = %q, want %q", fields.Title, "Ring")
	}
	if fields.Year != "2018" {
		t.Errorf("Year = %q, want %q", fields.Year, "2018")
	}
	if fields.Dimensions != "H 2,1 cm" {
		t.Errorf("Dimensions = %q, want %q", fields.Dimensions, "H 2,1 cm")
	}
	want := []string{"silver", "gold"}
	if !reflect.DeepEqual(fields.Materials, want) {
		t.Errorf("Materials = %v, want %v", fields.Materials, want)
	}
}

func TestParseMultiPartDimensions(t *testing.T) {
	fields := Parse("Kanne und Becher. Silber, 2005, 36 × 6,8 × 9 cm/19 × 12,5 cm", German, lexicon.Default())

	if fields.Dimensions != "36 × 6,8 × 9 cm/19 × 12,5 cm" {
		t.Errorf("Dimensions = %q, want the full multi-part run", fields.Dimensions)
	}
	if fields.Title != "Kanne und Becher" {
		t.Errorf("Title = %q, want %q", fields.Title, "Kanne und Becher")
	}
}

func TestParseEmphasisSpanWinsTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"html em", "Necklace <em>Blaue Stunde</em>. Silver, 2019", "Blaue Stunde"},
		{"asterisk span", "*Morning Light*, brooch, gold, 2020", "Morning Light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Parse(tt.text, English, lexicon.Default())
			if fields.Title != tt.want {
				t.Errorf("Title = %q, want %q", fields.Title, tt.want)
			}
		})
	}
}

func TestParseTitleCommaYearSplit(t *testing.T) {
	fields := Parse("Große Kette, 2015, Gold", German, lexicon.Default())
	if fields.Title != "Große Kette" {
		t.Errorf("Title = %q, want %q", fields.Title, "Große Kette")
	}
	if fields.Year != "2015" {
		t.Errorf("Year = %q, want %q", fields.Year, "2015")
	}
}

func TestParseNoMarkersKeepsWholeCaption(t *testing.T) {
	fields := Parse("Ohne Titel, frühe Arbeit.", German, lexicon.Default())
	if fields.Title != "Ohne Titel, frühe Arbeit" {
		t.Errorf("Title = %q, want whole caption without trailing punctuation", fields.Title)
	}
	if fields.Year != "" || fields.Dimensions != "" || len(fields.Materials) != 0 {
		t.Errorf("expected no other fields, got %+v", fields)
	}
}

func TestParseEmptyCaption(t *testing.T) {
	fields := Parse("", English, lexicon.Default())
	if fields.Title != "" || fields.Year != "" || fields.Dimensions != "" || fields.Materials != nil {
		t.Errorf("expected zero fields for empty caption, got %+v", fields)
	}
}

func TestParseEnglishCaption(t *testing.T) {
	fields := Parse("Brooch. Ceramic, steel, 1998, 4 × 3 cm", English, lexicon.Default())

	if fields.Title != "Brooch" {
		t.Errorf("Title = %q, want %q", fields.Title, "Brooch")
	}
	if fields.Year != "1998" {
		t.Errorf("Year = %q, want %q", fields.Year, "1998")
	}
	if fields.Dimensions != "4 × 3 cm" {
		t.Errorf("Dimensions = %q, want %q", fields.Dimensions, "4 × 3 cm")
	}
	want := []string{"ceramic", "steel"}
	if !reflect.DeepEqual(fields.Materials, want) {
		t.Errorf("Materials = %v, want %v", fields.Materials, want)
	}
}

func TestMaterialsDeduplicated(t *testing.T) {
	fields := Parse("Ring. Silber, Silver, Gold, 2012", German, lexicon.Default())
	want := []string{"silver", "gold"}
	if !reflect.DeepEqual(fields.Materials, want) {
		t.Errorf("Materials = %v, want %v", fields.Materials, want)
	}
}
