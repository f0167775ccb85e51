package audio

import (
	"testing"

	"github.com/verte-zerg/numdrill/internal/model"
)

var testVoices = []model.Voice{
	{Name: "carmen", Lang: "es", Gender: "F"},
	{Name: "english", Lang: "en-gb", Gender: "M"},
	{Name: "english-us", Lang: "en-us", Gender: "M"},
	{Name: "serena", Lang: "en-gb", Gender: "F"},
}

func TestSelectVoicePreferenceOrder(t *testing.T) {
	cases := []struct {
		name string
		pref Preference
		want string
	}{
		{"exact name", Preference{Name: "Serena"}, "serena"},
		{"name pattern", Preference{Name: "glish"}, "english"},
		{"region and gender", Preference{Region: "en", Gender: "f"}, "serena"},
		{"region only", Preference{Region: "en"}, "english"},
		{"any available", Preference{Region: "fr"}, "carmen"},
	}
	for _, tc := range cases {
		got, ok := SelectVoice(testVoices, tc.pref)
		if !ok {
			t.Fatalf("%s: no voice selected", tc.name)
		}
		if got.Name != tc.want {
			t.Fatalf("%s: selected %q, want %q", tc.name, got.Name, tc.want)
		}
	}
}

func TestSelectVoiceEmptyList(t *testing.T) {
	if _, ok := SelectVoice(nil, DefaultPreference); ok {
		t.Fatalf("expected no selection from empty voice list")
	}
}

func TestParseEspeakVoices(t *testing.T) {
	output := `Pty Language Age/Gender VoiceName          File          Other Languages
 5  af             M  afrikaans            other/af
 5  en-gb          M  english              en/en
 2  en-gb          F  serena               en/serena
`
	voices := ParseEspeakVoices(output)
	if len(voices) != 3 {
		t.Fatalf("parsed %d voices, want 3", len(voices))
	}
	if voices[1].Name != "english" || voices[1].Lang != "en-gb" || voices[1].Gender != "M" {
		t.Fatalf("unexpected voice: %+v", voices[1])
	}
	if voices[2].Gender != "F" {
		t.Fatalf("unexpected gender: %+v", voices[2])
	}
}

func TestParseSayVoices(t *testing.T) {
	output := `Alex                en_US    # Most people recognize me by my voice.
Moira               en_IE    # Hello, my name is Moira.
Ting-Ting           zh_CN    # Hello, my name is Ting-Ting.
`
	voices := ParseSayVoices(output)
	if len(voices) != 3 {
		t.Fatalf("parsed %d voices, want 3", len(voices))
	}
	if voices[0].Name != "Alex" || voices[0].Lang != "en_US" {
		t.Fatalf("unexpected voice: %+v", voices[0])
	}
	if got, ok := SelectVoice(voices, Preference{Region: "en"}); !ok || got.Name != "Alex" {
		t.Fatalf("region match over underscore langs failed: %+v", got)
	}
}
