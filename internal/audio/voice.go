package audio

import (
	"bufio"
	"strings"

	"github.com/verte-zerg/numdrill/internal/model"
)

// Preference describes the desired voice in decreasing strictness: exact name,
// name pattern, region plus gender, region, then any available voice.
type Preference struct {
	Name   string
	Region string
	Gender string
}

// DefaultPreference selects an English voice when the user names none.
var DefaultPreference = Preference{Region: "en"}

// SelectVoice picks the best match for pref from the available voices.
// The boolean is false when no voice is available at all.
func SelectVoice(voices []model.Voice, pref Preference) (model.Voice, bool) {
	if len(voices) == 0 {
		return model.Voice{}, false
	}
	if pref.Name != "" {
		for _, v := range voices {
			if strings.EqualFold(v.Name, pref.Name) {
				return v, true
			}
		}
		for _, v := range voices {
			if strings.Contains(strings.ToLower(v.Name), strings.ToLower(pref.Name)) {
				return v, true
			}
		}
	}
	if pref.Region != "" && pref.Gender != "" {
		for _, v := range voices {
			if matchRegion(v.Lang, pref.Region) && strings.EqualFold(v.Gender, pref.Gender) {
				return v, true
			}
		}
	}
	if pref.Region != "" {
		for _, v := range voices {
			if matchRegion(v.Lang, pref.Region) {
				return v, true
			}
		}
	}
	return voices[0], true
}

func matchRegion(lang, region string) bool {
	lang = strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	region = strings.ToLower(strings.ReplaceAll(region, "_", "-"))
	return lang == region || strings.HasPrefix(lang, region+"-")
}

// ParseEspeakVoices parses `espeak --voices` output. Lines look like:
//
//	Pty Language Age/Gender VoiceName          File          Other Languages
//	 5  en-gb          M  english              en/en
func ParseEspeakVoices(output string) []model.Voice {
	var voices []model.Voice
	scanner := bufio.NewScanner(strings.NewReader(output))
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			if strings.HasPrefix(line, "Pty") {
				continue
			}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		gender := fields[2]
		if idx := strings.IndexByte(gender, '/'); idx >= 0 {
			gender = gender[idx+1:]
		}
		voices = append(voices, model.Voice{
			Name:   fields[3],
			Lang:   fields[1],
			Gender: gender,
		})
	}
	return voices
}

// ParseSayVoices parses `say -v ?` output. Lines look like:
//
//	Alex                en_US    # Most people recognize me by my voice.
func ParseSayVoices(output string) []model.Voice {
	var voices []model.Voice
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		head := line
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			head = line[:idx]
		}
		fields := strings.Fields(head)
		if len(fields) < 2 {
			continue
		}
		lang := fields[len(fields)-1]
		name := strings.Join(fields[:len(fields)-1], " ")
		voices = append(voices, model.Voice{Name: name, Lang: lang})
	}
	return voices
}
