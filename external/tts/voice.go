package tts

import "strings"

// preferredVoiceNames is the ranked fallback applied when no voice is
// configured explicitly. Availability varies by project and region, so the
// list is best effort, never a hard requirement.
var preferredVoiceNames = []string{
	"en-US-Neural2-F",
	"en-US-Wavenet-F",
	"en-US-Standard-C",
}

// selectVoiceName picks the interviewer voice: the configured name when
// available, then the first preferred name that is, then any English voice,
// and finally the engine default (empty name).
func selectVoiceName(configured string, available []string) string {
	has := func(name string) bool {
		for _, v := range available {
			if v == name {
				return true
			}
		}
		return false
	}

	if configured != "" && has(configured) {
		return configured
	}
	for _, name := range preferredVoiceNames {
		if has(name) {
			return name
		}
	}
	for _, v := range available {
		if strings.HasPrefix(v, "en-") {
			return v
		}
	}
	return ""
}
