package interview

import "fmt"

const (
	noticeNoSpeech     = "I didn't catch that. Please make sure your microphone is working and unmuted."
	noticeNetworkDown  = "A network error occurred with the speech service. Please check your connection."
	noticeMicDenied    = "Microphone access was denied. Please enable it in your settings to continue."
	noticeQuestionsGen = "Failed to start interview. Check media permissions and API connection."
	noticeSummaryGen   = "Could not generate interview summary."
)

func noticeRetrying(attempt, max int) string {
	return fmt.Sprintf("Network issue. Retrying... (%d/%d)", attempt, max)
}

func noticeUnexpected(kind string) string {
	return fmt.Sprintf("An unexpected error occurred: %s.", kind)
}
