package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionPlay     = "play"     // start a round, optional continent param
	actionAnswer   = "ans"      // submit the tapped country code
	actionNext     = "next"     // advance before the auto-advance fires
	actionStop     = "stop"     // abandon the active round
	actionSay      = "say"      // pronounce a country name
	actionSettings = "settings" // settings screens
)

// Settings sub-actions.
const (
	settingsMenu         = "menu"
	settingsContinent    = "continent"
	settingsLength       = "length"
	settingsSound        = "sound"
	settingsReminder     = "reminder"
	settingsReminderHour = "remhour"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildPlayCallback builds callback data for starting a round. An empty
// continent means "use the player's preferred continent".
func buildPlayCallback(continent string) string {
	cd := callbackData{Action: actionPlay}
	if continent != "" {
		cd.Params = []string{continent}
	}
	return cd.encode()
}

// buildAnswerCallback builds callback data for one answer option.
func buildAnswerCallback(code string) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{code},
	}.encode()
}

// buildNextCallback builds callback data for advancing to the next question.
func buildNextCallback() string {
	return actionNext
}

// buildStopCallback builds callback data for abandoning the round.
func buildStopCallback() string {
	return actionStop
}

// buildSayCallback builds callback data for pronouncing a country name.
func buildSayCallback(code string) string {
	return callbackData{
		Action: actionSay,
		Params: []string{code},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildLengthCallback(length int) string {
	return buildSettingsCallback(settingsLength, strconv.Itoa(length))
}

func buildReminderHourCallback(hour int) string {
	return buildSettingsCallback(settingsReminderHour, strconv.Itoa(hour))
}
