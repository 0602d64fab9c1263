package simpletype

import (
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/label"
)

// BackwardForward is the direction of a repeat.
type BackwardForward int

const (
	BackwardForwardBackward BackwardForward = iota
	BackwardForwardForward
)

var backwardForwardLabels = label.Define("backward-forward", label.Lower,
	label.E(BackwardForwardBackward, "Backward"),
	label.E(BackwardForwardForward, "Forward"),
)

func (v BackwardForward) String() string {
	return enum.String(backwardForwardLabels, v)
}

func (v BackwardForward) MarshalText() ([]byte, error) {
	return enum.MarshalText(backwardForwardLabels, v)
}

func (v *BackwardForward) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(backwardForwardLabels, v, b)
}

// HoleClosedLocation is the side of a half closed hole which is closed.
type HoleClosedLocation int

const (
	HoleClosedLocationRight HoleClosedLocation = iota
	HoleClosedLocationBottom
	HoleClosedLocationLeft
	HoleClosedLocationTop
)

var holeClosedLocationLabels = label.Define("hole-closed-location", label.Lower,
	label.E(HoleClosedLocationRight, "Right"),
	label.E(HoleClosedLocationBottom, "Bottom"),
	label.E(HoleClosedLocationLeft, "Left"),
	label.E(HoleClosedLocationTop, "Top"),
)

func (v HoleClosedLocation) String() string {
	return enum.String(holeClosedLocationLabels, v)
}

func (v HoleClosedLocation) MarshalText() ([]byte, error) {
	return enum.MarshalText(holeClosedLocationLabels, v)
}

func (v *HoleClosedLocation) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(holeClosedLocationLabels, v, b)
}

type HoleClosedValue int

const (
	HoleClosedValueYes HoleClosedValue = iota
	HoleClosedValueNo
	HoleClosedValueHalf
)

var holeClosedValueLabels = label.Define("hole-closed-value", label.Lower,
	label.E(HoleClosedValueYes, "Yes"),
	label.E(HoleClosedValueNo, "No"),
	label.E(HoleClosedValueHalf, "Half"),
)

func (v HoleClosedValue) String() string {
	return enum.String(holeClosedValueLabels, v)
}

func (v HoleClosedValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(holeClosedValueLabels, v)
}

func (v *HoleClosedValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(holeClosedValueLabels, v, b)
}

// Mute is a brass or string mute.
type Mute int

const (
	MuteOn Mute = iota
	MuteOff
	MuteStraight
	MuteCup
	MuteHarmonNoStem
	MuteHarmonStem
	MuteBucket
	MutePlunger
	MuteHat
	MuteSolotone
	MutePractice
	MuteStopMute
	MuteStopHand
	MuteEcho
	MutePalm
)

var muteLabels = label.Define("mute", label.Kebab,
	label.E(MuteOn, "On"),
	label.E(MuteOff, "Off"),
	label.E(MuteStraight, "Straight"),
	label.E(MuteCup, "Cup"),
	label.E(MuteHarmonNoStem, "HarmonNoStem"),
	label.E(MuteHarmonStem, "HarmonStem"),
	label.E(MuteBucket, "Bucket"),
	label.E(MutePlunger, "Plunger"),
	label.E(MuteHat, "Hat"),
	label.E(MuteSolotone, "Solotone"),
	label.E(MutePractice, "Practice"),
	label.E(MuteStopMute, "StopMute"),
	label.E(MuteStopHand, "StopHand"),
	label.E(MuteEcho, "Echo"),
	label.E(MutePalm, "Palm"),
)

func (v Mute) String() string {
	return enum.String(muteLabels, v)
}

func (v Mute) MarshalText() ([]byte, error) {
	return enum.MarshalText(muteLabels, v)
}

func (v *Mute) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(muteLabels, v, b)
}

type OnOff int

const (
	OnOffOn OnOff = iota
	OnOffOff
)

var onOffLabels = label.Define("on-off", label.Lower,
	label.E(OnOffOn, "On"),
	label.E(OnOffOff, "Off"),
)

func (v OnOff) String() string {
	return enum.String(onOffLabels, v)
}

func (v OnOff) MarshalText() ([]byte, error) {
	return enum.MarshalText(onOffLabels, v)
}

func (v *OnOff) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(onOffLabels, v, b)
}

type ShowFrets int

const (
	ShowFretsNumbers ShowFrets = iota
	ShowFretsLetters
)

var showFretsLabels = label.Define("show-frets", label.Lower,
	label.E(ShowFretsNumbers, "Numbers"),
	label.E(ShowFretsLetters, "Letters"),
)

func (v ShowFrets) String() string {
	return enum.String(showFretsLabels, v)
}

func (v ShowFrets) MarshalText() ([]byte, error) {
	return enum.MarshalText(showFretsLabels, v)
}

func (v *ShowFrets) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(showFretsLabels, v, b)
}

// StartNote is the first note of a trill.
type StartNote int

const (
	StartNoteUpper StartNote = iota
	StartNoteMain
	StartNoteBelow
)

var startNoteLabels = label.Define("start-note", label.Lower,
	label.E(StartNoteUpper, "Upper"),
	label.E(StartNoteMain, "Main"),
	label.E(StartNoteBelow, "Below"),
)

func (v StartNote) String() string {
	return enum.String(startNoteLabels, v)
}

func (v StartNote) MarshalText() ([]byte, error) {
	return enum.MarshalText(startNoteLabels, v)
}

func (v *StartNote) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(startNoteLabels, v, b)
}

type StartStop int

const (
	StartStopStart StartStop = iota
	StartStopStop
)

var startStopLabels = label.Define("start-stop", label.Lower,
	label.E(StartStopStart, "Start"),
	label.E(StartStopStop, "Stop"),
)

func (v StartStop) String() string {
	return enum.String(startStopLabels, v)
}

func (v StartStop) MarshalText() ([]byte, error) {
	return enum.MarshalText(startStopLabels, v)
}

func (v *StartStop) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(startStopLabels, v, b)
}

type StartStopChangeContinue int

const (
	StartStopChangeContinueStart StartStopChangeContinue = iota
	StartStopChangeContinueStop
	StartStopChangeContinueChange
	StartStopChangeContinueContinue
)

var startStopChangeContinueLabels = label.Define("start-stop-change-continue", label.Lower,
	label.E(StartStopChangeContinueStart, "Start"),
	label.E(StartStopChangeContinueStop, "Stop"),
	label.E(StartStopChangeContinueChange, "Change"),
	label.E(StartStopChangeContinueContinue, "Continue"),
)

func (v StartStopChangeContinue) String() string {
	return enum.String(startStopChangeContinueLabels, v)
}

func (v StartStopChangeContinue) MarshalText() ([]byte, error) {
	return enum.MarshalText(startStopChangeContinueLabels, v)
}

func (v *StartStopChangeContinue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(startStopChangeContinueLabels, v, b)
}

type StartStopContinue int

const (
	StartStopContinueStart StartStopContinue = iota
	StartStopContinueStop
	StartStopContinueContinue
)

var startStopContinueLabels = label.Define("start-stop-continue", label.Lower,
	label.E(StartStopContinueStart, "Start"),
	label.E(StartStopContinueStop, "Stop"),
	label.E(StartStopContinueContinue, "Continue"),
)

func (v StartStopContinue) String() string {
	return enum.String(startStopContinueLabels, v)
}

func (v StartStopContinue) MarshalText() ([]byte, error) {
	return enum.MarshalText(startStopContinueLabels, v)
}

func (v *StartStopContinue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(startStopContinueLabels, v, b)
}

// StartStopDiscontinue is the type of an ending. Discontinue is a stop without
// a downward jog.
type StartStopDiscontinue int

const (
	StartStopDiscontinueStart StartStopDiscontinue = iota
	StartStopDiscontinueStop
	StartStopDiscontinueDiscontinue
)

var startStopDiscontinueLabels = label.Define("start-stop-discontinue", label.Lower,
	label.E(StartStopDiscontinueStart, "Start"),
	label.E(StartStopDiscontinueStop, "Stop"),
	label.E(StartStopDiscontinueDiscontinue, "Discontinue"),
)

func (v StartStopDiscontinue) String() string {
	return enum.String(startStopDiscontinueLabels, v)
}

func (v StartStopDiscontinue) MarshalText() ([]byte, error) {
	return enum.MarshalText(startStopDiscontinueLabels, v)
}

func (v *StartStopDiscontinue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(startStopDiscontinueLabels, v, b)
}

type StartStopSingle int

const (
	StartStopSingleStart StartStopSingle = iota
	StartStopSingleStop
	StartStopSingleSingle
)

var startStopSingleLabels = label.Define("start-stop-single", label.Lower,
	label.E(StartStopSingleStart, "Start"),
	label.E(StartStopSingleStop, "Stop"),
	label.E(StartStopSingleSingle, "Single"),
)

func (v StartStopSingle) String() string {
	return enum.String(startStopSingleLabels, v)
}

func (v StartStopSingle) MarshalText() ([]byte, error) {
	return enum.MarshalText(startStopSingleLabels, v)
}

func (v *StartStopSingle) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(startStopSingleLabels, v, b)
}

// Syllabic is the position of a lyric syllable within its word.
type Syllabic int

const (
	SyllabicSingle Syllabic = iota
	SyllabicBegin
	SyllabicEnd
	SyllabicMiddle
)

var syllabicLabels = label.Define("syllabic", label.Lower,
	label.E(SyllabicSingle, "Single"),
	label.E(SyllabicBegin, "Begin"),
	label.E(SyllabicEnd, "End"),
	label.E(SyllabicMiddle, "Middle"),
)

func (v Syllabic) String() string {
	return enum.String(syllabicLabels, v)
}

func (v Syllabic) MarshalText() ([]byte, error) {
	return enum.MarshalText(syllabicLabels, v)
}

func (v *Syllabic) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(syllabicLabels, v, b)
}

type TrillStep int

const (
	TrillStepWhole TrillStep = iota
	TrillStepHalf
	TrillStepUnison
)

var trillStepLabels = label.Define("trill-step", label.Lower,
	label.E(TrillStepWhole, "Whole"),
	label.E(TrillStepHalf, "Half"),
	label.E(TrillStepUnison, "Unison"),
)

func (v TrillStep) String() string {
	return enum.String(trillStepLabels, v)
}

func (v TrillStep) MarshalText() ([]byte, error) {
	return enum.MarshalText(trillStepLabels, v)
}

func (v *TrillStep) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(trillStepLabels, v, b)
}

type TwoNoteTurn int

const (
	TwoNoteTurnWhole TwoNoteTurn = iota
	TwoNoteTurnHalf
	TwoNoteTurnNone
)

var twoNoteTurnLabels = label.Define("two-note-turn", label.Lower,
	label.E(TwoNoteTurnWhole, "Whole"),
	label.E(TwoNoteTurnHalf, "Half"),
	label.E(TwoNoteTurnNone, "None"),
)

func (v TwoNoteTurn) String() string {
	return enum.String(twoNoteTurnLabels, v)
}

func (v TwoNoteTurn) MarshalText() ([]byte, error) {
	return enum.MarshalText(twoNoteTurnLabels, v)
}

func (v *TwoNoteTurn) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(twoNoteTurnLabels, v, b)
}

type UpDownStopContinue int

const (
	UpDownStopContinueUp UpDownStopContinue = iota
	UpDownStopContinueDown
	UpDownStopContinueStop
	UpDownStopContinueContinue
)

var upDownStopContinueLabels = label.Define("up-down-stop-continue", label.Lower,
	label.E(UpDownStopContinueUp, "Up"),
	label.E(UpDownStopContinueDown, "Down"),
	label.E(UpDownStopContinueStop, "Stop"),
	label.E(UpDownStopContinueContinue, "Continue"),
)

func (v UpDownStopContinue) String() string {
	return enum.String(upDownStopContinueLabels, v)
}

func (v UpDownStopContinue) MarshalText() ([]byte, error) {
	return enum.MarshalText(upDownStopContinueLabels, v)
}

func (v *UpDownStopContinue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(upDownStopContinueLabels, v, b)
}

// YesNo is the boolean of MusicXML attributes.
type YesNo int

const (
	YesNoYes YesNo = iota
	YesNoNo
)

var yesNoLabels = label.Define("yes-no", label.Lower,
	label.E(YesNoYes, "Yes"),
	label.E(YesNoNo, "No"),
)

func (v YesNo) String() string {
	return enum.String(yesNoLabels, v)
}

func (v YesNo) MarshalText() ([]byte, error) {
	return enum.MarshalText(yesNoLabels, v)
}

func (v *YesNo) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(yesNoLabels, v, b)
}
