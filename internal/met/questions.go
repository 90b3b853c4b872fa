package met

// QuestionKind distinguishes checkbox from free-text items.
type QuestionKind int

const (
	QuestionBool QuestionKind = iota
	QuestionText
)

// Question is one musicality questionnaire item.
type Question struct {
	Label  string
	Prompt string
	Kind   QuestionKind
}

// Questions is the short musicality questionnaire shown before the
// trial loop when the questionnaire is enabled.
var Questions = []Question{
	{
		Label:  "hoeren_schlecht_ja",
		Prompt: "Setzen Sie das Häkchen, wenn Sie ein eingeschränktes Hörvermögen haben:",
		Kind:   QuestionBool,
	},
	{
		Label: "instrument_list",
		Prompt: "Falls Sie ein Instrument spielen oder spielten, geben Sie jedes mit Namen an " +
			"und in Klammern dahinter, wie viele Jahre (oder Monate) Sie dies tun / taten:",
		Kind: QuestionText,
	},
	{
		Label:  "chor_singen_ja",
		Prompt: "Setzen Sie das Häkchen, wenn Sie in einem Chor singen oder gesungen haben:",
		Kind:   QuestionBool,
	},
	{
		Label: "chor_dauer",
		Prompt: "Falls Sie in einem Chor singen oder gesungen haben, geben Sie bitte ein, " +
			"wie viele Jahre (oder Monate) Sie dies tun / getan haben:",
		Kind: QuestionText,
	},
	{
		Label:  "band_singen_ja",
		Prompt: "Setzen Sie das Häkchen, wenn Sie in einer Band singen oder gesungen haben:",
		Kind:   QuestionBool,
	},
	{
		Label: "band_dauer",
		Prompt: "Falls Sie in einer Band singen oder gesungen haben, geben Sie bitte ein, " +
			"wie viele Jahre (oder Monate) Sie dies tun / getan haben:",
		Kind: QuestionText,
	},
	{
		Label:  "musikschule_besucht_ja",
		Prompt: "Setzen Sie das Häkchen, wenn Sie auf einer Musikschule sind oder waren:",
		Kind:   QuestionBool,
	},
	{
		Label: "musikschule_dauer",
		Prompt: "Falls Sie auf einer Musikschule sind oder waren, geben Sie bitte ein, " +
			"wie viele Jahre (oder Monate) Sie auf einer Musikschule waren oder sind:",
		Kind: QuestionText,
	},
	{
		Label:  "musik_hoeren",
		Prompt: "Geben Sie bitte an, wie viele Stunden pro Woche (in etwa) Sie Musik hören?",
		Kind:   QuestionText,
	},
}
