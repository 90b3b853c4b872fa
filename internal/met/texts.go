package met

import (
	"fmt"

	"github.com/AndHofma/musical-ear-test/internal/stimuli"
)

// On-screen labels and instruction texts. The test is administered in
// German; the response keys are spelled out bilingually on the buttons.

var partLabel = map[stimuli.Part]string{
	stimuli.PartMelody: "Melodie",
	stimuli.PartRhythm: "Rhythmus",
}

// partPlural is used inside the trial prompt.
var partPlural = map[stimuli.Part]string{
	stimuli.PartMelody: "Melodien",
	stimuli.PartRhythm: "Rhythmen",
}

func trialPrompt(part stimuli.Part) string {
	return fmt.Sprintf("Sind die %s identisch?", partPlural[part])
}

const generalIntro = "Willkommen zum Test \"Musikalisches-Gehör\"\n\n" +
	"Dieser Test besteht aus zwei Teilen:\n\n" +
	"dem Melodie-Teil und dem Rhythmus-Teil.\n\n" +
	"Drücken Sie eine beliebige Taste, wenn Sie bereit sind, mit den Beispielen anzufangen."

const endText = "Sie haben es geschafft!\n\n" +
	"Drücken Sie eine beliebige Taste, um den Test abzuschließen."

func practiceIntro(part stimuli.Part, examples int) string {
	return fmt.Sprintf(
		"%s.\n\n"+
			"Sie werden nun immer zwei kurze %s hintereinander hören.\n\n"+
			"Sie müssen entscheiden, ob diese zwei %s identisch sind.\n"+
			"Sind sie identisch, drücken Sie \"y\" (yes) auf der Tastatur.\n"+
			"Sind sie nicht identisch, drücken Sie \"n\" (no) auf der Tastatur.\n\n"+
			"Lassen Sie uns mit %d Beispielen starten.\n\n"+
			"Drücken Sie eine beliebige Taste, wenn Sie bereit sind.",
		partLabel[part], partPlural[part], partPlural[part], examples)
}

func practiceExplanation(part stimuli.Part, expected stimuli.Answer, last bool) string {
	var verdict, key string
	if expected == stimuli.Yes {
		verdict = "identisch"
		key = "yes / ja\nund Sie sollten \"y\" auf der Tastatur drücken."
	} else {
		verdict = "nicht identisch"
		key = "no / nein\nund Sie sollten \"n\" auf der Tastatur drücken."
	}
	next := "Drücken Sie eine beliebige Taste, um das nächste Beispiel abzuspielen."
	if last {
		next = "Drücken Sie eine beliebige Taste, um die Übungsbeispiele abzuschließen."
	}
	return fmt.Sprintf(
		"In diesem Fall waren die %s %s.\n\n"+
			"Die korrekte Antwort ist deshalb %s\n\n%s",
		partPlural[part], verdict, key, next)
}

func testIntro(part stimuli.Part, trials int, windowSeconds int) string {
	return fmt.Sprintf(
		"Jetzt beginnt der Test.\n\n"+
			"Sie werden insgesamt %d %s-Paare hören.\n\n"+
			"Sie enthalten zusätzlich einen leisen Metronomton,\n"+
			"in gleichmäßigen Abständen unterlegt.\n"+
			"Sie haben %d Sekunden Zeit, per Tastatur zu antworten.\n"+
			"Drücken Sie die \"y\" oder \"n\" Taste,\n"+
			"sobald die entsprechenden Button erscheinen.\n"+
			"Das nächste %s-Paar startet automatisch.\n"+
			"Versuchen Sie, so akkurat wie möglich zu antworten.\n\n"+
			"Drücken Sie eine beliebige Taste, wenn Sie bereit sind, anzufangen.",
		trials, partLabel[part], windowSeconds, partLabel[part])
}

const feedbackCorrect = "Richtig!"
const feedbackWrong = "Falsch!"
