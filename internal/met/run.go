// Package met runs the Musical Ear Test: subject intake, the optional
// musicality questionnaire, then the melody and rhythm parts in random
// order, each with untimed practice trials and deadline-bound test
// trials. Every scored trial is persisted immediately.
package met

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
	"go.uber.org/zap"

	"github.com/AndHofma/musical-ear-test/internal/audio"
	"github.com/AndHofma/musical-ear-test/internal/config"
	"github.com/AndHofma/musical-ear-test/internal/results"
	"github.com/AndHofma/musical-ear-test/internal/session"
	"github.com/AndHofma/musical-ear-test/internal/stimuli"
	"github.com/AndHofma/musical-ear-test/internal/trigger"
	"github.com/AndHofma/musical-ear-test/internal/ui"
)

// errAborted signals that the subject ended the run (Escape or window
// close). Rows already written stay on disk.
var errAborted = errors.New("aborted by subject")

const triggerPulse = 5 * time.Millisecond

type runner struct {
	cfg    *config.Config
	log    *zap.Logger
	ui     *ui.UI
	mixer  *audio.Mixer
	cache  *audio.Cache
	stream *sdl.AudioStream
	box    *trigger.Box
	writer *results.Writer
	sess   *session.Session
	inv    *stimuli.Inventory
	images map[stimuli.Part]ui.Illustration
}

// Run executes one full subject run. A cancelled intake or an aborted
// run is not an error; only setup and I/O failures are.
func Run(cfg *config.Config, log *zap.Logger) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	inv, err := stimuli.Scan(cfg.AudioDir)
	if err != nil {
		return err
	}
	truncateTests(inv, cfg.Trial.MaxTestTrials)
	if err := checkInventory(inv); err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL init: %w", err)
	}
	defer sdl.Quit()
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("TTF init: %w", err)
	}
	defer ttf.Quit()

	u, err := ui.Setup(
		"Musical Ear Test",
		cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Fullscreen,
		cfg.Font.File, cfg.Font.Size,
		ui.ParseColor(cfg.Screen.Background), ui.ParseColor(cfg.Screen.TextColor),
	)
	if err != nil {
		return err
	}
	defer u.Destroy()

	r := &runner{
		cfg:    cfg,
		log:    log,
		ui:     u,
		inv:    inv,
		images: make(map[stimuli.Part]ui.Illustration),
	}
	defer r.teardown()

	subject, ok := u.Intake(session.ExperimentName, time.Now().Format("2006-01-02 15:04"))
	if !ok {
		log.Info("intake cancelled, no results written")
		return nil
	}
	r.sess = session.New(subject)
	log.Info("session started",
		zap.String("subject", subject),
		zap.String("session_id", r.sess.ID.String()))

	if cfg.Questionnaire.Enabled {
		done, err := r.runQuestionnaire()
		if err != nil {
			return err
		}
		if !done {
			log.Info("questionnaire cancelled, no results written")
			return nil
		}
	}

	if err := r.setupOutputs(); err != nil {
		return err
	}
	if err := r.setupAudio(); err != nil {
		return err
	}
	r.setupTrigger()
	r.loadIllustrations()

	err = r.runParts()
	if errors.Is(err, errAborted) {
		log.Warn("run aborted by subject, partial results kept",
			zap.Int("trials", len(r.sess.Trials())))
		return nil
	}
	if err != nil {
		return err
	}

	log.Info("run complete",
		zap.Int("trials", len(r.sess.Trials())),
		zap.String("practice_file", r.writer.PracticePath()),
		zap.String("test_file", r.writer.TestPath()))
	return nil
}

func (r *runner) teardown() {
	if r.writer != nil {
		if err := r.writer.Close(); err != nil {
			r.log.Error("closing result files", zap.Error(err))
		}
	}
	if r.box != nil {
		r.box.Close()
	}
	if r.stream != nil {
		r.stream.Destroy()
	}
	for _, il := range r.images {
		il.Destroy()
	}
}

func (r *runner) runQuestionnaire() (bool, error) {
	answers := make([]results.QuestionnaireAnswer, 0, len(Questions))
	for _, q := range Questions {
		var value string
		var ok bool
		switch q.Kind {
		case QuestionBool:
			var b bool
			b, ok = r.ui.AskBool(q.Prompt)
			value = fmt.Sprintf("%t", b)
		default:
			value, ok = r.ui.AskText(q.Prompt)
		}
		if !ok {
			return false, nil
		}
		answers = append(answers, results.QuestionnaireAnswer{Label: q.Label, Value: value})
	}

	path, err := results.WriteQuestionnaire(
		r.cfg.ResultsDir, r.sess.Subject, r.sess.Date(), time.Now(), answers)
	if err != nil {
		return false, err
	}
	r.log.Info("questionnaire saved", zap.String("file", path))
	return true, nil
}

func (r *runner) setupOutputs() error {
	w, err := results.Create(r.cfg.ResultsDir, r.sess.Subject, time.Now())
	if err != nil {
		return err
	}
	r.writer = w
	return nil
}

func (r *runner) setupAudio() error {
	r.mixer = audio.NewMixer()
	r.cache = audio.NewCache()

	cb := sdl.NewAudioStreamCallback(r.mixer.Callback)
	stream := sdl.AUDIO_DEVICE_DEFAULT_PLAYBACK.OpenAudioDeviceStream(&audio.DeviceSpec, cb)
	if stream == nil {
		return fmt.Errorf("opening audio device stream")
	}
	stream.ResumeDevice()
	r.stream = stream

	if err := r.cache.Preload(r.inv.Paths()); err != nil {
		return err
	}
	r.log.Debug("stimuli preloaded", zap.Int("count", len(r.inv.Paths())))
	return nil
}

func (r *runner) setupTrigger() {
	if r.cfg.Trigger.Device == "" {
		return
	}
	box, err := trigger.Open(r.cfg.Trigger.Device, r.cfg.Trigger.Baud)
	if err != nil {
		r.log.Warn("trigger box unavailable, continuing without markers", zap.Error(err))
		return
	}
	r.box = box
	r.log.Info("trigger box connected", zap.String("device", r.cfg.Trigger.Device))
}

func (r *runner) loadIllustrations() {
	for _, part := range stimuli.Parts {
		path := filepath.Join(r.cfg.ImageDir, string(part)+".png")
		il, err := r.ui.LoadIllustration(path)
		if err != nil {
			r.log.Warn("part illustration missing", zap.String("path", path))
			continue
		}
		r.images[part] = il
	}
}

func (r *runner) runParts() error {
	order := make([]stimuli.Part, len(stimuli.Parts))
	copy(order, stimuli.Parts)
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	r.log.Debug("part order drawn", zap.Any("order", order))

	if !r.ui.ShowMessage(generalIntro) {
		return errAborted
	}

	for _, part := range order {
		if err := r.runPart(part); err != nil {
			return err
		}
	}

	if r.cfg.ShowScore {
		if !r.ui.ShowMessage(r.sess.ScoreSummary()) {
			return errAborted
		}
	}
	r.ui.ShowMessage(endText)
	return nil
}

func (r *runner) runPart(part stimuli.Part) error {
	set := r.inv.ForPart(part)
	phaseStart := time.Now()

	if !r.ui.ShowMessage(practiceIntro(part, len(set.Examples))) {
		return errAborted
	}

	for i, stim := range set.Examples {
		trial, err := r.runTrial(part, session.PhasePractice, i+1, len(set.Examples), stim, 0, phaseStart)
		if err != nil {
			return err
		}

		feedback := feedbackWrong
		if trial.Accuracy == session.AccuracyCorrect {
			feedback = feedbackCorrect
		}
		if !r.ui.ShowFeedback(feedback, r.cfg.Trial.FeedbackDurationDuration()) {
			return errAborted
		}
		if !r.ui.ShowMessage(practiceExplanation(part, stim.Expected, i == len(set.Examples)-1)) {
			return errAborted
		}
	}

	window := r.cfg.Trial.ResponseWindowDuration()
	if !r.ui.ShowMessage(testIntro(part, len(set.Tests), int(window.Seconds()))) {
		return errAborted
	}

	for i, stim := range set.Tests {
		if _, err := r.runTrial(part, session.PhaseTest, i+1, len(set.Tests), stim, window, phaseStart); err != nil {
			return err
		}
	}
	return nil
}

// runTrial plays one stimulus, captures the judgment and persists the
// scored trial. window == 0 means no deadline (practice).
func (r *runner) runTrial(part stimuli.Part, phase session.Phase, number, total int, stim stimuli.Stimulus, window time.Duration, phaseStart time.Time) (session.Trial, error) {
	sound, err := r.cache.Load(stim.Path)
	if err != nil {
		return session.Trial{}, err
	}

	view := ui.TrialView{
		Number:    number,
		Total:     total,
		PartLabel: partLabel[part],
		Prompt:    trialPrompt(part),
		Image:     r.images[part],
	}

	r.mark(trigger.LineStimulus)
	if !r.mixer.Play(sound) {
		return session.Trial{}, fmt.Errorf("no free audio voice for %s", stim.Path)
	}

	if !r.ui.Hold(view, sound.Duration()+r.cfg.Trial.PostStimulusDelayDuration()) {
		r.mixer.Stop()
		return session.Trial{}, errAborted
	}
	r.ui.FlushEvents()

	answer, ok := r.ui.AwaitAnswer(view, window)
	if !ok {
		return session.Trial{}, errAborted
	}
	if answer != stimuli.None {
		r.mark(trigger.LineResponse)
	}

	trial := session.Trial{
		Part:       part,
		Phase:      phase,
		Index:      number,
		Stimulus:   stim.Path,
		Expected:   stim.Expected,
		Response:   answer,
		Accuracy:   session.Score(answer, stim.Expected),
		PhaseStart: phaseStart,
		End:        time.Now(),
	}
	r.sess.Record(trial)
	if err := r.writer.Append(r.sess, trial); err != nil {
		return session.Trial{}, err
	}

	r.log.Debug("trial scored",
		zap.String("part", string(part)),
		zap.String("phase", string(phase)),
		zap.Int("trial", number),
		zap.String("response", string(answer)),
		zap.Int("accuracy", trial.Accuracy))
	return trial, nil
}

func (r *runner) mark(line string) {
	if r.box == nil {
		return
	}
	if err := r.box.Pulse(line, triggerPulse); err != nil {
		r.log.Warn("trigger pulse failed", zap.Error(err))
	}
}

// truncateTests caps the test lists, used by the short (PSD) form.
func truncateTests(inv *stimuli.Inventory, max int) {
	if max <= 0 {
		return
	}
	for _, part := range stimuli.Parts {
		set := inv.ForPart(part)
		if len(set.Tests) > max {
			set.Tests = set.Tests[:max]
		}
	}
}

func checkInventory(inv *stimuli.Inventory) error {
	for _, part := range stimuli.Parts {
		set := inv.ForPart(part)
		if len(set.Examples) == 0 {
			return fmt.Errorf("no %s example stimuli found", part)
		}
		if len(set.Tests) == 0 {
			return fmt.Errorf("no %s test stimuli found", part)
		}
	}
	return nil
}
