package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/ending-sim/internal/content"
	"github.com/danielpatrickdp/ending-sim/internal/ending"
	"github.com/danielpatrickdp/ending-sim/internal/mode"
	"github.com/danielpatrickdp/ending-sim/internal/route"
)

// NoEligibleText is printed when the selected mode has no characters.
const NoEligibleText = "No characters available for the selected story mode."

// #region options
// Recorder persists finished sessions.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Roster         *route.Roster  // default: content.NewRoster()
	Pacer          Pacer          // default: NoPacer
	AffinityPolicy AffinityPolicy // default: AffinitySkip
	Recorder       Recorder       // optional
	Logger         *zap.Logger    // default: no-op
}

// #endregion options

// #region session
// Session runs one single-player story from mode selection to ending.
type Session struct {
	con    *Console
	roster *route.Roster
	pacer  Pacer
	policy AffinityPolicy
	rec    Recorder
	log    *zap.Logger
}

// New creates a session talking through con.
func New(con *Console, opts Options) *Session {
	s := &Session{
		con:    con,
		roster: opts.Roster,
		pacer:  opts.Pacer,
		policy: opts.AffinityPolicy,
		rec:    opts.Recorder,
		log:    opts.Logger,
	}
	if s.roster == nil {
		s.roster = content.NewRoster()
	}
	if s.pacer == nil {
		s.pacer = NoPacer{}
	}
	if s.policy == "" {
		s.policy = AffinitySkip
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Run plays the session to a terminal outcome. Every story termination,
// early or not, returns a nil error; errors mean the input closed, ctx was
// cancelled, or a precondition was violated.
func (s *Session) Run(ctx context.Context) (Record, error) {
	rec := Record{ID: uuid.New().String(), StartedAt: time.Now().UTC()}
	log := s.log.With(zap.String("session_id", rec.ID))

	if err := s.play(ctx, &rec, log); err != nil {
		log.Warn("session aborted", zap.Error(err))
		return rec, err
	}

	log.Info("session finished",
		zap.String("mode", rec.Mode.String()),
		zap.String("route", rec.Route),
		zap.Stringer("kind", rec.Outcome.Kind))

	if s.rec != nil {
		if err := s.rec.Record(ctx, rec); err != nil {
			log.Warn("record session", zap.Error(err))
		}
	}
	return rec, nil
}

// #endregion session

// #region play
func (s *Session) play(ctx context.Context, rec *Record, log *zap.Logger) error {
	for _, line := range content.Welcome {
		s.con.Println(line)
	}

	md, err := s.selectMode(ctx)
	if err != nil {
		return err
	}
	rec.Mode = md
	s.con.Printf("You have selected the %s Story Mode.\n", md)
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}

	// prologue pre-filter
	prologue, err := s.prologue(ctx)
	if err != nil {
		return err
	}
	rec.Prologue = prologue[:]
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}
	if IsPoliceEnding(prologue) {
		rec.step("prologue", "police", "every prologue answer called the police")
		s.con.Println()
		s.con.Println(content.PrologueBadLead)
		s.con.Println()
		return s.finish(rec, ending.NewPrologueBad())
	}
	rec.step("prologue", "pass", "")
	s.con.Println()
	s.con.Println(content.ProloguePassed)
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}

	s.con.Println()
	for _, line := range content.Explainer {
		s.con.Println(line)
	}
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}

	if err := s.collectAffinity(ctx, rec, log); err != nil {
		return err
	}
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}

	selected := route.Select(md, s.roster)
	if selected == nil {
		rec.step("route_select", "none", "no characters for "+md.String())
		s.con.Println()
		return s.finish(rec, ending.Outcome{Kind: ending.None, Text: NoEligibleText})
	}
	rec.Route = selected.Name()
	rec.Affinity = selected.Affinity()
	rec.step("route_select", selected.Name(), fmt.Sprintf("highest affinity in %s: %d", md, selected.Affinity()))
	log.Debug("route selected", zap.String("route", selected.Name()), zap.Int("affinity", selected.Affinity()))
	s.con.Println()
	s.con.Printf("%s's Route obtained with %d hearts.\n", selected.Name(), selected.Affinity())

	modeBad, err := route.IsModeBadEnding(md, s.roster)
	if err != nil {
		return fmt.Errorf("mode check: %w", err)
	}
	if modeBad {
		rec.step("mode_check", "mode_bad", "highest affinity overall belongs to another mode")
		s.con.Println()
		return s.finish(rec, ending.NewModeBad(content.ModeBadNames(md, s.roster)))
	}
	rec.step("mode_check", "pass", "")

	opt, err := s.chooseMenu(ctx, md)
	if err != nil {
		return err
	}
	rec.MenuKey = opt.Key
	choices := opt.Choices
	rec.Choices = &choices
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}

	s.con.Println()
	s.con.Printf("Evaluating ending for %s's Route...\n", selected.Name())
	out := selected.Resolve(choices, md)
	reason := fmt.Sprintf("choices %v", choices)
	if out.Scores != nil {
		reason = fmt.Sprintf("choices %v scores %v", choices, *out.Scores)
	}
	rec.step("resolve", out.Kind.String(), reason)
	if err := s.pacer.Pause(ctx); err != nil {
		return err
	}
	return s.finish(rec, out)
}

func (s *Session) finish(rec *Record, out ending.Outcome) error {
	rec.Outcome = out
	s.con.Headline(out.Text)
	return nil
}

// #endregion play

// #region steps
func (s *Session) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.con.Prompt(ctx, label)
}

func (s *Session) selectMode(ctx context.Context) (mode.Mode, error) {
	for {
		s.con.Println()
		s.con.Println("Select your story mode:")
		for _, m := range mode.All() {
			s.con.Printf("%s. %s Story\n", m.Key(), m)
		}
		in, err := s.ask(ctx, "Enter your choice (1/2/3): ")
		if err != nil {
			return 0, err
		}
		md, err := mode.Parse(in)
		if err == nil {
			return md, nil
		}
		s.con.Println("Invalid choice. Please try again.")
	}
}

// prologue asks the four prologue questions. Each step repeats until it gets
// a whole number from 1 to 4.
func (s *Session) prologue(ctx context.Context) ([4]int, error) {
	var answers [4]int
	s.con.Println()
	s.con.Println("Prologue")
	s.con.Println(content.PrologueNote)
	s.con.Println()
	s.con.Println(content.PrologueIntro)

	for i, dialogue := range content.PrologueDialogues {
		if err := s.pacer.Pause(ctx); err != nil {
			return answers, err
		}
		s.con.Println()
		s.con.Println(dialogue)
		for j, opt := range content.PrologueOptions {
			s.con.Printf("%d. %s\n", j+1, opt)
		}
		for {
			in, err := s.ask(ctx, "Enter your choice (1/2/3/4): ")
			if err != nil {
				return answers, err
			}
			n, err := strconv.Atoi(in)
			if err != nil {
				s.con.Println("Invalid input. Please enter a number between 1 and 4.")
				continue
			}
			if n < 1 || n > len(content.PrologueOptions) {
				s.con.Println("Invalid choice. Please try again.")
				continue
			}
			answers[i] = n
			break
		}
	}
	return answers, nil
}

// IsPoliceEnding reports whether every prologue answer was the police call.
func IsPoliceEnding(answers [4]int) bool {
	return answers == content.PoliceCall
}

func (s *Session) collectAffinity(ctx context.Context, rec *Record, log *zap.Logger) error {
	for {
		s.con.Println()
		s.con.Println("Add hearts to characters:")
		for _, r := range s.roster.Routes() {
			s.con.Printf("%s: %d hearts\n", r.Name(), r.Affinity())
		}
		name, err := s.ask(ctx, "Enter character name to add hearts (or 'done' to finish): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(name, "done") {
			return nil
		}
		r, ok := s.roster.Find(name)
		if !ok {
			s.con.Println("Character not found. Please try again.")
			if err := s.pacer.Pause(ctx); err != nil {
				return err
			}
			continue
		}
		delta, ok, err := s.readDelta(ctx, r)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := r.AddAffinity(delta); err != nil {
			return err
		}
		rec.Grants = append(rec.Grants, Grant{Name: r.Name(), Delta: delta})
		log.Debug("affinity added", zap.String("route", r.Name()), zap.Int("delta", delta), zap.Int("total", r.Affinity()))
		if err := s.pacer.Pause(ctx); err != nil {
			return err
		}
	}
}

// readDelta reads a non-negative heart amount for r. ok is false when the
// amount was invalid and the skip policy dropped it.
func (s *Session) readDelta(ctx context.Context, r *route.CharacterRoute) (int, bool, error) {
	for {
		in, err := s.ask(ctx, fmt.Sprintf("Enter hearts for %s: ", r.Name()))
		if err != nil {
			return 0, false, err
		}
		n, err := strconv.Atoi(in)
		if err == nil && n >= 0 {
			return n, true, nil
		}
		if s.policy == AffinitySkip {
			s.con.Println("Invalid input. Skipping.")
			return 0, false, nil
		}
		s.con.Println("Invalid input. Please enter a whole number of hearts (0 or more).")
	}
}

func (s *Session) chooseMenu(ctx context.Context, md mode.Mode) (content.MenuOption, error) {
	for {
		s.con.Println()
		s.con.Println("Predefined choices:")
		for _, opt := range content.Menu(md) {
			s.con.Printf("%s. %s\n", opt.Key, opt.Label)
		}
		in, err := s.ask(ctx, "Enter your choice (1/2/3/4): ")
		if err != nil {
			return content.MenuOption{}, err
		}
		if opt, ok := content.Pick(md, in); ok {
			return opt, nil
		}
		s.con.Println("Invalid choice. Please try again.")
	}
}

// #endregion steps
