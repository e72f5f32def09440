// Package replay drives the checklist flow from a YAML script instead of
// the terminal UI. Scripts are used for scripted inspections and tests.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"gopkg.in/yaml.v3"
)

// Script is an ordered list of operator actions.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one action. Only the fields relevant to Action are read.
type Step struct {
	Action string `yaml:"action"`

	// login
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// submit_main. Items are KO unless verified: Checked lists the verified
	// slugs, Unchecked lists the KO slugs with every other item verified, and
	// AllChecked verifies the whole catalog. With none of them set, every
	// item is KO.
	General    General  `yaml:"general,omitempty"`
	Checked    []string `yaml:"checked,omitempty"`
	Unchecked  []string `yaml:"unchecked,omitempty"`
	AllChecked bool     `yaml:"all_checked,omitempty"`

	// submit_remediation, keyed by item slug.
	Remediations map[string]Remediation `yaml:"remediations,omitempty"`

	// menu
	Menu string `yaml:"menu,omitempty"`

	// Expect, when set, is the screen the step must land on.
	Expect string `yaml:"expect,omitempty"`
	// ExpectError makes a failing step part of the scenario.
	ExpectError bool `yaml:"expect_error,omitempty"`
}

// General mirrors the general fields of the main form.
type General struct {
	Name      string `yaml:"name"`
	Date      string `yaml:"date"`
	Robot     string `yaml:"robot"`
	Post      string `yaml:"post"`
	Line      string `yaml:"line"`
	Inspector string `yaml:"inspector"`
}

// Remediation mirrors one KO item's action plan.
type Remediation struct {
	Action     string `yaml:"action"`
	Pilot      string `yaml:"pilot"`
	Deadline   string `yaml:"deadline"`
	Status     string `yaml:"status"`
	Validation string `yaml:"validation"`
}

// ErrEmptyScript is returned for a script without steps.
var ErrEmptyScript = errors.New("script has no steps")

// Parse decodes and validates a script. Unknown keys are rejected so typos
// in field names do not silently drop answers.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, step := range s.Steps {
		if _, err := step.ToAction(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Expect != "" && !validScreen(flow.Screen(step.Expect)) {
			return nil, fmt.Errorf("step %d: unknown screen %q", i+1, step.Expect)
		}
	}
	return &s, nil
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// ToAction converts the step into a flow action.
func (s Step) ToAction() (flow.Action, error) {
	switch s.Action {
	case "login":
		return flow.Login{Username: s.Username, Password: s.Password}, nil
	case "submit_main":
		return s.submitMain()
	case "submit_remediation":
		return s.submitRemediation()
	case "back":
		return flow.Back{}, nil
	case "final_submit":
		return flow.FinalSubmit{}, nil
	case "logout":
		return flow.Logout{}, nil
	case "menu", "select_menu":
		m := domain.Menu(s.Menu)
		if !domain.ValidMenus[m] {
			return nil, fmt.Errorf("unknown menu %q", s.Menu)
		}
		return flow.SelectMenu{Menu: m}, nil
	case "":
		return nil, fmt.Errorf("action is required")
	default:
		return nil, fmt.Errorf("unknown action %q", s.Action)
	}
}

func (s Step) submitMain() (flow.Action, error) {
	if len(s.Checked) > 0 && len(s.Unchecked) > 0 {
		return nil, fmt.Errorf("submit_main: use either checked or unchecked, not both")
	}
	if s.AllChecked && (len(s.Checked) > 0 || len(s.Unchecked) > 0) {
		return nil, fmt.Errorf("submit_main: all_checked cannot be combined with checked or unchecked")
	}
	g := domain.GeneralInfo{
		Name:      s.General.Name,
		Date:      s.General.Date,
		Robot:     s.General.Robot,
		Post:      s.General.Post,
		Line:      s.General.Line,
		Inspector: domain.InspectorRole(s.General.Inspector),
	}
	if g.Inspector != "" && !g.Inspector.Valid() {
		return nil, fmt.Errorf("submit_main: unknown inspector role %q", s.General.Inspector)
	}
	if err := checkDate("date", g.Date); err != nil {
		return nil, fmt.Errorf("submit_main: %w", err)
	}

	verified := make(map[domain.ChecklistItemID]bool, domain.ItemCount())
	if s.AllChecked || len(s.Unchecked) > 0 {
		for _, item := range domain.Items() {
			verified[item.ID] = true
		}
	}
	for _, slug := range s.Checked {
		item, err := domain.ItemBySlug(slug)
		if err != nil {
			return nil, fmt.Errorf("submit_main: %w", err)
		}
		verified[item.ID] = true
	}
	for _, slug := range s.Unchecked {
		item, err := domain.ItemBySlug(slug)
		if err != nil {
			return nil, fmt.Errorf("submit_main: %w", err)
		}
		verified[item.ID] = false
	}
	return flow.SubmitMain{General: g, Verified: verified}, nil
}

func (s Step) submitRemediation() (flow.Action, error) {
	out := make(map[domain.ChecklistItemID]domain.Remediation, len(s.Remediations))
	for slug, r := range s.Remediations {
		item, err := domain.ItemBySlug(slug)
		if err != nil {
			return nil, fmt.Errorf("submit_remediation: %w", err)
		}
		status := domain.RemediationStatus(r.Status)
		if status != "" && !status.Valid() {
			return nil, fmt.Errorf("submit_remediation: %s: unknown status %q", slug, r.Status)
		}
		if err := checkDate(slug+".deadline", r.Deadline); err != nil {
			return nil, fmt.Errorf("submit_remediation: %w", err)
		}
		out[item.ID] = domain.Remediation{
			Action:     r.Action,
			Pilot:      r.Pilot,
			Deadline:   r.Deadline,
			Status:     status,
			Validation: r.Validation,
		}
	}
	return flow.SubmitRemediation{Remediations: out}, nil
}

// checkDate accepts blank values: the forms never require a field.
func checkDate(field, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, v); err != nil {
		return fmt.Errorf("%s: want YYYY-MM-DD, got %q", field, v)
	}
	return nil
}

func validScreen(s flow.Screen) bool {
	switch s {
	case flow.ScreenLogin, flow.ScreenMain, flow.ScreenKODetail,
		flow.ScreenSummary, flow.ScreenAbout, flow.ScreenContact:
		return true
	}
	return false
}
