package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/mitoteru/sprout/internal/config"
	"github.com/mitoteru/sprout/internal/probe"
	"github.com/mitoteru/sprout/internal/shell"
)

// Session carries the state the prompt steps read and the answers they
// accumulate. Answers are written once and read by later steps.
type Session struct {
	// Registry is the stack registry.
	Registry *config.Registry
	// Caps is the environment capability record.
	Caps probe.Capabilities
	// DestEmpty reports whether the destination directory is empty or absent.
	DestEmpty bool
	// DefaultTitle is the suggested project title (destination basename).
	DefaultTitle string
	// SkipGit disables the git question.
	SkipGit bool

	// Answers
	Proceed        bool
	Title          string
	Stack          string
	PackageManager string
	DeployTool     string
	InitGit        bool
}

// Question is one prompt step: an Ask predicate deciding whether the step
// applies to the session, and the prompt itself.
type Question struct {
	// Name identifies the answer for error reporting.
	Name string
	// Ask reports whether the question applies. A nil Ask always applies.
	Ask func(s *Session) bool
	// Run asks the question and records the answer on the session.
	Run func(s *Session) error
}

// Run walks the question list in order, skipping steps whose predicate
// declines the session.
func (s *Session) Run(questions []Question) error {
	for _, q := range questions {
		if q.Ask != nil && !q.Ask(s) {
			continue
		}
		if err := q.Run(s); err != nil {
			return fmt.Errorf("failed to prompt for %s: %w", q.Name, err)
		}
	}
	return nil
}

// ApplyDefaults records every answer's default without prompting (--yes).
func (s *Session) ApplyDefaults() {
	s.Proceed = bailDefault(s.DestEmpty)
	s.Title = s.DefaultTitle
	s.PackageManager = shell.ManagerNpm
	s.DeployTool = ""
	s.InitGit = false
}

// Questions returns the ordered prompt steps for project creation.
func Questions() []Question {
	return []Question{
		{
			Name: "proceed",
			Run:  promptProceed,
		},
		{
			Name: "title",
			Ask:  func(s *Session) bool { return s.Proceed },
			Run:  promptTitle,
		},
		{
			Name: "stack",
			Ask:  func(s *Session) bool { return s.Proceed && s.Stack == "" },
			Run:  promptStack,
		},
		{
			Name: "package manager",
			Ask:  func(s *Session) bool { return s.Proceed && s.Caps.Yarn },
			Run:  promptPackageManager,
		},
		{
			Name: "deploy tool",
			Ask:  func(s *Session) bool { return s.Proceed && (s.Caps.Now || s.Caps.Surge) },
			Run:  promptDeployTool,
		},
		{
			Name: "git",
			Ask:  func(s *Session) bool { return s.Proceed && s.Caps.Git && !s.SkipGit },
			Run:  promptGit,
		},
	}
}

// bailDefault is the default answer of the proceed prompt: proceed when the
// destination is empty, bail when it already has content.
func bailDefault(destEmpty bool) bool {
	return destEmpty
}

// promptProceed asks whether to write into the destination directory.
func promptProceed(s *Session) error {
	message := "Create the project in this directory?"
	if !s.DestEmpty {
		message = "The destination directory is not empty. Continue anyway?"
	}

	prompt := &survey.Confirm{
		Message: message,
		Default: bailDefault(s.DestEmpty),
	}
	return survey.AskOne(prompt, &s.Proceed)
}

// promptTitle asks for the project title.
func promptTitle(s *Session) error {
	prompt := &survey.Input{
		Message: "Project title",
		Default: s.DefaultTitle,
		Help:    "Used in generated files and as the base of the package name",
	}
	return survey.AskOne(prompt, &s.Title, survey.WithValidator(survey.Required))
}

// promptStack asks which stack to scaffold.
func promptStack(s *Session) error {
	stacks := s.Registry.Stacks()
	options := make([]string, len(stacks))
	for i, stack := range stacks {
		options[i] = stack.Label
	}

	var label string
	prompt := &survey.Select{
		Message: "Which stack?",
		Options: options,
	}
	if err := survey.AskOne(prompt, &label); err != nil {
		return err
	}

	for _, stack := range stacks {
		if stack.Label == label {
			s.Stack = stack.ID
			return nil
		}
	}
	return fmt.Errorf("selected stack %q not found in registry", label)
}

// promptPackageManager asks npm vs yarn. Only reached when yarn is present;
// npm is assumed otherwise.
func promptPackageManager(s *Session) error {
	prompt := &survey.Select{
		Message: "Package manager",
		Options: []string{shell.ManagerNpm, shell.ManagerYarn},
		Default: shell.ManagerNpm,
	}
	return survey.AskOne(prompt, &s.PackageManager)
}

// deployChoices lists the selectable deployment tools for the detected
// capabilities. "none" is always offered first.
func deployChoices(caps probe.Capabilities) []string {
	choices := []string{"none"}
	if caps.Now {
		choices = append(choices, shell.DeployNow)
	}
	if caps.Surge {
		choices = append(choices, shell.DeploySurge)
	}
	return choices
}

// promptDeployTool asks which deployment CLI to register, if any.
func promptDeployTool(s *Session) error {
	var choice string
	prompt := &survey.Select{
		Message: "Deploy with",
		Options: deployChoices(s.Caps),
		Default: "none",
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	if choice != "none" {
		s.DeployTool = choice
	}
	return nil
}

// promptGit asks whether to initialize a git repository.
func promptGit(s *Session) error {
	prompt := &survey.Confirm{
		Message: "Initialize a git repository?",
		Default: true,
	}
	return survey.AskOne(prompt, &s.InitGit)
}
