package markdown

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/rjkroege/mdblock/rich"
)

//go:embed rules.yaml
var defaultRules []byte

// ErrBadRule is wrapped by every rule validation error.
var ErrBadRule = errors.New("bad markup rule")

// Rule describes one kind of markup to hide.
type Rule struct {
	Name        string `yaml:"name"`
	When        string `yaml:"when"`
	Kind        string `yaml:"kind"`
	Pattern     string `yaml:"pattern"`
	Group       int    `yaml:"group"`
	Unescaped   bool   `yaml:"unescaped"`
	Transform   string `yaml:"transform"`
	Replacement string `yaml:"replacement"`
	Fill        bool   `yaml:"fill"`

	re        *regexp.Regexp
	transform rich.Transform
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads and validates a YAML rule list.
func LoadRules(r io.Reader) ([]Rule, error) {
	var f ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding markup rules: %w", err)
	}
	for i := range f.Rules {
		if err := f.Rules[i].compile(); err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, f.Rules[i].Name, err)
		}
	}
	return f.Rules, nil
}

// DefaultRules returns the built-in rules.
func DefaultRules() ([]Rule, error) {
	return LoadRules(bytes.NewReader(defaultRules))
}

// MustDefaultRules is like DefaultRules but panics on error.
func MustDefaultRules() []Rule {
	rules, err := DefaultRules()
	if err != nil {
		panic(err)
	}
	return rules
}

func (r *Rule) compile() error {
	if r.Name == "" {
		return fmt.Errorf("%w: missing name", ErrBadRule)
	}
	switch r.When {
	case "":
		r.When = "prose"
	case "prose", "code", "any":
	default:
		return fmt.Errorf("%w: when %q", ErrBadRule, r.When)
	}

	switch r.Transform {
	case "removed":
		r.transform = rich.Removed
	case "replaced":
		r.transform = rich.Replaced
		if r.Replacement == "" {
			return fmt.Errorf("%w: replaced without a replacement", ErrBadRule)
		}
	case "blanked":
		r.transform = rich.Blanked
	default:
		return fmt.Errorf("%w: transform %q", ErrBadRule, r.Transform)
	}
	if r.Fill && r.transform != rich.Replaced {
		return fmt.Errorf("%w: fill needs a replacement", ErrBadRule)
	}

	switch r.Kind {
	case "", "pattern":
		r.Kind = "pattern"
		if r.Pattern == "" {
			return fmt.Errorf("%w: missing pattern", ErrBadRule)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadRule, err)
		}
		if r.Group == 0 && re.NumSubexp() > 0 {
			r.Group = 1
		}
		if r.Group > re.NumSubexp() {
			return fmt.Errorf("%w: group %d of %d", ErrBadRule, r.Group, re.NumSubexp())
		}
		r.re = re
	case "link":
		if r.Pattern != "" {
			return fmt.Errorf("%w: link rules take no pattern", ErrBadRule)
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrBadRule, r.Kind)
	}
	return nil
}

// applies reports whether r runs on blocks of kind.
func (r *Rule) applies(kind rich.BlockKind) bool {
	switch r.When {
	case "any":
		return true
	case "code":
		return kind == rich.Code
	}
	return kind == rich.Prose
}
