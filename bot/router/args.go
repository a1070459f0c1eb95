package router

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"obsidion/bot/common"
)

// ArgErrorKind tells a missing argument from a malformed one
type ArgErrorKind int

const (
	ArgMissing ArgErrorKind = iota
	ArgInvalid
)

// ArgError reports an argument that could not be bound to its option
type ArgError struct {
	Option Option
	Value  string
	Kind   ArgErrorKind
}

func (e *ArgError) Error() string {
	if e.Kind == ArgMissing {
		return fmt.Sprintf("missing argument %s", e.Option.Name)
	}
	return fmt.Sprintf("invalid value %q for argument %s", e.Value, e.Option.Name)
}

// Args holds the bound, validated arguments of one invocation
type Args struct {
	values map[string]string
	ids    map[string]int64
}

// Has reports whether the option was given
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns a string option, or "" when it was not given
func (a Args) String(name string) string {
	return a.values[name]
}

// Int returns an integer option
func (a Args) Int(name string) (int64, bool) {
	v, ok := a.ids[name]
	return v, ok
}

// ID returns the snowflake of a user, channel or role option
func (a Args) ID(name string) (int64, bool) {
	v, ok := a.ids[name]
	return v, ok
}

// NewArgs builds already validated arguments. Handlers under test use it
// to skip binding.
func NewArgs(values map[string]string) Args {
	a := Args{values: make(map[string]string), ids: make(map[string]int64)}
	for k, v := range values {
		a.values[k] = v
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			a.ids[k] = n
		}
	}
	return a
}

// bind validates raw option values against the command's options
func bind(cmd *Command, raw map[string]string) (Args, error) {
	args := Args{values: make(map[string]string), ids: make(map[string]int64)}
	for _, opt := range cmd.Options {
		v := strings.TrimSpace(raw[opt.Name])
		if v == "" {
			if opt.Required {
				return Args{}, &ArgError{Option: opt, Kind: ArgMissing}
			}
			continue
		}

		invalid := &ArgError{Option: opt, Value: v, Kind: ArgInvalid}
		switch opt.Type {
		case OptionString:
			if len(opt.Choices) > 0 {
				choice, ok := matchChoice(opt.Choices, v)
				if !ok {
					return Args{}, invalid
				}
				v = choice
			}
		case OptionInteger:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return Args{}, invalid
			}
			args.ids[opt.Name] = n
		case OptionUser, OptionChannel, OptionRole:
			id, ok := parseMention(opt.Type, v)
			if !ok {
				return Args{}, invalid
			}
			args.ids[opt.Name] = id
		}
		args.values[opt.Name] = v
	}
	return args, nil
}

func matchChoice(choices []string, v string) (string, bool) {
	for _, c := range choices {
		if strings.EqualFold(c, v) {
			return c, true
		}
	}
	return "", false
}

func parseMention(t OptionType, v string) (int64, bool) {
	switch t {
	case OptionUser:
		return common.ParseUserMention(v)
	case OptionChannel:
		return common.ParseChannelMention(v)
	case OptionRole:
		return common.ParseRoleMention(v)
	}
	return 0, false
}

// textValues assigns tokens to options by position. A rest-of-line option
// takes the raw remainder of line, quotes included.
func textValues(cmd *Command, line string, tokens []token) map[string]string {
	raw := make(map[string]string, len(cmd.Options))
	for i, opt := range cmd.Options {
		if i >= len(tokens) {
			break
		}
		if opt.Rest {
			raw[opt.Name] = strings.TrimSpace(line[tokens[i].start:])
			break
		}
		raw[opt.Name] = tokens[i].text
	}
	return raw
}

type token struct {
	text  string
	start int
}

// tokenize splits line on white space. Double quotes group words and are
// removed; an unterminated quote runs to the end of the line.
func tokenize(line string) []token {
	var tokens []token
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		var b strings.Builder
		quoted := false
		for i < len(line) {
			r, size = utf8.DecodeRuneInString(line[i:])
			if r == '"' {
				quoted = !quoted
				i += size
				continue
			}
			if !quoted && unicode.IsSpace(r) {
				break
			}
			b.WriteRune(r)
			i += size
		}
		tokens = append(tokens, token{text: b.String(), start: start})
	}
	return tokens
}

// Tokenize returns the words of line as text commands see them
func Tokenize(line string) []string {
	tokens := tokenize(line)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.text
	}
	return words
}
