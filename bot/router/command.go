package router

import (
	"fmt"
	"sort"
	"strings"
)

// Cogs group commands in the help listing
const (
	CogFun    = "fun"
	CogConfig = "config"
)

// OptionType is the kind of value an option accepts
type OptionType int

const (
	OptionString OptionType = iota
	OptionInteger
	OptionUser
	OptionChannel
	OptionRole
)

// Option describes one argument of a command
type Option struct {
	Name        string
	Description string
	Type        OptionType
	Required    bool
	Rest        bool // text commands pass the rest of the line
	Choices     []string
}

// HandlerFunc runs a command
type HandlerFunc func(c *Context) error

// Command describes a command once for both text and slash invocation
type Command struct {
	Name        string
	Aliases     []string
	Cog         string
	Description string
	Options     []Option
	Subcommands []*Command
	GuildOnly   bool
	ManageGuild bool
	Handler     HandlerFunc

	parent *Command
}

// IsGroup reports whether the command only dispatches to subcommands
func (c *Command) IsGroup() bool {
	return len(c.Subcommands) > 0
}

// Path returns the names from the root command down to c
func (c *Command) Path() []string {
	if c.parent == nil {
		return []string{c.Name}
	}
	return append(c.parent.Path(), c.Name)
}

// FullName is the space separated path, e.g. "autopost setup"
func (c *Command) FullName() string {
	return strings.Join(c.Path(), " ")
}

// Usage renders the text command syntax, e.g. ".pvp <member1> [member2]"
func (c *Command) Usage(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(c.FullName())
	if c.IsGroup() {
		names := make([]string, 0, len(c.Subcommands))
		for _, sub := range c.Subcommands {
			names = append(names, sub.Name)
		}
		fmt.Fprintf(&b, " <%s>", strings.Join(names, "|"))
		return b.String()
	}
	for _, opt := range c.Options {
		name := opt.Name
		if len(opt.Choices) > 0 {
			name = strings.Join(opt.Choices, "|")
		}
		if opt.Rest {
			name += "..."
		}
		if opt.Required {
			fmt.Fprintf(&b, " <%s>", name)
		} else {
			fmt.Fprintf(&b, " [%s]", name)
		}
	}
	return b.String()
}

// RequiresGuild reports whether c or any parent group is guild only
func (c *Command) RequiresGuild() bool {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.GuildOnly {
			return true
		}
	}
	return false
}

// RequiresManageGuild reports whether c or any parent group needs Manage Server
func (c *Command) RequiresManageGuild() bool {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.ManageGuild {
			return true
		}
	}
	return false
}

// Subcommand finds a subcommand by name or alias
func (c *Command) Subcommand(name string) *Command {
	name = strings.ToLower(name)
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
		for _, alias := range sub.Aliases {
			if alias == name {
				return sub
			}
		}
	}
	return nil
}

// Registry holds every command by name and alias
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Command)}
}

// Register adds commands. Names and aliases must be unique and every
// command needs a handler or subcommands.
func (r *Registry) Register(cmds ...*Command) error {
	for _, cmd := range cmds {
		if err := validateCommand(cmd); err != nil {
			return err
		}
		keys := append([]string{cmd.Name}, cmd.Aliases...)
		for _, key := range keys {
			if _, exists := r.byName[key]; exists {
				return fmt.Errorf("command name %q registered twice", key)
			}
		}
		for _, key := range keys {
			r.byName[key] = cmd
		}
		linkParents(cmd)
		r.commands = append(r.commands, cmd)
	}
	return nil
}

// MustRegister is Register for static command tables
func (r *Registry) MustRegister(cmds ...*Command) {
	if err := r.Register(cmds...); err != nil {
		panic(err)
	}
}

// Lookup finds a top level command by name or alias
func (r *Registry) Lookup(name string) *Command {
	return r.byName[strings.ToLower(name)]
}

// Find resolves a space separated path such as "autopost setup"
func (r *Registry) Find(path string) *Command {
	fields := strings.Fields(path)
	if len(fields) == 0 {
		return nil
	}
	cmd := r.Lookup(fields[0])
	for _, name := range fields[1:] {
		if cmd == nil {
			return nil
		}
		cmd = cmd.Subcommand(name)
	}
	return cmd
}

// Commands returns the top level commands in registration order
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.commands...)
}

// ByCog groups the top level commands by cog, each sorted by name
func (r *Registry) ByCog() map[string][]*Command {
	cogs := make(map[string][]*Command)
	for _, cmd := range r.commands {
		cogs[cmd.Cog] = append(cogs[cmd.Cog], cmd)
	}
	for _, cmds := range cogs {
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	}
	return cogs
}

func validateCommand(cmd *Command) error {
	if cmd.Name == "" || cmd.Name != strings.ToLower(cmd.Name) {
		return fmt.Errorf("command name %q must be lower case and non-empty", cmd.Name)
	}
	if cmd.Handler == nil && !cmd.IsGroup() {
		return fmt.Errorf("command %q has neither handler nor subcommands", cmd.Name)
	}
	seenOptional := false
	for i, opt := range cmd.Options {
		if opt.Rest && (opt.Type != OptionString || i != len(cmd.Options)-1) {
			return fmt.Errorf("command %q: only the last string option may take the rest of the line", cmd.Name)
		}
		if opt.Required && seenOptional {
			return fmt.Errorf("command %q: required option %q follows an optional one", cmd.Name, opt.Name)
		}
		if !opt.Required {
			seenOptional = true
		}
	}
	for _, sub := range cmd.Subcommands {
		if err := validateCommand(sub); err != nil {
			return err
		}
	}
	return nil
}

func linkParents(cmd *Command) {
	for _, sub := range cmd.Subcommands {
		sub.parent = cmd
		linkParents(sub)
	}
}
