package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	markerpdf "github.com/alnah/go-markerpdf"
	"github.com/alnah/go-markerpdf/internal/assets"
)

// Shell is a shell that completion scripts can be generated for.
type Shell string

// Supported shells.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned for unknown shells.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType is the completion behavior of a flag's value.
type flagType int

const (
	flagString flagType = iota
	flagBool
	flagNumber
	flagEnum
	flagFile
	flagDir
)

// flagDef describes one flag for completion.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string
	FileGlob []string
}

// commandDef describes a subcommand for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta adds value hints the FlagSet cannot express.
type completionMeta struct {
	Values   func() []string
	FileGlob []string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their value hints. Enum values come
// from the library so new presets and backends show up automatically.
var flagCompletionMeta = map[string]completionMeta{
	"paper-size": {Values: markerpdf.PaperSizeNames},
	"layout":     {Values: func() []string { return []string{string(markerpdf.LayoutSingle), string(markerpdf.LayoutDouble)} }},
	"renderer":   {Values: markerpdf.RendererNames},
	"merger":     {Values: markerpdf.MergerNames},
	"template":   {Values: func() []string { return append([]string{markerpdf.BuiltinTemplate}, assets.TemplateSetNames()...) }},
	"config":     {FileGlob: []string{"*.yaml", "*.yml"}},
	"work-dir":   {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlags reads flag definitions from fs, enriched with completion hints.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "uint", "float64":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case len(meta.FileGlob) > 0:
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// generateFlagDefs reads the generate flags from the real FlagSet.
func generateFlagDefs() []flagDef {
	return extractFlags(newGenerateFlagSet(&generateFlags{}))
}

// getCommands returns the subcommands offered in the first position.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "doctor", Desc: "Check external tools and environment", Flags: []flagDef{
			{Long: "json", Type: flagBool, Desc: "machine-readable output"},
		}},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help"},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %w: %q (supported: bash, zsh, fish)", ErrUsage, ErrUnsupportedShell, shell)
	}
}

// runCompletion handles `markerpdf completion [shell]`.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion takes one shell argument", ErrUsage)
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markerpdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells: bash, zsh, fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(markerpdf completion bash)\"         # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(markerpdf completion zsh)\"          # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:  markerpdf completion fish > ~/.config/fish/completions/markerpdf.fish")
}

// ---- bash ----

func generateBash(w io.Writer) error {
	flags := generateFlagDefs()
	var b strings.Builder

	b.WriteString("# bash completion for markerpdf\n")
	b.WriteString("_markerpdf() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    case \"$prev\" in\n")
	for _, f := range flags {
		var action string
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Values, " "))
		case flagFile:
			action = "COMPREPLY=($(compgen -f -- \"$cur\"))"
		case flagDir:
			action = "COMPREPLY=($(compgen -d -- \"$cur\"))"
		case flagString, flagNumber:
			action = "COMPREPLY=()"
		default:
			continue
		}
		fmt.Fprintf(&b, "        %s)\n            %s\n            return\n            ;;\n", bashPattern(f), action)
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ \"${COMP_WORDS[1]}\" == doctor ]]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"--json\" -- \"$cur\"))\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    if [[ \"${COMP_WORDS[1]}\" == completion ]]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"$cur\"))\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	fmt.Fprintf(&b, "    if [[ \"$cur\" == -* ]]; then\n        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n        return\n    fi\n",
		strings.Join(flagWords(flags), " "))
	fmt.Fprintf(&b, "    if [[ $COMP_CWORD -eq 1 ]]; then\n        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n        return\n    fi\n",
		strings.Join(commandNames(), " "))
	b.WriteString("    COMPREPLY=($(compgen -f -- \"$cur\"))\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _markerpdf markerpdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func bashPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

func commandNames() []string {
	var names []string
	for _, c := range getCommands() {
		names = append(names, c.Name)
	}
	return names
}

// ---- zsh ----

func generateZsh(w io.Writer) error {
	var b strings.Builder

	b.WriteString("#compdef markerpdf\n\n")
	b.WriteString("_markerpdf() {\n")
	b.WriteString("  if (( CURRENT > 2 )) && [[ ${words[2]} == doctor ]]; then\n")
	b.WriteString("    _arguments '--json[machine-readable output]'\n")
	b.WriteString("    return\n")
	b.WriteString("  fi\n")
	b.WriteString("  if (( CURRENT > 2 )) && [[ ${words[2]} == completion ]]; then\n")
	b.WriteString("    _values 'shell' bash zsh fish\n")
	b.WriteString("    return\n")
	b.WriteString("  fi\n\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range getCommands() {
		fmt.Fprintf(&b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n\n")
	b.WriteString("  _arguments -s \\\n")
	for _, f := range generateFlagDefs() {
		fmt.Fprintf(&b, "    %s \\\n", zshSpec(f))
	}
	b.WriteString("    '1: :->first' \\\n")
	b.WriteString("    '*:pdf file:_files -g \"*.pdf\"'\n\n")
	b.WriteString("  case $state in\n")
	b.WriteString("    first) _describe 'command' commands ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_markerpdf \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func zshSpec(f flagDef) string {
	var names string
	if f.Short != "" {
		names = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	} else {
		names = "'--" + f.Long
	}
	spec := names + "[" + zshEscape(f.Desc) + "]"

	switch f.Type {
	case flagBool:
	case flagEnum:
		spec += ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		globs := make([]string, len(f.FileGlob))
		for i, g := range f.FileGlob {
			globs[i] = `"` + g + `"`
		}
		spec += ":file:_files -g " + strings.Join(globs, " ")
	case flagDir:
		spec += ":directory:_files -/"
	default:
		spec += ":" + f.Long + ":"
	}
	return spec + "'"
}

// zshEscape makes text safe inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// ---- fish ----

func generateFish(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# fish completion for markerpdf\n")
	b.WriteString("complete -c markerpdf -f\n\n")

	for _, c := range getCommands() {
		fmt.Fprintf(&b, "complete -c markerpdf -n __fish_use_subcommand -a %s -d %s\n", c.Name, fishQuote(c.Desc))
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c markerpdf -n '__fish_seen_subcommand_from %s' -l %s -d %s\n",
				c.Name, f.Long, fishQuote(f.Desc))
		}
	}
	b.WriteString("complete -c markerpdf -n '__fish_seen_subcommand_from completion' -x -a 'bash zsh fish'\n\n")

	subcommands := strings.Join(commandNames(), " ")
	for _, f := range generateFlagDefs() {
		line := fmt.Sprintf("complete -c markerpdf -n 'not __fish_seen_subcommand_from %s' -l %s", subcommands, f.Long)
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagBool:
		case flagEnum:
			line += " -x -a " + fishQuote(strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		default:
			line += " -x"
		}
		b.WriteString(line + " -d " + fishQuote(f.Desc) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`) + "'"
}
