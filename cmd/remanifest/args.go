package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the command tree on args after preparing them with prepareArgs.
func execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(prepareArgs(root, args))
	return root.ExecuteContext(ctx)
}

// prepareArgs removes flags the root command does not define, so an unknown
// flag can never consume the target path as its value. When the first
// positional names an existing directory the subcommands are detached and the
// positional always reaches the rename run, even if it is called "config".
// Arguments addressed to a subcommand are returned unchanged. The result is
// never nil so cobra does not fall back to os.Args.
func prepareArgs(root *cobra.Command, args []string) []string {
	root.InitDefaultHelpFlag()
	flags := root.Flags()

	kept, first := filterFlags(flags, args)
	if first != "" && isDirectory(first) {
		root.RemoveCommand(root.Commands()...)
		return kept
	}
	if first != "" && isSubcommand(root, first) {
		return append([]string{}, args...)
	}
	return kept
}

// filterFlags drops unknown flags from args and returns the remaining tokens
// plus the first positional argument.
func filterFlags(flags *pflag.FlagSet, args []string) ([]string, string) {
	kept := make([]string, 0, len(args))
	first := ""
	positional := func(arg string) {
		if first == "" {
			first = arg
		}
		kept = append(kept, arg)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			kept = append(kept, args[i:]...)
			if first == "" && i+1 < len(args) {
				first = args[i+1]
			}
			return kept, first
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			kept = append(kept, arg)
			if !hasValue && takesValue(flag) && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			token, consumeNext := filterShorthands(flags, arg[1:])
			if token != "" {
				kept = append(kept, "-"+token)
			}
			if consumeNext && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		default:
			positional(arg)
		}
	}
	return kept, first
}

// filterShorthands keeps the known letters of a shorthand cluster such as
// "-rm". A letter that takes a value ends the cluster: the rest of the token is
// its value, or the next argument when nothing is left.
func filterShorthands(flags *pflag.FlagSet, cluster string) (string, bool) {
	var out strings.Builder
	for i := 0; i < len(cluster); i++ {
		letter := cluster[i : i+1]
		if letter == "=" {
			break
		}
		flag := flags.ShorthandLookup(letter)
		if flag == nil {
			continue
		}
		out.WriteString(letter)
		if takesValue(flag) {
			rest := strings.TrimPrefix(cluster[i+1:], "=")
			if rest != "" {
				out.WriteString(rest)
				return out.String(), false
			}
			return out.String(), true
		}
	}
	return out.String(), false
}

func takesValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isSubcommand(root *cobra.Command, name string) bool {
	if name == "help" {
		return root.HasSubCommands()
	}
	for _, cmd := range root.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return false
}
