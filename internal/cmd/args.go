package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// normalizeArgs rewrites flag tokens to their canonical lowercase spelling
// so that -L and --LINES match -l and --lines. Positional arguments and
// flag values keep their case. Unknown flags are removed, and a value flag
// given as the last token with no value is dropped, leaving the flag at its
// default. Arguments after "--" are passed through unchanged.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	flags := cmd.Flags()

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		token, value, hasValue := strings.Cut(arg, "=")
		f := lookupFlag(flags, token)
		if f == nil {
			// Unknown flags are dropped here; left to the parser they would
			// swallow the following positional argument as their value.
			if len(arg) < 2 || arg[0] != '-' {
				out = append(out, arg)
			}
			continue
		}

		canonical := "-" + f.Shorthand
		if strings.HasPrefix(token, "--") {
			canonical = "--" + f.Name
		}
		if hasValue {
			out = append(out, canonical+"="+value)
			continue
		}

		if !takesValue(f) {
			out = append(out, canonical)
			continue
		}
		if i+1 == len(args) {
			break
		}
		out = append(out, canonical, args[i+1])
		i++
	}
	return out
}

// lookupFlag finds the flag named by token ("-x" or "--name"), ignoring case.
func lookupFlag(fs *pflag.FlagSet, token string) *pflag.Flag {
	switch {
	case strings.HasPrefix(token, "--") && len(token) > 2:
		name := token[2:]
		if f := fs.Lookup(name); f != nil {
			return f
		}
		return fs.Lookup(strings.ToLower(name))
	case strings.HasPrefix(token, "-") && len(token) == 2:
		short := token[1:]
		if f := fs.ShorthandLookup(short); f != nil {
			return f
		}
		return fs.ShorthandLookup(strings.ToLower(short))
	}
	return nil
}

func takesValue(f *pflag.Flag) bool {
	return f.Value.Type() != "bool" && f.NoOptDefVal == ""
}
