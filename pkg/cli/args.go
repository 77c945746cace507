package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// operandArgs rewrites args so that negative numbers reach the command as
// operands instead of being parsed as shorthand flags ("-3" would otherwise
// be read as flag '3'). The command path and all flags stay in front; every
// positional argument moves behind a "--" in its original order.
//
//	add 5 -3 --json  =>  add --json -- 5 -3
//
// Args are returned unchanged when no negative number appears before an
// explicit "--".
func operandArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}
	depth := strings.Count(cmd.CommandPath(), " ")

	var path, flags, operands []string
	negative := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			negative = true
			operands = append(operands, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(path) < depth:
			path = append(path, arg)
		default:
			operands = append(operands, arg)
		}
	}

	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, path...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, operands...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]
	return (c >= '0' && c <= '9') || c == '.'
}

// takesValue reports whether arg is a known flag that consumes the next argument
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	if name := strings.TrimPrefix(arg, "--"); name != arg {
		flag = lookupFlag(cmd, name)
	} else if short := arg[1:]; len(short) == 1 {
		flag = cmd.Flags().ShorthandLookup(short)
		if flag == nil {
			flag = cmd.InheritedFlags().ShorthandLookup(short)
		}
	}
	return flag != nil && flag.NoOptDefVal == ""
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.InheritedFlags().Lookup(name)
}
