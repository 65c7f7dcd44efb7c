package cmd

import (
	"fmt"
	"sort"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/spf13/cobra"
)

var caseStyles = []string{"pascal", "camel", "kebab", "snake", "title", "capitalize", "decapitalize"}

// transform runs op over the command input and prints the result
func (a *app) transform(cmd *cobra.Command, req *service.TransformRequest, args []string) error {
	text, err := a.input(cmd, args)
	if err != nil {
		return err
	}
	req.Text = text
	res, err := a.svc.Transform(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case res.Checks != nil:
		names := make([]string, 0, len(res.Checks))
		for name := range res.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%-20s %t\n", name, res.Checks[name])
		}
	case res.Words != nil:
		fmt.Fprintln(out, strings.Join(res.Words, " "))
	default:
		fmt.Fprintln(out, res.Text)
	}
	return nil
}

func newCaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "case <style> [text...]",
		Short: "Convert text to a case style",
		Long: `Convert text to a case style. Words are split on case changes,
digits and separators first.

Styles: ` + strings.Join(caseStyles, ", ") + `

Examples:
  textkit case snake parseHTTPResponse
  textkit case pascal hello_world`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: caseStyles,
		RunE: func(cmd *cobra.Command, args []string) error {
			style := strings.ToLower(args[0])
			valid := false
			for _, s := range caseStyles {
				valid = valid || s == style
			}
			if !valid {
				return tkerror.Newf("unknown case style %q", args[0]).
					WithCode(tkerror.CodeInvalidInput).
					WithDetail("known", strings.Join(caseStyles, ","))
			}
			return a.transform(cmd, &service.TransformRequest{Op: style}, args[1:])
		},
	}
}

func newSanitizeCmd(a *app) *cobra.Command {
	var keepSpace bool
	cmd := &cobra.Command{
		Use:   "sanitize [text...]",
		Short: "Remove everything except letters and digits",
		RunE: func(cmd *cobra.Command, args []string) error {
			op := "sanitize"
			if keepSpace {
				op = "sanitize-keep-space"
			}
			return a.transform(cmd, &service.TransformRequest{Op: op}, args)
		},
	}
	cmd.Flags().BoolVarP(&keepSpace, "keep-whitespace", "w", false, "keep whitespace between words")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text into words on case changes and separators",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, &service.TransformRequest{Op: "split"}, args)
		},
	}
}

func newSwapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "swap [text...]",
		Short: "Swap upper and lower case",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, &service.TransformRequest{Op: "swap"}, args)
		},
	}
}

func newPadCmd(a *app) *cobra.Command {
	var length int
	var token, side string
	cmd := &cobra.Command{
		Use:   "pad [text...]",
		Short: "Pad text to a length with a token",
		Long: `Pad text to --length grapheme clusters by repeating --token.
--side is both (default), left or right.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var op string
			switch strings.ToLower(side) {
			case "both", "center":
				op = "pad"
			case "left":
				op = "pad-left"
			case "right":
				op = "pad-right"
			default:
				return tkerror.Newf("unknown side %q", side).
					WithCode(tkerror.CodeInvalidInput).
					WithDetail("flag", "side")
			}
			return a.transform(cmd, &service.TransformRequest{Op: op, Length: length, Token: token}, args)
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 0, "target length")
	cmd.Flags().StringVarP(&token, "token", "t", " ", "padding token")
	cmd.Flags().StringVar(&side, "side", "both", "side to pad: both, left or right")
	return cmd
}

func newTrimCmd(a *app) *cobra.Command {
	var keep, remove int
	var from string
	cmd := &cobra.Command{
		Use:   "trim [text...]",
		Short: "Keep or remove characters at one end of the text",
		Long: `Trim text counted in grapheme clusters. Exactly one of --keep and
--remove is required; --from picks the end (left or right).

Examples:
  textkit trim --keep 3 --from left abcdef     # abc
  textkit trim --remove 2 --from right abcdef  # abcd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keepSet, removeSet := cmd.Flags().Changed("keep"), cmd.Flags().Changed("remove")
			if keepSet == removeSet {
				return tkerror.New("exactly one of --keep and --remove is required").
					WithCode(tkerror.CodeInvalidInput)
			}
			side := strings.ToLower(from)
			if side != "left" && side != "right" {
				return tkerror.Newf("unknown side %q", from).
					WithCode(tkerror.CodeInvalidInput).
					WithDetail("flag", "from")
			}
			req := &service.TransformRequest{Op: "trim-" + side + "-keeping", Length: keep}
			if removeSet {
				req = &service.TransformRequest{Op: "trim-" + side + "-removing", Length: remove}
			}
			return a.transform(cmd, req, args)
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 0, "number of characters to keep")
	cmd.Flags().IntVar(&remove, "remove", 0, "number of characters to remove")
	cmd.Flags().StringVar(&from, "from", "left", "end to work from: left or right")
	return cmd
}

func newTruncateCmd(a *app) *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "truncate [text...]",
		Short: "Shorten text to a length, ending with an ellipsis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, &service.TransformRequest{Op: "truncate", Length: length}, args)
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 80, "maximum length including the ellipsis")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [text...]",
		Short: "Print the content checks for the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, &service.TransformRequest{Op: "check"}, args)
		},
	}
}

func newTransformCmd(a *app) *cobra.Command {
	var length int
	var token string
	cmd := &cobra.Command{
		Use:   "transform <op> [text...]",
		Short: "Run any named transform",
		Long: `Run a named transform. --length and --token feed the padding,
trimming and truncating transforms.

Transforms: ` + strings.Join(service.TransformNames(), ", "),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: service.TransformNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transform(cmd, &service.TransformRequest{Op: args[0], Length: length, Token: token}, args[1:])
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 0, "length argument")
	cmd.Flags().StringVarP(&token, "token", "t", "", "token argument")
	return cmd
}
