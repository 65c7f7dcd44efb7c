package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/textkit/foundation/utils/patternx"
	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/msto63/textkit/internal/tui/playground"
	"github.com/spf13/cobra"
)

// patternFlags are shared by the commands that take a pattern
type patternFlags struct {
	ignoreCase  bool
	options     []string
	builtin     bool
	anchored    bool
	transparent bool
}

func (f *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().StringSliceVarP(&f.options, "option", "o", nil,
		"compile option: case-insensitive, comments, literal, dot-all, multiline, explicit-capture")
	cmd.Flags().BoolVarP(&f.builtin, "builtin", "b", false, "treat the pattern argument as a built-in pattern name")
	cmd.Flags().BoolVar(&f.anchored, "anchored", false, "only match at the start of the range")
	cmd.Flags().BoolVar(&f.transparent, "transparent", false, "let lookaround see past the range bounds")
}

func (f *patternFlags) spec(pattern string) service.PatternSpec {
	spec := service.PatternSpec{Options: append([]string(nil), f.options...)}
	if f.builtin {
		spec.Name = pattern
	} else {
		spec.Source = pattern
	}
	if f.ignoreCase {
		spec.Options = append(spec.Options, "case-insensitive")
	}
	return spec
}

func (a *app) match(cmd *cobra.Command, f *patternFlags, args []string) (*service.MatchResult, string, error) {
	text, err := a.input(cmd, args[1:])
	if err != nil {
		return nil, "", err
	}
	res, err := a.svc.Match(cmd.Context(), &service.MatchRequest{
		Pattern:     f.spec(args[0]),
		Text:        text,
		Anchored:    f.anchored,
		Transparent: f.transparent,
	})
	return res, text, err
}

func newMatchCmd(a *app) *cobra.Command {
	var f patternFlags
	var highlight bool
	cmd := &cobra.Command{
		Use:   "match <pattern> [text...]",
		Short: "Print every match of a pattern",
		Long: `Print every match of a pattern, one per line.

With --highlight the whole text is printed with the matches marked.

Examples:
  textkit match '\d+' 'a1 b22 c333'
  textkit match -b email < contacts.txt
  textkit match --highlight -i 'go' 'Go, go, GO!'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, text, err := a.match(cmd, &f, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if highlight {
				fmt.Fprintln(out, playground.Highlight(text, res.Ranges, playground.MatchStyle.Render))
				return nil
			}
			for _, m := range res.Matches {
				fmt.Fprintln(out, m)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&highlight, "highlight", false, "print the text with the matches highlighted")
	return cmd
}

func newRangesCmd(a *app) *cobra.Command {
	var f patternFlags
	cmd := &cobra.Command{
		Use:   "ranges <pattern> [text...]",
		Short: "Print the byte ranges of every match",
		Long: `Print the byte range of every match as [start,end). Ranges are
widened to whole grapheme clusters.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := a.match(cmd, &f, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range res.Ranges {
				fmt.Fprintln(out, r.String())
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newTestCmd(a *app) *cobra.Command {
	var f patternFlags
	var quiet bool
	cmd := &cobra.Command{
		Use:   "test <pattern> [text...]",
		Short: "Report whether a pattern matches",
		Long: `Print true when the pattern matches and false otherwise. The match
status is printed too when the pattern failed to compile or timed out.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := a.match(cmd, &f, args)
			if err != nil {
				return err
			}
			if quiet {
				if !res.Matched {
					return errNoMatch
				}
				return nil
			}
			out := cmd.OutOrStdout()
			if res.Matched || res.Status == "no-match" {
				fmt.Fprintln(out, res.Matched)
			} else {
				fmt.Fprintf(out, "%t (%s)\n", res.Matched, res.Status)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing and fail when there is no match")
	return cmd
}

func newReplaceCmd(a *app) *cobra.Command {
	var f patternFlags
	var start, end int
	cmd := &cobra.Command{
		Use:   "replace <pattern> <template> [text...]",
		Short: "Replace every match using a template",
		Long: `Replace every match of a pattern. The template expands $0, $1..$n,
${name} and $$.

--start and --end restrict the replacement to a byte range of the text.

Examples:
  textkit replace '(\w+)@(\w+)' '$2:$1' joe@home
  textkit replace --start 4 'o' 0 'foo boo'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args[2:])
			if err != nil {
				return err
			}
			req := &service.ReplaceRequest{
				Pattern:     f.spec(args[0]),
				Text:        text,
				Template:    args[1],
				Anchored:    f.anchored,
				Transparent: f.transparent,
			}
			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				if !cmd.Flags().Changed("end") {
					end = len(text)
				}
				req.Bounds = &patternx.MatchRange{Start: start, End: end}
			}
			res, err := a.svc.Replace(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&start, "start", 0, "start of the byte range to replace in")
	cmd.Flags().IntVar(&end, "end", 0, "end of the byte range to replace in (default: end of text)")
	return cmd
}

func newOccurrencesCmd(a *app) *cobra.Command {
	var f patternFlags
	cmd := &cobra.Command{
		Use:   "occurrences <pattern> <token> [text...]",
		Short: "Replace every match with a literal token",
		Long: `Replace every match of a pattern with a token. The token is inserted
as is; $ has no special meaning.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args[2:])
			if err != nil {
				return err
			}
			res, err := a.svc.Replace(cmd.Context(), &service.ReplaceRequest{
				Pattern:     f.spec(args[0]),
				Text:        text,
				Template:    args[1],
				Occurrences: true,
				Anchored:    f.anchored,
				Transparent: f.transparent,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newPatternsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := a.svc.Patterns(cmd.Context())
			if err != nil {
				return err
			}
			width := 0
			for _, info := range infos {
				width = max(width, len(info.Name))
			}
			out := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(out, "%s%s  %s\n", info.Name, strings.Repeat(" ", width-len(info.Name)), info.Source)
			}
			return nil
		},
	}
}
