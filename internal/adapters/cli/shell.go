package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"paradereg/internal/domain/entities"
)

const shellPrompt = "desfile> "

func shellCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session; participants live until exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell reads one command per line until EOF, quit or exit. Pending
// feedback is printed and acknowledged after every command.
func (a *App) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, shellPrompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, shellPrompt)
			continue
		}
		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			fmt.Fprint(out, shellPrompt)
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}

		root := a.shellRoot()
		root.SetArgs(args)
		root.SetOut(out)
		root.SetErr(out)
		if err := root.ExecuteContext(ctx); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
		a.renderFeedback(out)
		a.view.Acknowledge()
		fmt.Fprint(out, shellPrompt)
	}
	return scanner.Err()
}

// shellRoot builds a fresh command tree so flag values never leak between lines.
func (a *App) shellRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	var add participantFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a participant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := add.draft(a.loc)
			if err != nil {
				return a.inputError(err)
			}
			a.view.Register(cmd.Context(), draft)
			return nil
		},
	}
	add.bind(addCmd)

	var upd participantFlags
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			all := a.participants.ListParticipants(cmd.Context())
			current := entities.Participant{ID: id}
			if i := slices.IndexFunc(all, func(p entities.Participant) bool { return p.ID == id }); i >= 0 {
				current = all[i]
			}
			changed, err := upd.applyChanged(cmd, current, a.loc)
			if err != nil {
				return a.inputError(err)
			}
			a.view.Update(cmd.Context(), changed)
			return nil
		},
	}
	upd.bind(updateCmd)

	root.AddCommand(
		addCmd,
		updateCmd,
		idCommand("delete <id>", "Delete a participant", func(ctx context.Context, id int) { a.view.Delete(ctx, id) }),
		idCommand("toggle <id>", "Switch a participant between active and inactive", func(ctx context.Context, id int) { a.view.ToggleActive(ctx, id) }),
		&cobra.Command{
			Use:   "type [code]",
			Short: "Filter by participant type; no code clears it",
			Args:  cobra.MaximumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) == 0 {
					a.view.SetTypeFilter(nil)
					return
				}
				t := entities.ParseParticipantType(args[0])
				a.view.SetTypeFilter(&t)
			},
		},
		&cobra.Command{
			Use:   "category [code]",
			Short: "Filter by category; no code clears it",
			Args:  cobra.MaximumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) == 0 {
					a.view.SetCategoryFilter(nil)
					return
				}
				c := entities.ParseParticipantCategory(args[0])
				a.view.SetCategoryFilter(&c)
			},
		},
		&cobra.Command{
			Use:   "search [text...]",
			Short: "Search name, email and phone",
			Run: func(cmd *cobra.Command, args []string) {
				a.view.SetSearchQuery(strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Reset type, category and search",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				a.view.ClearFilters()
			},
		},
		&cobra.Command{
			Use:   "sort <option>",
			Short: "Sort the current listing (" + sortCodes() + ")",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				opt, ok := entities.ParseSortOption(args[0])
				if !ok {
					return fmt.Errorf("unknown sort %q", args[0])
				}
				a.view.Sort(opt)
				fmt.Fprintln(cmd.OutOrStdout(), a.sortLabel(opt))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show the current listing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.renderList(cmd.OutOrStdout(), a.view.State().Filtered)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.renderStats(cmd.OutOrStdout(), a.view.State().Statistics)
			},
		},
	)
	return root
}

func idCommand(use, short string, fn func(ctx context.Context, id int)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fn(cmd.Context(), id)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

var errUnterminatedQuote = errors.New("unterminated quote")

// splitArgs splits a line on whitespace; double or single quotes group words.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}
