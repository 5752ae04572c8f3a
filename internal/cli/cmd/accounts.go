package cmd

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/chatshell/internal/cli/model"
	"github.com/bnema/chatshell/internal/cli/styles"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/config"
)

var (
	accountsJSON    bool
	accountsYes     bool
	accountName     string
	accountColor    string
	accountEmoji    string
	accountActivate bool
)

var accountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"account", "acc"},
	Short:   "Manage chat accounts",
	Long: `List and edit the accounts registry.

The primary account always exists, always sorts first and cannot be removed.`,
	RunE: runAccountsList,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts in display order",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account with a fresh isolated session",
	Long: `Add an account. Without --name it is called "Account N"; without --color
it takes the next color of the palette.`,
	Args: cobra.NoArgs,
	RunE: runAccountsAdd,
}

var accountsRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an account and delete its session data",
	Args:    cobra.ExactArgs(1),
	RunE:    runAccountsRemove,
}

var accountsRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Change an account's display name, emoji or color",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountsRename,
}

var accountsReorderCmd = &cobra.Command{
	Use:       "reorder <id> up|down",
	Short:     "Move an account one step in the display order",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"up", "down"},
	RunE:      runAccountsReorder,
}

var accountsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make an account the one shown on next start",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsActivate,
}

var accountsManageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Manage accounts interactively",
	Args:  cobra.NoArgs,
	RunE:  runAccountsManage,
}

var accountsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of accounts.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.AccountsSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsAddCmd)
	accountsCmd.AddCommand(accountsRemoveCmd)
	accountsCmd.AddCommand(accountsRenameCmd)
	accountsCmd.AddCommand(accountsReorderCmd)
	accountsCmd.AddCommand(accountsActivateCmd)
	accountsCmd.AddCommand(accountsManageCmd)
	accountsCmd.AddCommand(accountsSchemaCmd)

	accountsCmd.PersistentFlags().BoolVar(&accountsJSON, "json", false, "print accounts as JSON")

	accountsAddCmd.Flags().StringVarP(&accountName, "name", "n", "", "display name")
	accountsAddCmd.Flags().StringVarP(&accountColor, "color", "c", "", "accent color as #rrggbb")
	accountsAddCmd.Flags().StringVarP(&accountEmoji, "emoji", "e", "", "emoji shown next to the name")
	accountsAddCmd.Flags().BoolVar(&accountActivate, "activate", false, "make the new account active")

	accountsRenameCmd.Flags().StringVarP(&accountColor, "color", "c", "", "new accent color as #rrggbb")
	accountsRenameCmd.Flags().StringVarP(&accountEmoji, "emoji", "e", "", "new emoji")

	accountsRemoveCmd.Flags().BoolVarP(&accountsYes, "yes", "y", false, "skip confirmation prompt")
}

func runAccountsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	if _, err := a.Core.Accounts.EnsureDefaultAccount(ctx); err != nil {
		return err
	}
	accounts, err := a.Core.Accounts.ListSorted(ctx)
	if err != nil {
		return err
	}

	if accountsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(accounts)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewAccountsRenderer(a.Theme).RenderList(accounts))
	return nil
}

func runAccountsAdd(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	renderer := styles.NewAccountsRenderer(a.Theme)

	if _, err := a.Core.Accounts.EnsureDefaultAccount(ctx); err != nil {
		return err
	}
	draft, err := a.Core.Accounts.Draft(ctx, uuid.NewString(), accountName, accountColor, accountEmoji)
	if err != nil {
		return err
	}
	if err := a.Core.Accounts.Add(ctx, draft); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	if accountActivate {
		if err := a.Core.Accounts.SetActive(ctx, draft.ID); err != nil {
			return err
		}
	}

	added, err := a.Core.Accounts.Get(ctx, draft.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderAdded(*added))
	return nil
}

func runAccountsRemove(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	renderer := styles.NewAccountsRenderer(a.Theme)
	id := args[0]

	if id == entity.DefaultAccountID {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(entity.ErrProtectedAccount))
		return entity.ErrProtectedAccount
	}
	target, err := a.Core.Accounts.Get(ctx, id)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	if !accountsYes {
		confirmed, err := runConfirm(a.Theme, fmt.Sprintf("Remove %s and its session data?", target.Name))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := a.Core.Accounts.Remove(ctx, id); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderRemoved(id))
	return nil
}

func runAccountsRename(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	renderer := styles.NewAccountsRenderer(a.Theme)

	current, err := a.Core.Accounts.Get(ctx, args[0])
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	emoji, color := current.Emoji, current.Color
	if accountEmoji != "" {
		emoji = accountEmoji
	}
	if accountColor != "" {
		color = accountColor
	}

	if err := a.Core.Accounts.UpdateIdentity(ctx, current.ID, args[1], emoji, color); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	updated, err := a.Core.Accounts.Get(ctx, current.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderUpdated(*updated))
	return nil
}

func runAccountsReorder(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewAccountsRenderer(a.Theme)

	dir, err := entity.ParseDirection(args[1])
	if err != nil {
		return err
	}
	if err := a.Core.Accounts.Reorder(a.Ctx(), args[0], dir); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderMoved(args[0], dir))
	return nil
}

func runAccountsActivate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	renderer := styles.NewAccountsRenderer(a.Theme)

	if _, err := a.Core.Accounts.Get(ctx, args[0]); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	if err := a.Core.Accounts.SetActive(ctx, args[0]); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	active, err := a.Core.Accounts.Active(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderActivated(*active))
	return nil
}

func runAccountsManage(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	m := model.NewAccountsModel(a.Ctx(), a.Theme, a.Core.Accounts, uuid.NewString)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// runConfirm asks a yes/no question on the terminal.
func runConfirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmProgram{model: styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, err
	}
	result, ok := final.(confirmProgram)
	return ok && result.model.Result(), nil
}

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	model styles.ConfirmModel
}

func (p confirmProgram) Init() tea.Cmd { return nil }

func (p confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return p, tea.Quit
	}
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	if p.model.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

func (p confirmProgram) View() string {
	if p.model.Done() {
		return ""
	}
	return p.model.View()
}
