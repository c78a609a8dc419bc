package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gubarz/mdjoin/internal/buffer"
	"github.com/gubarz/mdjoin/internal/config"
	"github.com/gubarz/mdjoin/internal/logging"
	"github.com/gubarz/mdjoin/internal/mdjoin"
	"github.com/gubarz/mdjoin/internal/output"
	"github.com/gubarz/mdjoin/internal/reflow"
	"github.com/gubarz/mdjoin/internal/ui"
)

var version = "0.1.0"

// reviewFunc is swapped out in tests
var reviewFunc = ui.Review

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "mdjoin [file]",
		Short: "Join soft-wrapped Markdown paragraphs",
		Long: `Merges hard-wrapped Markdown paragraphs into one line each.

List items, blank lines and fenced code blocks are kept as they are.
Reads the file given (or stdin) and prints the result, copies it,
or writes it back over the selected lines.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgPath)
		},
		RunE: runJoin,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "Path to config file (yaml)")
	flags.IntP("start", "s", 0, "First line to join (1-indexed)")
	flags.IntP("end", "e", 0, "Last line to join (inclusive)")
	flags.IntP("wrap", "w", 0, "Reflow joined lines to this many columns")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.Flags().StringP("output", "o", "", "Output mode: print, copy, write")
	rootCmd.Flags().Bool("print", false, "Print result (shorthand for -o print)")
	rootCmd.Flags().Bool("copy", false, "Copy result (shorthand for -o copy)")
	rootCmd.Flags().Bool("write", false, "Write result back to the file (shorthand for -o write)")
	rootCmd.Flags().Bool("diff", false, "Show what would change instead of the result")

	rootCmd.AddCommand(newReviewCmd(), newEditorCmd())

	return rootCmd
}

func initConfig(cmd *cobra.Command, cfgPath string) error {
	if err := config.Init(cfgPath); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if v, _ := cmd.Flags().GetBool("verbose"); v {
		config.SetLogLevel("debug")
	}
	if cmd.Flags().Changed("wrap") {
		w, _ := cmd.Flags().GetInt("wrap")
		if w < 0 {
			return fmt.Errorf("wrap must not be negative: %d", w)
		}
		config.SetWrap(w)
	}

	// Both values were checked by config.Init
	level, _ := logging.ParseLevel(config.GetLogLevel())
	format, _ := logging.ParseFormat(config.GetLogFormat())
	logging.Init(level, format, cmd.ErrOrStderr())
	return nil
}

// ============================================================================
// Join
// ============================================================================

// job is one loaded document and the joined range
type job struct {
	source *buffer.Buffer
	rng    mdjoin.Range
	before []string
	after  []string
}

func loadJob(cmd *cobra.Command, args []string) (*job, error) {
	var src *buffer.Buffer
	var err error

	if len(args) == 0 || args[0] == "-" {
		src, err = buffer.Read(cmd.InOrStdin())
	} else {
		src, err = buffer.Load(args[0])
	}
	if err != nil {
		return nil, err
	}

	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	rng := mdjoin.Range{Start: start, End: end}

	after := mdjoin.JoinLines(src.Lines(), rng)
	if w := config.GetWrap(); w > 0 {
		after = reflow.Wrap(after, w)
	}

	before := src.Slice(start, end)
	logging.Debug("joined lines",
		"source", displayName(src),
		"start", start,
		"end", end,
		"in", len(before),
		"out", len(after))

	return &job{source: src, rng: rng, before: before, after: after}, nil
}

func (j *job) result() output.Result {
	return output.Result{
		Lines:  j.after,
		Source: j.source,
		Start:  j.rng.Start,
		End:    j.rng.End,
	}
}

func runJoin(cmd *cobra.Command, args []string) error {
	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput("print")
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput("copy")
	} else if w, _ := cmd.Flags().GetBool("write"); w {
		config.SetOutput("write")
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}

	mode, err := output.ParseMode(config.GetOutput())
	if err != nil {
		return err
	}

	j, err := loadJob(cmd, args)
	if err != nil {
		return err
	}

	if showDiff, _ := cmd.Flags().GetBool("diff"); showDiff {
		return printDiff(cmd.OutOrStdout(), j)
	}

	return output.NewSink(cmd.OutOrStdout()).Emit(mode, j.result())
}

func printDiff(w io.Writer, j *job) error {
	ui.RefreshStyles()
	diff, stat := ui.RenderDiff(j.before, j.after)
	if !stat.Changed() {
		logging.Info("nothing to join", "source", displayName(j.source))
		return nil
	}
	_, err := io.WriteString(w, diff)
	return err
}

func displayName(b *buffer.Buffer) string {
	if b.Path() == "" {
		return "<stdin>"
	}
	return b.Path()
}

// ============================================================================
// Review
// ============================================================================

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <file>",
		Short: "Preview the join interactively before writing it",
		Long: `Shows a diff of the joined range in a scrollable view.

Press y or enter to write the change back to the file,
q or esc to leave it untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}
}

func runReview(cmd *cobra.Command, args []string) error {
	j, err := loadJob(cmd, args)
	if err != nil {
		return err
	}

	if _, stat := ui.RenderDiff(j.before, j.after); !stat.Changed() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to join")
		return nil
	}

	accepted, err := reviewFunc(displayName(j.source), j.before, j.after)
	if err != nil {
		return err
	}
	if !accepted {
		logging.Info("review cancelled", "source", displayName(j.source))
		return nil
	}

	return output.NewSink(cmd.OutOrStdout()).Emit(output.ModeWrite, j.result())
}

// ============================================================================
// Editor Integration
// ============================================================================

func newEditorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "editor [editor]",
		Short: "Output editor integration script",
		Long: `Outputs a snippet that adds a :MdJoin command to your editor.
The command pipes the selected lines (or the whole buffer) through mdjoin.

Usage:
  mdjoin editor vim >> ~/.vimrc
  mdjoin editor nvim > ~/.config/nvim/plugin/mdjoin.lua`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"vim", "nvim", "kak"},
		RunE:      runEditor,
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	editor := args[0]

	switch editor {
	case "vim":
		fmt.Fprint(cmd.OutOrStdout(), vimScript())
	case "nvim":
		fmt.Fprint(cmd.OutOrStdout(), nvimScript())
	case "kak":
		fmt.Fprint(cmd.OutOrStdout(), kakScript())
	default:
		return fmt.Errorf("unsupported editor: %s (supported: vim, nvim, kak)", editor)
	}
	return nil
}

func vimScript() string {
	return `" mdjoin: join soft-wrapped Markdown paragraphs
command! -range=% MdJoin <line1>,<line2>!mdjoin
augroup mdjoin
  autocmd!
  autocmd FileType markdown nnoremap <buffer> <leader>j :MdJoin<CR>
  autocmd FileType markdown xnoremap <buffer> <leader>j :MdJoin<CR>
augroup END
`
}

func nvimScript() string {
	return `-- mdjoin: join soft-wrapped Markdown paragraphs
vim.api.nvim_create_user_command("MdJoin", function(opts)
  vim.cmd(string.format("%d,%d!mdjoin", opts.line1, opts.line2))
end, { range = "%" })

vim.api.nvim_create_autocmd("FileType", {
  pattern = "markdown",
  callback = function(ev)
    vim.keymap.set({ "n", "x" }, "<leader>j", ":MdJoin<CR>", { buffer = ev.buf })
  end,
})
`
}

func kakScript() string {
	return `# mdjoin: join soft-wrapped Markdown paragraphs
define-command mdjoin -docstring 'join soft-wrapped Markdown paragraphs' %{
    execute-keys '|mdjoin<ret>'
}
hook global WinSetOption filetype=markdown %{
    map window user j ':mdjoin<ret>' -docstring 'mdjoin'
}
`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
