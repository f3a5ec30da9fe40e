package console

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the text user interface wrapped around a Console, built from the
// same tview primitives and layout idiom as the teacher's debugger TUI:
// bordered TextView panels arranged in a Flex grid, with a single
// InputField driving everything.
type TUI struct {
	Console *Console
	App     *tview.Application

	MainLayout   *tview.Flex
	OutputView   *tview.TextView
	ResultsView  *tview.TextView
	TraceView    *tview.TextView
	HistoryView  *tview.TextView
	CommandInput *tview.InputField
}

// NewTUI builds a TUI around console, wiring panels and key bindings but
// not yet running the application (see Run).
func NewTUI(console *Console) *TUI {
	t := &TUI{
		Console: console,
		App:     tview.NewApplication(),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.ResultsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.ResultsView.SetBorder(true).SetTitle(" Results ")

	t.TraceView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.TraceView.SetBorder(true).SetTitle(" Trace ")

	t.HistoryView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.HistoryView.SetBorder(true).SetTitle(" History ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Expression ")
	t.CommandInput.SetDoneFunc(t.handleInput)
}

func (t *TUI) buildLayout() {
	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.ResultsView, 0, 2, false).
		AddItem(t.TraceView, 0, 2, false).
		AddItem(t.HistoryView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.OutputView, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.CommandInput, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.Console.History.Clear()
			t.RefreshAll()
			return nil
		case tcell.KeyUp:
			t.CommandInput.SetText(t.Console.History.Previous())
			return nil
		case tcell.KeyDown:
			t.CommandInput.SetText(t.Console.History.Next())
			return nil
		}
		return event
	})
}

func (t *TUI) handleInput(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	line := t.CommandInput.GetText()
	if line == "" {
		return
	}
	t.evaluate(line)
	t.CommandInput.SetText("")
}

func (t *TUI) evaluate(line string) {
	rendering, err := t.Console.Execute(line)
	if err != nil {
		t.writeOutput(fmt.Sprintf("[red]error:[white] %v\n", err))
	} else {
		t.writeOutput(fmt.Sprintf("[green]%s[white]\n", rendering))
	}
	t.RefreshAll()
}

func (t *TUI) writeOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll redraws every panel from current Console state.
func (t *TUI) RefreshAll() {
	t.updateResultsView()
	t.updateTraceView()
	t.updateHistoryView()
	t.App.Draw()
}

func (t *TUI) updateResultsView() {
	t.ResultsView.Clear()
	n := t.Console.Eval.ValueCount()
	var lines []string
	start := n - 15
	if start < 1 {
		start = 1
	}
	for i := start; i <= n; i++ {
		v, err := t.Console.Eval.GetValue(i)
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("$%d = %s", i, v.String()))
	}
	if len(lines) == 0 {
		lines = append(lines, "[yellow]no results yet[white]")
	}
	t.ResultsView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateTraceView() {
	t.TraceView.Clear()
	sink := t.Console.Eval.Sink
	if sink == nil {
		t.TraceView.SetText("[yellow]tracing disabled[white]")
		return
	}
	var lines []string
	for _, step := range sink.WindowSteps() {
		marker := " "
		if step.TableMul {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s step %d: window=%d len=%d squarings=%d",
			marker, step.Sequence, step.WindowValue, step.WindowLen, step.Squarings))
	}
	for _, round := range sink.RabinRounds() {
		status := "[green]passed[white]"
		if !round.Passed {
			status = "[red]failed[white]"
		}
		lines = append(lines, fmt.Sprintf("round %d: witness=%s %s", round.Round, round.Witness, status))
	}
	if len(lines) == 0 {
		lines = append(lines, "[yellow]no trace recorded[white]")
	}
	t.TraceView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateHistoryView() {
	t.HistoryView.Clear()
	cmds := t.Console.History.GetAll()
	start := len(cmds) - 15
	if start < 0 {
		start = 0
	}
	t.HistoryView.SetText(strings.Join(cmds[start:], "\n"))
}

// Run starts the TUI event loop. It blocks until the user quits
// (Ctrl+C).
func (t *TUI) Run() error {
	t.writeOutput("[green]mpint console[white] — type an expression and press Enter\n")
	t.writeOutput("examples: 3^7 mod 13   gcd(462,1071)   isprime(97)   invmod(3,11)   1a2b#16\n\n")
	t.RefreshAll()
	return t.App.SetRoot(t.MainLayout, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() { t.App.Stop() }
