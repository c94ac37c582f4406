package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/CristianLlanos/phpunit/internal/config"
	"github.com/CristianLlanos/phpunit/internal/domain"
)

// Inspector displays build diagnostics in an interactive TUI
type Inspector struct {
	config *config.Config
}

// NewInspector creates a new Inspector
func NewInspector(cfg *config.Config) *Inspector {
	return &Inspector{config: cfg}
}

// finding is one diagnostic or build error extracted from a report
type finding struct {
	class   string
	method  string
	kind    string
	name    string
	message string
}

func collectFindings(entries []domain.BuildEntry) []finding {
	var findings []finding
	for _, entry := range entries {
		if entry.Error != "" {
			findings = append(findings, finding{
				class:   entry.Class,
				method:  entry.Method,
				kind:    "build error",
				name:    "Error",
				message: entry.Error,
			})
			continue
		}
		if entry.Message != "" {
			findings = append(findings, finding{
				class:   entry.Class,
				method:  entry.Method,
				kind:    entry.Kind,
				name:    entry.Name,
				message: entry.Message,
			})
		}
		findings = append(findings, collectFindings(entry.Children)...)
	}
	return findings
}

// View displays a report's diagnostics and build errors in an interactive TUI
func (iv *Inspector) View(report *domain.BuildReport) error {
	findings := collectFindings(report.Entries)
	if len(findings) == 0 {
		color.Green("✓ No diagnostics in the last build!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, f := range findings {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s::%s", i+1, f.class, f.method), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Build Diagnostics (%d) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(findings)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(findings) {
			detailsView.SetText(formatFinding(findings[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFinding formats one finding for display using tview color tags
func formatFinding(f finding) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", f.name)
	fmt.Fprintf(&b, "[cyan]Test: %s::%s[white]\n", f.class, f.method)
	fmt.Fprintf(&b, "[yellow]Kind: %s[white]\n\n", f.kind)
	if f.message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", f.message)
	}

	return b.String()
}
