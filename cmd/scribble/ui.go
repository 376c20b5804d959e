package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/osse101/scribble/internal/dice"
	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/utils"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	critStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	emptyStyle   = lipgloss.NewStyle().Faint(true)
)

// UI helpers

func printSuccess(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, a...)))
}

func printError(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+fmt.Sprintf(format, a...)))
}

func printWarning(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, warnStyle.Render("⚠ "+fmt.Sprintf(format, a...)))
}

func printInfo(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, infoStyle.Render("ℹ "+fmt.Sprintf(format, a...)))
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render("=== "+title+" ==="))
}

// renderTable draws rows under headers in a rounded border. An empty row set
// renders a placeholder instead of a header-only table.
func renderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return emptyStyle.Render("(empty)")
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		String()
}

func renderItems(items []domain.Item) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Name, it.Description, strconv.Itoa(it.Count), string(it.Activity), string(it.Key)})
	}
	return renderTable([]string{"Name", "Description", "Count", "Active/Passive", "Key"}, rows)
}

func renderEnemies(enemies []domain.Enemy) string {
	rows := make([][]string, 0, len(enemies))
	for _, e := range enemies {
		rows = append(rows, []string{e.Name, e.Description})
	}
	return renderTable([]string{"Name", "Description"}, rows)
}

func renderStats(stats []domain.Stat) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Value)})
	}
	return renderTable([]string{"Stat", "Value"}, rows)
}

// renderRecords lists search hits field by field, one block per record
func renderRecords(records []domain.Record) string {
	rows := make([][]string, 0, len(records)*5)
	for i, rec := range records {
		for _, f := range rec.Fields() {
			rows = append(rows, []string{strconv.Itoa(i + 1), fieldLabel(f.Label), f.Value})
		}
	}
	return renderTable([]string{"#", "Field", "Value"}, rows)
}

var fieldLabels = map[string]string{
	domain.FieldActivity: "Active/Passive",
}

func fieldLabel(label string) string {
	if l, ok := fieldLabels[label]; ok {
		return l
	}
	return utils.TitleCase(label)
}

func renderRoll(res *dice.Result) string {
	line := fmt.Sprintf("%s → %v = %d", res.Expression(), res.Dice, res.Total)
	if res.Critical {
		return line + " " + critStyle.Render("CRITICAL!")
	}
	return line
}
