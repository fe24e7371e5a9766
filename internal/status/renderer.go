package status

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	statusColumnHeaderConstant     = " "
	repositoryColumnHeaderConstant = "Repository"
	branchColumnHeaderConstant     = "Branch"
	unpushedColumnHeaderConstant   = "Unpushed"
	lastCommitColumnHeaderConstant = "Last commit"
	csvHeaderGroupConstant         = "group"
	csvHeaderRepositoryConstant    = "repository"
	csvHeaderPathConstant          = "path"
	csvHeaderBranchConstant        = "branch"
	csvHeaderWorktreeConstant      = "worktree"
	csvHeaderUpstreamConstant      = "upstream"
	csvHeaderUnpushedConstant      = "unpushed"
	csvHeaderLastCommitConstant    = "last_commit"
	csvHeaderErrorConstant         = "error"
)

var (
	groupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	cleanStatusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	unpushedStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dirtyStatusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	repositoryNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	branchNameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	errorMessageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ReportRenderer formats a collected report onto a writer.
type ReportRenderer interface {
	Render(writer io.Writer, report Report) error
}

func rendererForFormat(format ReportFormat) (ReportRenderer, error) {
	switch format {
	case FormatCSV:
		return csvRenderer{}, nil
	case FormatTable, ReportFormat(""):
		return tableRenderer{}, nil
	default:
		return nil, fmt.Errorf(unsupportedFormatTemplate, string(format))
	}
}

type tableRenderer struct{}

// Render writes one bordered table per group, preserving configuration order.
func (tableRenderer) Render(writer io.Writer, report Report) error {
	for _, group := range report.Groups {
		if len(strings.TrimSpace(group.Name)) > 0 {
			if _, writeError := fmt.Fprintln(writer, groupTitleStyle.Render(strings.ToUpper(group.Name))); writeError != nil {
				return writeError
			}
		}

		statusTable := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tableBorderStyle).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return tableHeaderStyle
				}
				return tableCellStyle
			}).
			Headers(
				statusColumnHeaderConstant,
				repositoryColumnHeaderConstant,
				branchColumnHeaderConstant,
				unpushedColumnHeaderConstant,
				lastCommitColumnHeaderConstant,
			)

		for _, repositoryStatus := range group.Statuses {
			statusTable = statusTable.Row(tableRow(repositoryStatus)...)
		}

		if _, writeError := fmt.Fprintln(writer, statusTable.Render()); writeError != nil {
			return writeError
		}
	}
	return nil
}

func tableRow(repositoryStatus RepositoryStatus) []string {
	symbol := styledSymbol(repositoryStatus)
	repositoryColumn := repositoryNameStyle.Render(repositoryStatus.Entry.DisplayName())

	branchColumn := emptyColumnPlaceholderText
	if len(repositoryStatus.Branch) > 0 {
		branchColumn = branchNameStyle.Render(repositoryStatus.Branch)
	}

	unpushedColumn := emptyColumnPlaceholderText
	if repositoryStatus.UnpushedCount > 0 {
		unpushedColumn = strconv.Itoa(repositoryStatus.UnpushedCount)
	}

	lastCommitColumn := repositoryStatus.LastCommitSubject
	if len(repositoryStatus.ErrorMessage) > 0 {
		lastCommitColumn = errorMessageStyle.Render(repositoryStatus.ErrorMessage)
	}
	if len(lastCommitColumn) == 0 {
		lastCommitColumn = emptyColumnPlaceholderText
	}

	return []string{symbol, repositoryColumn, branchColumn, unpushedColumn, lastCommitColumn}
}

func styledSymbol(repositoryStatus RepositoryStatus) string {
	symbol := repositoryStatus.Symbol()
	switch symbol {
	case cleanSymbolConstant:
		return cleanStatusStyle.Render(symbol)
	case unpushedSymbolConstant, unknownSyncSymbolConstant:
		return unpushedStatusStyle.Render(symbol)
	default:
		return dirtyStatusStyle.Render(symbol)
	}
}

type csvRenderer struct{}

// Render writes the report as CSV with a fixed header row.
func (csvRenderer) Render(writer io.Writer, report Report) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{
		csvHeaderGroupConstant,
		csvHeaderRepositoryConstant,
		csvHeaderPathConstant,
		csvHeaderBranchConstant,
		csvHeaderWorktreeConstant,
		csvHeaderUpstreamConstant,
		csvHeaderUnpushedConstant,
		csvHeaderLastCommitConstant,
		csvHeaderErrorConstant,
	}
	if writeError := csvWriter.Write(header); writeError != nil {
		return writeError
	}

	for _, group := range report.Groups {
		for _, repositoryStatus := range group.Statuses {
			if writeError := csvWriter.Write(repositoryStatus.CSVRecord()); writeError != nil {
				return writeError
			}
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
