package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalev/go-field-sync/internal/service"
	"github.com/akovalev/go-field-sync/models"
)

const refreshInterval = 2 * time.Second

// statusModel is the single page of the status screen: connectivity badge,
// queue counters and the parked-entry list.
type statusModel struct {
	ctx       context.Context
	queueSvc  service.QueueService
	buildInfo models.AppBuildInfo

	status  models.StatusResponse
	entries []models.QueueEntry
	idx     int

	loading   bool
	spinner   spinner.Model
	statusMsg string
	errMsg    string

	confirmDiscard bool
	showBuildInfo  bool
	quitting       bool
}

func newStatusModel(ctx context.Context, queueSvc service.QueueService, buildInfo models.AppBuildInfo) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:       ctx,
		queueSvc:  queueSvc,
		buildInfo: buildInfo,
		loading:   true,
		spinner:   s,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.spinner.Tick, tickCmd())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tickMsg:
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case statusLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = len(m.entries) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeAgentError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusMsg = msg.verb
		return m, tea.Batch(m.refreshCmd(), clearStatusCmd())

	case copiedMsg:
		m.statusMsg = "Идентификатор скопирован"
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m statusModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// confirmation overlay swallows everything except yes/no
	if m.confirmDiscard {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDiscard = false
			if entry, ok := m.current(); ok {
				return m, m.discardCmd(entry.ID)
			}
			return m, nil
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirmDiscard = false
			return m, nil
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showBuildInfo {
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = false
			return m, nil
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(msg, keys.requeue):
		if entry, ok := m.current(); ok {
			return m, m.requeueCmd(entry.ID)
		}
		return m, nil

	case key.Matches(msg, keys.discard):
		if _, ok := m.current(); ok {
			m.confirmDiscard = true
		}
		return m, nil

	case key.Matches(msg, keys.copyID):
		if entry, ok := m.current(); ok {
			return m, copyCmd(entry.ID)
		}
		return m, nil

	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.refreshCmd()

	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	}

	return m, nil
}

func (m statusModel) current() (models.QueueEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.QueueEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m statusModel) refreshCmd() tea.Cmd {
	ctx, queueSvc := m.ctx, m.queueSvc
	return func() tea.Msg {
		status, err := queueSvc.Status(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}

		entries, err := queueSvc.ListFailed(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}

		return statusLoadedMsg{status: status, entries: entries}
	}
}

func (m statusModel) requeueCmd(entryID string) tea.Cmd {
	ctx, queueSvc := m.ctx, m.queueSvc
	return func() tea.Msg {
		if err := queueSvc.Requeue(ctx, entryID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{verb: "Запись возвращена в очередь"}
	}
}

func (m statusModel) discardCmd(entryID string) tea.Cmd {
	ctx, queueSvc := m.ctx, m.queueSvc
	return func() tea.Msg {
		if err := queueSvc.Discard(ctx, entryID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{verb: "Запись удалена"}
	}
}

func copyCmd(entryID string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(entryID); err != nil {
			return actionDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m statusModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.confirmDiscard {
		entry, _ := m.current()
		return renderDiscardConfirm(entry)
	}

	var b strings.Builder
	b.WriteString(m.renderConnectivity())
	b.WriteString("\n")
	b.WriteString(m.renderCounters())
	b.WriteString("\n\n")
	b.WriteString(m.renderEntries())

	if m.statusMsg != "" {
		b.WriteString("\n" + m.statusMsg + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	hotKeys := "r вернуть в очередь  d удалить  c копировать id  s обновить  v о программе  q выход"
	return renderPage("Field Sync — состояние", b.String(), helpStyle.Render(hotKeys))
}

func (m statusModel) renderConnectivity() string {
	badge := offlineStyle.Render("НЕ В СЕТИ")
	if m.status.Online {
		badge = onlineStyle.Render("В СЕТИ")
	}

	line := "Связь: " + badge + "   канал: " + qualityLabel(m.status.Quality)
	if m.loading {
		line += "  " + m.spinner.View()
	}
	return line
}

func (m statusModel) renderCounters() string {
	return fmt.Sprintf("Ожидают отправки: %d   требуют внимания: %d", m.status.QueueDepth, m.status.FailedCount)
}

func (m statusModel) renderEntries() string {
	if len(m.entries) == 0 {
		return "Нет записей, требующих внимания"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Записи, требующие внимания"))
	b.WriteString("\n")
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s  попыток: %d  %s\n",
			cursor,
			entryIcon(entry.Kind),
			fitText(entry.ID, 12),
			entry.RetryCount,
			fitText(entry.LastError, 40),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDiscardConfirm(entry models.QueueEntry) string {
	content := "Удалить запись \"" + fitText(entry.ID, 12) + "\" вместе с данными?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}

func entryIcon(kind models.EntryKind) string {
	switch kind {
	case models.KindRecord:
		return "[З]"
	case models.KindAttachment:
		return "[Ф]"
	default:
		return "[?]"
	}
}

func qualityLabel(q models.Quality) string {
	switch q {
	case models.QualityGood:
		return "хороший"
	case models.QualityModerate:
		return "средний"
	case models.QualityPoor:
		return "плохой"
	default:
		return "неизвестно"
	}
}
