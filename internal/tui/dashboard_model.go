package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/lithiumscope/internal/engine"
	"github.com/rshade/lithiumscope/internal/logging"
)

// sortCycle is the order 's' walks through. The empty field keeps source order.
var sortCycle = []string{
	"",
	engine.SortFieldName,
	engine.SortFieldType,
	engine.SortFieldCountry,
	engine.SortFieldCapacity,
	engine.SortFieldUtilization,
	engine.SortFieldStatus,
}

// LoadFunc produces the entity source the dashboard displays.
type LoadFunc func(ctx context.Context) (engine.Source, error)

// DatasetLoadedMsg carries the result of a LoadFunc.
type DatasetLoadedMsg struct {
	Source engine.Source
	Err    error
}

// DashboardModel is the Bubble Tea model for the interactive dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	// View state
	state   ViewState
	ctx     context.Context
	load    LoadFunc
	kpis    engine.KPIs
	env     engine.EnvironmentalReport
	allRows []engine.Facility // source of truth
	rows    []engine.Facility // filtered and sorted

	// Interactive components
	table     table.Model
	textInput textinput.Model
	selected  int

	// Display configuration
	width      int
	height     int
	sortIdx    int
	sortOrder  string
	showFilter bool

	// Pagination
	pageSize    int
	currentPage int
	totalPages  int

	loadingState *LoadingState
	err          error
}

// NewDashboardModel returns a model in the loading state. The returned
// command starts the spinner and runs load.
func NewDashboardModel(ctx context.Context, load LoadFunc, pageSize int) (DashboardModel, tea.Cmd) {
	if pageSize < 1 {
		pageSize = 1
	}
	m := DashboardModel{
		state:        ViewStateLoading,
		ctx:          ctx,
		load:         load,
		width:        defaultWidth,
		height:       defaultHeight,
		sortOrder:    "asc",
		textInput:    newTextInput(),
		pageSize:     pageSize,
		currentPage:  1,
		totalPages:   1,
		loadingState: NewLoadingState(),
	}
	m.table = m.buildFacilityTable()
	return m, m.Init()
}

// Init starts the spinner and the dataset load (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.loadCmd())
}

func (m DashboardModel) loadCmd() tea.Cmd {
	load := m.load
	ctx := m.ctx
	return func() tea.Msg {
		if load == nil {
			return DatasetLoadedMsg{Err: ErrNoLoader}
		}
		src, err := load(ctx)
		return DatasetLoadedMsg{Source: src, Err: err}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if loaded, ok := msg.(DatasetLoadedMsg); ok {
		return m.handleDatasetLoaded(loaded)
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loadingState.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && isQuitKey(keyMsg) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m DashboardModel) handleDatasetLoaded(msg DatasetLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	if msg.Err != nil {
		log.Error().Err(msg.Err).
			Str("component", "tui").
			Str("operation", "load_dataset").
			Msg("dashboard dataset load failed")
		m.state = ViewStateError
		m.err = msg.Err
		return m, nil
	}

	m.kpis = engine.CalculateKPIs(msg.Source)
	m.env = engine.NewEnvironmentalReport(msg.Source)
	m.allRows = engine.AllFacilities(msg.Source)
	m.state = ViewStateList

	log.Debug().
		Str("component", "tui").
		Str("operation", "load_dataset").
		Int("facilities", len(m.allRows)).
		Msg("dashboard ready")

	m.applyFilter(m.textInput.Value())
	return m, nil
}

func (m DashboardModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter(m.textInput.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.handleListKeypress(keyMsg)
}

func (m DashboardModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		m.selected = m.absoluteIndex(m.table.Cursor())
		if m.selected >= 0 && m.selected < len(m.rows) {
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyS:
		m.cycleSort()
		return m, nil
	case keyO:
		m.toggleOrder()
		return m, nil
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter("")
		}
		return m, nil
	case keyPgUp:
		if m.currentPage > 1 {
			m.currentPage--
			m.rebuildTable()
		}
		return m, nil
	case keyPgDown:
		if m.currentPage < m.totalPages {
			m.currentPage++
			m.rebuildTable()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m DashboardModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case isQuitKey(keyMsg):
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyMsg.String() == keyEsc:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

func isQuitKey(k tea.KeyMsg) bool {
	s := k.String()
	return s == keyQuit || s == keyCtrlC
}

// absoluteIndex converts a page-relative table cursor to an index into rows.
func (m DashboardModel) absoluteIndex(cursor int) int {
	return (m.currentPage-1)*m.pageSize + cursor
}

func (m *DashboardModel) cycleSort() {
	m.sortIdx = (m.sortIdx + 1) % len(sortCycle)
	m.applyFilter(m.textInput.Value())
}

func (m *DashboardModel) toggleOrder() {
	if m.sortOrder == "asc" {
		m.sortOrder = "desc"
	} else {
		m.sortOrder = "asc"
	}
	m.applyFilter(m.textInput.Value())
}

// sortField returns the active sort field, "" for source order.
func (m DashboardModel) sortField() string {
	return sortCycle[m.sortIdx]
}

// applyFilter recomputes rows from allRows. It always resets to the first
// page so the cursor cannot point past the filtered set.
func (m *DashboardModel) applyFilter(search string) {
	m.rows = engine.FilterFacilities(m.allRows, engine.FacilityQuery{Search: search})
	m.resort()
}

func (m *DashboardModel) resort() {
	if field := m.sortField(); field != "" {
		m.rows = engine.SortFacilities(m.rows, field, m.sortOrder)
	}
	m.totalPages = max(1, (len(m.rows)+m.pageSize-1)/m.pageSize)
	m.currentPage = 1
	m.rebuildTable()
}

func (m *DashboardModel) rebuildTable() {
	m.table = m.buildFacilityTable()
}

func (m *DashboardModel) buildFacilityTable() table.Model {
	columns := []table.Column{
		{Title: "Status", Width: 14},      //nolint:mnd // Column width.
		{Title: "Facility", Width: 30},    //nolint:mnd // Column width.
		{Title: "Type", Width: 11},        //nolint:mnd // Column width.
		{Title: "Country", Width: 16},     //nolint:mnd // Column width.
		{Title: "Capacity", Width: 20},    //nolint:mnd // Column width.
		{Title: "Utilization", Width: 19}, //nolint:mnd // Column width.
	}

	visible := m.visibleRows()
	rows := make([]table.Row, len(visible))
	for i, f := range visible {
		rows[i] = table.Row{
			engine.StatusIcon(f.Status) + " " + f.Status.String(),
			f.Name,
			f.Type.String(),
			f.Country,
			f.Capacity,
			engine.FormatUtilization(f.Utilization),
		}
	}

	availableHeight := max(m.height-summaryHeight-1, minHeight)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// visibleRows returns the rows on the current page.
func (m DashboardModel) visibleRows() []engine.Facility {
	start := (m.currentPage - 1) * m.pageSize
	if start >= len(m.rows) {
		return []engine.Facility{}
	}
	end := min(start+m.pageSize, len(m.rows))
	return m.rows[start:end]
}

func (m DashboardModel) renderPaginationFooter() string {
	if m.totalPages <= 1 {
		return ""
	}
	return fmt.Sprintf("Page %d/%d | Use PgUp/PgDn to navigate", m.currentPage, m.totalPages)
}

// Rows returns the filtered and sorted facilities.
func (m DashboardModel) Rows() []engine.Facility {
	return m.rows
}

// Err returns the load error, if any.
func (m DashboardModel) Err() error {
	return m.err
}
