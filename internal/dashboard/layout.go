package dashboard

// Fixed rows around the graphs: header, connections panel, table border and
// footer.
const (
	headerRows      = 1
	connPanelRows   = 3
	tableChromeRows = 2
	footerRows      = 1
	minTableRows    = 3
)

// columns returns how many panel columns fit the terminal.
func (m Model) columns() int {
	if m.width < BreakpointCompact {
		return 1
	}
	return 2
}

// columnWidths returns the outer width of the left and right panel columns.
// In single-column layout both equal the terminal width.
func (m Model) columnWidths() (left, right int) {
	if m.columns() == 1 {
		return m.width, m.width
	}
	left = m.width / 2
	return left, m.width - left
}

// graphWidth returns the cell width of a graph inside a panel of outer width w.
func graphWidth(w int) int {
	if g := w - panelChrome; g > 0 {
		return g
	}
	return 1
}

// pairHeight is the height of each half of an in/out graph pair, so the pair
// together occupies about the same rows as a single graph.
func (m Model) pairHeight() int {
	if h := (m.graphHeight + 1) / 2; h > 0 {
		return h
	}
	return 1
}

// panelHeights returns the outer heights of the single and paired graph
// panels: border, title, graph rows and one stats line.
func (m Model) panelHeights() (single, paired int) {
	const chrome = 2 + 1 + 1
	return m.graphHeight + chrome, 2*m.pairHeight() + chrome
}

// graphRowsHeight is the total height of the graph panels.
func (m Model) graphRowsHeight() int {
	single, paired := m.panelHeights()
	if m.columns() == 1 {
		return 2*single + 2*paired
	}
	return 2 * max(single, paired)
}

// tableRows is the number of process rows that fit below the graphs.
func (m Model) tableRows() int {
	rows := m.height - headerRows - m.graphRowsHeight() - connPanelRows - tableChromeRows - footerRows
	// one row is the table header
	rows--
	if rows < minTableRows {
		return minTableRows
	}
	return rows
}

// resizeSeries rebuilds every stream for the current geometry and mode.
func (m *Model) resizeSeries() {
	if m.width <= 0 {
		return
	}
	left, right := m.columnWidths()
	pair := m.pairHeight()

	resize := func(name string, s *series, w, h int) {
		if err := s.resize(graphWidth(w), h, m.mode); err != nil {
			m.log.Warn("resize %s graph: %v", name, err)
		}
	}

	resize("cpu", m.cpuSeries, left, m.graphHeight)
	resize("memory", m.memSeries, left, m.graphHeight)
	resize("disk read", m.diskRead, right, pair)
	resize("disk write", m.diskWrite, right, pair)
	resize("net recv", m.netRecv, right, pair)
	resize("net sent", m.netSent, right, pair)
}

// pushSample adds v to s, logging a failed rebuild like resizeSeries does.
func (m *Model) pushSample(name string, s *series, v float64) {
	if err := s.push(v); err != nil {
		m.log.Warn("rebuild %s graph: %v", name, err)
	}
}
