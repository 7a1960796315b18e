package export

import (
	"bytes"
	"fmt"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/gashok13193/DevOps-Docs/deck"
)

// WorkbookService exports the datasets behind a deck's chart slides
// as a styled workbook: an overview sheet plus one sheet per chart.
type WorkbookService struct{}

// NewWorkbookService creates a new workbook service.
func NewWorkbookService() *WorkbookService {
	return &WorkbookService{}
}

// ExportChartData returns the workbook bytes. Fails with
// ErrNoChartData when the deck holds no chart slides.
func (s *WorkbookService) ExportChartData(p *deck.Presentation, title string) ([]byte, error) {
	charts := chartSlides(p)
	if len(charts) == 0 {
		return nil, ErrNoChartData
	}
	if title == "" {
		title = deckTitle(p)
	}
	theme := p.Theme()

	wb := gospreadsheet.New()

	overview := wb.GetActiveSheet()
	overview.SetTitle("Overview")
	s.writeOverview(overview, p, theme)

	for i, c := range charts {
		ws, err := wb.AddSheet(fmt.Sprintf("Chart %d", i+1))
		if err != nil {
			return nil, fmt.Errorf("failed to create chart sheet %d: %w", i+1, err)
		}
		s.writeChartSheet(ws, c, theme)
	}

	wb.Properties.Title = title
	wb.Properties.Creator = "DevOps-Docs"
	wb.Properties.Description = "Chart data extracted from a generated presentation"
	wb.Properties.Subject = title
	wb.Properties.LastModifiedBy = "DevOps-Docs"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *WorkbookService) headerStyle(theme deck.Theme) *gospreadsheet.Style {
	return gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: hexColor(theme.Primary),
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})
}

func (s *WorkbookService) dataStyle() *gospreadsheet.Style {
	return gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{Size: 10}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})
}

// writeOverview lists every slide in the deck.
func (s *WorkbookService) writeOverview(ws *gospreadsheet.Worksheet, p *deck.Presentation, theme deck.Theme) {
	headers := []string{"Slide", "Kind", "Title"}
	headerStyle := s.headerStyle(theme)
	for i, h := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, h)
		ws.SetCellStyle(cellName, headerStyle)
	}
	ws.SetColumnWidth(0, 10)
	ws.SetColumnWidth(1, 14)
	ws.SetColumnWidth(2, 48)
	ws.SetRowHeight(0, 25)

	dataStyle := s.dataStyle()
	for row, e := range buildOutline(p) {
		values := []interface{}{e.Index, e.Kind, e.Title}
		for colIdx, v := range values {
			cellName, _ := gospreadsheet.CellName(row+1, colIdx)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, dataStyle)
		}
	}
	ws.FreezePane("A2")
}

// writeChartSheet lays the dataset out with categories in the first
// column and one column per series.
func (s *WorkbookService) writeChartSheet(ws *gospreadsheet.Worksheet, c deck.ChartSlide, theme deck.Theme) {
	headerStyle := s.headerStyle(theme)
	dataStyle := s.dataStyle()

	cellName, _ := gospreadsheet.CellName(0, 0)
	ws.SetCellValue(cellName, "Category")
	ws.SetCellStyle(cellName, headerStyle)
	ws.SetColumnWidth(0, 22)
	for i, series := range c.Dataset.Series {
		cellName, _ := gospreadsheet.CellName(0, i+1)
		ws.SetCellValue(cellName, series.Name)
		ws.SetCellStyle(cellName, headerStyle)
		ws.SetColumnWidth(i+1, 16)
	}
	ws.SetRowHeight(0, 25)

	for row, cat := range c.Dataset.Categories {
		cellName, _ := gospreadsheet.CellName(row+1, 0)
		ws.SetCellValue(cellName, cat)
		ws.SetCellStyle(cellName, dataStyle)
		for colIdx, series := range c.Dataset.Series {
			cellName, _ := gospreadsheet.CellName(row+1, colIdx+1)
			ws.SetCellValue(cellName, series.Values[row])
			ws.SetCellStyle(cellName, dataStyle)
		}
	}
	ws.FreezePane("A2")
}
