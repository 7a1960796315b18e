package export

import (
	"fmt"
	"time"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/gashok13193/DevOps-Docs/deck"
)

// OutlineService exports a deck as a Word outline document: one
// heading per slide with its text content, closed by a summary table.
type OutlineService struct{}

// NewOutlineService creates a new outline service.
func NewOutlineService() *OutlineService {
	return &OutlineService{}
}

// ExportOutline returns the outline docx bytes.
func (s *OutlineService) ExportOutline(p *deck.Presentation, title string) ([]byte, error) {
	if title == "" {
		title = deckTitle(p)
	}
	primary := hexColor(p.Theme().Primary)

	doc := goword.New()
	doc.Properties.Title = title
	doc.Properties.Creator = "DevOps-Docs"
	doc.Properties.Description = "Outline of a generated presentation"

	sec := doc.AddSection()
	sec.AddTitle(title, 1)
	sec.AddText(time.Now().Format("2006-01-02 15:04"),
		&style.FontStyle{Size: 10, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddTextBreak(1)

	entries := buildOutline(p)
	for _, e := range entries {
		sec.AddText(fmt.Sprintf("%d. %s", e.Index, e.Title),
			&style.FontStyle{Bold: true, Size: 14, Color: primary},
			nil)
		sec.AddText(e.Kind+" slide",
			&style.FontStyle{Italic: true, Size: 9, Color: "64748B"},
			nil)
		for _, line := range e.Lines {
			sec.AddText(line,
				&style.FontStyle{Size: 11, Color: "404040"},
				&style.ParagraphStyle{SpaceAfter: 60})
		}
		sec.AddTextBreak(1)
	}

	// Summary table
	sec.AddText("Slide summary",
		&style.FontStyle{Bold: true, Size: 14, Color: primary},
		nil)
	ts := &style.TableStyle{Width: 9000, Alignment: "center"}
	ts.SetAllBorders("single", 4, "D9D9D9")
	tbl := sec.AddTable(ts)

	headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
	for _, h := range []string{"Slide", "Kind", "Title"} {
		headerRow.AddCell(3000, &style.CellStyle{
			Shading: &style.Shading{Fill: primary},
		}).AddText(h, &style.FontStyle{Bold: true, Size: 10, Color: "FFFFFF"}, nil)
	}
	for _, e := range entries {
		row := tbl.AddRow(0, nil)
		row.AddCell(3000, nil).AddText(fmt.Sprintf("%d", e.Index), &style.FontStyle{Size: 10}, nil)
		row.AddCell(3000, nil).AddText(e.Kind, &style.FontStyle{Size: 10}, nil)
		row.AddCell(3000, nil).AddText(e.Title, &style.FontStyle{Size: 10}, nil)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write outline document: %w", err)
	}
	return data, nil
}
