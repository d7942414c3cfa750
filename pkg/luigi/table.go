package luigi

import (
	"github.com/bnema/goluigi/internal/callback"
	"github.com/bnema/goluigi/pkg/luigi/native"
)

// TableItem identifies the cell the toolkit wants to draw.
type TableItem struct {
	Index    int
	Column   int
	Selected bool
}

// Table is a virtual list with tab-separated column headers. Cell text is pulled from
// the handler registered with OnItem.
type Table struct {
	element
}

// NewTable creates a table inside parent. columns is a tab-separated header list.
func NewTable(parent Element, flags Flags, columns string) (*Table, error) {
	p, err := parentNode(parent)
	if err != nil {
		return nil, err
	}
	columns, err = cString(columns)
	if err != nil {
		return nil, err
	}
	n, err := p.env.adopt(p, KindTable, p.toolkit().TableCreate(p.handle, uint32(flags), columns))
	if err != nil {
		return nil, err
	}
	return &Table{element{n}}, nil
}

// SetItemCount sets the number of rows. Negative counts are treated as zero and
// counts past the C int range are capped.
func (t *Table) SetItemCount(count int) error {
	if err := t.n.live(); err != nil {
		return err
	}
	t.n.toolkit().TableSetItemCount(t.n.handle, cCount(count))
	return nil
}

// ResizeColumns recomputes column widths from the current content.
func (t *Table) ResizeColumns() error {
	if err := t.n.live(); err != nil {
		return err
	}
	t.n.toolkit().TableResizeColumns(t.n.handle)
	return nil
}

// OnItem registers the cell text provider, replacing any previous one. A nil fn
// removes it. Text longer than the native buffer is truncated by the backend.
func (t *Table) OnItem(fn func(TableItem) string) error {
	if err := t.n.live(); err != nil {
		return err
	}
	attach := func(cp native.Context) { t.n.toolkit().TableSetHandler(t.n.handle, cp) }
	var register func() callback.ID
	if fn != nil {
		register = func() callback.ID {
			return t.n.env.slots.RegisterTableItem(func(req native.TableItemRequest) string {
				return fn(TableItem{Index: req.Index, Column: req.Column, Selected: req.Selected})
			})
		}
	}
	t.n.replaceSlot(attach, register)
	return nil
}
