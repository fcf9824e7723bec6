// xcursor forked from https://github.com/BurntSushi/xgbutil/blob/master/xcursor/xcursor.go
package xcursor

import (
	"sync"

	"github.com/ItsNotGoodName/x-collage/mosaic"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Glyphs of the X cursor font used while dragging pane boundaries.
const (
	BottomLeftCorner  = 12
	BottomRightCorner = 14
	BottomSide        = 16
	Fleur             = 52
	LeftPtr           = 68
	LeftSide          = 70
	RightSide         = 96
	TopLeftCorner     = 134
	TopRightCorner    = 136
	TopSide           = 138
)

// ForEdge returns the glyph shown while edge is dragged. The middle of a pane
// has no boundary and shows a move cursor.
func ForEdge(edge mosaic.Edge) uint16 {
	switch edge {
	case mosaic.TopLeftCorner:
		return TopLeftCorner
	case mosaic.TopRightCorner:
		return TopRightCorner
	case mosaic.BottomLeftCorner:
		return BottomLeftCorner
	case mosaic.BottomRightCorner:
		return BottomRightCorner
	case mosaic.TopSide:
		return TopSide
	case mosaic.BottomSide:
		return BottomSide
	case mosaic.LeftSide:
		return LeftSide
	case mosaic.RightSide:
		return RightSide
	default:
		return Fleur
	}
}

func CreateCursor(x *xgb.Conn, cursor uint16) (xproto.Cursor, error) {
	return CreateCursorExtra(x, cursor, 0xffff, 0xffff, 0xffff, 0, 0, 0)
}

func CreateCursorExtra(x *xgb.Conn, cursor, foreRed, foreGreen,
	foreBlue, backRed, backGreen, backBlue uint16) (xproto.Cursor, error) {

	fontId, err := xproto.NewFontId(x)
	if err != nil {
		return 0, err
	}

	cursorId, err := xproto.NewCursorId(x)
	if err != nil {
		return 0, err
	}

	err = xproto.OpenFontChecked(x, fontId,
		uint16(len("cursor")), "cursor").Check()
	if err != nil {
		return 0, err
	}

	err = xproto.CreateGlyphCursorChecked(x, cursorId, fontId, fontId,
		cursor, cursor+1,
		foreRed, foreGreen, foreBlue,
		backRed, backGreen, backBlue).Check()
	if err != nil {
		return 0, err
	}

	err = xproto.CloseFontChecked(x, fontId).Check()
	if err != nil {
		return 0, err
	}

	return cursorId, nil
}

// Cache creates each cursor glyph once per connection.
type Cache struct {
	conn    *xgb.Conn
	mu      sync.Mutex
	cursors map[uint16]xproto.Cursor
}

func NewCache(conn *xgb.Conn) *Cache {
	return &Cache{
		conn:    conn,
		cursors: make(map[uint16]xproto.Cursor),
	}
}

func (c *Cache) Get(glyph uint16) (xproto.Cursor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cursor, ok := c.cursors[glyph]; ok {
		return cursor, nil
	}

	cursor, err := CreateCursor(c.conn, glyph)
	if err != nil {
		return 0, err
	}
	c.cursors[glyph] = cursor

	return cursor, nil
}
