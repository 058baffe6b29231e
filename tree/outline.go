package tree

import "strconv"

// OutlineItem is a line of a tree outline, indented by Level.
type OutlineItem struct {
	Level int
	Text  string
}

// Outline flattens a statement into a list of leveled items, one per node, in
// prefix order. It is used to display parse trees on a terminal.
func Outline(stmt Statement) []OutlineItem {
	var items []OutlineItem
	switch s := stmt.(type) {
	case *Assignment:
		items = append(items, OutlineItem{Level: 0, Text: ":= " + s.Name})
		items = outlineExpr(items, s.Expr, 1)
	case *Print:
		items = append(items, OutlineItem{Level: 0, Text: "@"})
		items = outlineExpr(items, s.Expr, 1)
	}
	return items
}

func outlineExpr(items []OutlineItem, expr Expression, level int) []OutlineItem {
	switch e := expr.(type) {
	case *Constant:
		return append(items, OutlineItem{Level: level, Text: strconv.FormatInt(int64(e.Value), 10)})
	case *VariableRef:
		return append(items, OutlineItem{Level: level, Text: e.Name})
	case *BinaryOp:
		items = append(items, OutlineItem{Level: level, Text: e.Op.Symbol()})
		items = outlineExpr(items, e.Left, level+1)
		return outlineExpr(items, e.Right, level+1)
	case *UnaryOp:
		items = append(items, OutlineItem{Level: level, Text: e.Op.Symbol()})
		return outlineExpr(items, e.Operand, level+1)
	}
	return items
}
