package tree

// --- Expressions -----------------------------------------------------------

// Expression is a node of an expression tree, evaluating to a single integer.
// Implementations are *Constant, *VariableRef, *BinaryOp and *UnaryOp.
type Expression interface {
	exprNode()
}

// Constant is an integer literal.
type Constant struct {
	Value int32
}

// VariableRef reads a variable.
type VariableRef struct {
	Name string
}

// BinaryOp applies a binary operator to two operands. For non-commutative
// operators, Left is the first operand (numerator, minuend).
type BinaryOp struct {
	Op    Op
	Left  Expression
	Right Expression
}

// UnaryOp applies a unary operator to an operand.
type UnaryOp struct {
	Op      Op
	Operand Expression
}

func (*Constant) exprNode()    {}
func (*VariableRef) exprNode() {}
func (*BinaryOp) exprNode()    {}
func (*UnaryOp) exprNode()     {}

// NewConstant creates an integer literal node.
func NewConstant(v int32) *Constant {
	return &Constant{Value: v}
}

// NewVariableRef creates a node reading variable name.
func NewVariableRef(name string) *VariableRef {
	return &VariableRef{Name: name}
}

// NewBinaryOp creates a binary operation node. Both operands have to be
// complete trees.
func NewBinaryOp(op Op, left, right Expression) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

// NewUnaryOp creates a unary operation node.
func NewUnaryOp(op Op, operand Expression) *UnaryOp {
	return &UnaryOp{Op: op, Operand: operand}
}

// --- Statements ------------------------------------------------------------

// Statement is a top-level step of a program.
// Implementations are *Assignment and *Print.
type Statement interface {
	stmtNode()
}

// Assignment evaluates an expression and stores the result into a variable.
type Assignment struct {
	Name string
	Expr Expression
}

// Print evaluates an expression and outputs the result.
type Print struct {
	Expr Expression
}

func (*Assignment) stmtNode() {}
func (*Print) stmtNode()      {}

// NewAssignment creates an assignment statement.
func NewAssignment(name string, expr Expression) *Assignment {
	return &Assignment{Name: name, Expr: expr}
}

// NewPrint creates a print statement.
func NewPrint(expr Expression) *Print {
	return &Print{Expr: expr}
}
