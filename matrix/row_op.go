// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// OpKind tags an elementary row operation.
type OpKind uint8

const (
	// OpExchange swaps two rows.
	OpExchange OpKind = iota + 1
	// OpScale multiplies one row by a scalar.
	OpScale
	// OpScaledAdd stores rowA + scalar*rowB into a destination row.
	OpScaledAdd
)

// String returns the kind's name.
func (k OpKind) String() string {
	switch k {
	case OpExchange:
		return "Exchange"
	case OpScale:
		return "Scale"
	case OpScaledAdd:
		return "ScaledAdd"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// RowOp records one elementary row operation.
//
// Field use per kind:
//   - OpExchange:  Row1 and Row2 were swapped.
//   - OpScale:     Row1 was multiplied by Scalar.
//   - OpScaledAdd: Dest = Row1 + Scalar*Row2 (Row1 == Dest for elimination).
type RowOp[T Scalar] struct {
	Kind   OpKind
	Row1   int
	Row2   int
	Dest   int
	Scalar T
}

// Exchange builds an OpExchange record for rows r1 and r2.
func Exchange[T Scalar](r1, r2 int) RowOp[T] {
	return RowOp[T]{Kind: OpExchange, Row1: r1, Row2: r2}
}

// Scale builds an OpScale record: row *= s.
func Scale[T Scalar](row int, s T) RowOp[T] {
	return RowOp[T]{Kind: OpScale, Row1: row, Dest: row, Scalar: s}
}

// ScaledAdd builds the elimination form dest += s*src.
func ScaledAdd[T Scalar](dest, src int, s T) RowOp[T] {
	return RowOp[T]{Kind: OpScaledAdd, Row1: dest, Row2: src, Dest: dest, Scalar: s}
}

// Combine builds the general form dest = rowA + s*rowB.
func Combine[T Scalar](rowA, rowB int, s T, dest int) RowOp[T] {
	return RowOp[T]{Kind: OpScaledAdd, Row1: rowA, Row2: rowB, Dest: dest, Scalar: s}
}

// String renders the operation for reports, e.g. "Add -2*row 0 into row 1".
func (op RowOp[T]) String() string {
	switch op.Kind {
	case OpExchange:
		return fmt.Sprintf("Swap row %d with %d", op.Row1, op.Row2)
	case OpScale:
		return fmt.Sprintf("Scale row %d by %g", op.Row1, op.Scalar)
	case OpScaledAdd:
		if op.Row1 == op.Dest {
			return fmt.Sprintf("Add %g*row %d into row %d", op.Scalar, op.Row2, op.Dest)
		}
		return fmt.Sprintf("Set row %d to row %d + %g*row %d", op.Dest, op.Row1, op.Scalar, op.Row2)
	default:
		return op.Kind.String()
	}
}

// OpLog is the append-only, ordered record of row operations applied to one
// Matrix. Only the owning Matrix appends; everyone else reads.
type OpLog[T Scalar] struct {
	ops []RowOp[T]
}

// append records op at the end of the log.
func (l *OpLog[T]) append(op RowOp[T]) { l.ops = append(l.ops, op) }

// clone returns an independent copy of the log.
func (l *OpLog[T]) clone() OpLog[T] {
	if len(l.ops) == 0 {
		return OpLog[T]{}
	}
	cp := make([]RowOp[T], len(l.ops))
	copy(cp, l.ops)

	return OpLog[T]{ops: cp}
}

// Len returns the number of recorded operations.
func (l *OpLog[T]) Len() int { return len(l.ops) }

// At returns the i-th operation in application order.
func (l *OpLog[T]) At(i int) RowOp[T] { return l.ops[i] }

// All returns a copy of the operations in application order.
func (l *OpLog[T]) All() []RowOp[T] {
	cp := make([]RowOp[T], len(l.ops))
	copy(cp, l.ops)

	return cp
}

// String renders one operation per line.
func (l *OpLog[T]) String() string {
	var b strings.Builder
	for _, op := range l.ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}

	return b.String()
}
