// Package stackvm implements a tiny stack machine over int64 values
// with line-oriented decimal output.
package stackvm

import (
	"fmt"
	"io"

	"github.com/fastdec/fastdec"
)

// Op is a stack machine operation code.
type Op int

const (
	// OpPush pushes the instruction operand onto the stack.
	OpPush Op = iota

	// OpAdd pops two values and pushes their sum.
	OpAdd

	// OpMinus pops two values and pushes the second popped value
	// minus the first.
	OpMinus

	// OpDump pops a value and writes its decimal representation
	// followed by '\n' to the output writer.
	OpDump
)

// Instruction is a single stack machine instruction.
//
// Operand is used by OpPush only.
type Instruction struct {
	Op      Op
	Operand int64
}

// Push returns an instruction pushing v onto the stack.
func Push(v int64) Instruction {
	return Instruction{Op: OpPush, Operand: v}
}

// Add returns an instruction adding the two topmost stack values.
func Add() Instruction {
	return Instruction{Op: OpAdd}
}

// Minus returns an instruction subtracting the topmost stack value
// from the value below it.
func Minus() Instruction {
	return Instruction{Op: OpMinus}
}

// Dump returns an instruction writing the topmost stack value to the
// output writer.
func Dump() Instruction {
	return Instruction{Op: OpDump}
}

// Run executes prog on an empty stack, writing dumped values to w.
//
// Every OpDump goes through fastdec.WriteUint, so the digits and the
// trailing newline are emitted in a single Write call. Values on the
// stack are signed, but only non-negative values may be dumped.
func Run(w io.Writer, prog []Instruction) error {
	var stack []int64
	for i, ins := range prog {
		switch ins.Op {
		case OpPush:
			stack = append(stack, ins.Operand)
		case OpAdd:
			if len(stack) < 2 {
				return fmt.Errorf("stack underflow on instruction %d", i)
			}
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] += a
		case OpMinus:
			if len(stack) < 2 {
				return fmt.Errorf("stack underflow on instruction %d", i)
			}
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] -= a
		case OpDump:
			if len(stack) == 0 {
				return fmt.Errorf("stack underflow on instruction %d", i)
			}
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if v < 0 {
				return fmt.Errorf("cannot dump negative value %d on instruction %d", v, i)
			}
			if err := fastdec.WriteUint(w, uint64(v)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown opcode %d on instruction %d", ins.Op, i)
		}
	}
	return nil
}
