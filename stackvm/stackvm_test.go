package stackvm

import (
	"bytes"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	t.Parallel()

	prog := []Instruction{
		Push(34),
		Push(35),
		Add(),
		Dump(),
		Push(430),
		Push(10),
		Minus(),
		Dump(),
	}
	testRun(t, prog, "69\n420\n")
}

func TestRunZero(t *testing.T) {
	t.Parallel()

	testRun(t, []Instruction{Push(0), Dump()}, "0\n")
}

func TestRunEmptyProgram(t *testing.T) {
	t.Parallel()

	testRun(t, nil, "")
}

func TestRunMinusOrder(t *testing.T) {
	t.Parallel()

	// The topmost value is subtracted from the value below it.
	testRun(t, []Instruction{Push(50), Push(8), Minus(), Dump()}, "42\n")
}

func TestRunStackUnderflow(t *testing.T) {
	t.Parallel()

	testRunError(t, []Instruction{Add()})
	testRunError(t, []Instruction{Minus()})
	testRunError(t, []Instruction{Dump()})
	testRunError(t, []Instruction{Push(1), Add()})
	testRunError(t, []Instruction{Push(1), Minus()})
	testRunError(t, []Instruction{Push(1), Dump(), Dump()})
}

func TestRunNegativeDump(t *testing.T) {
	t.Parallel()

	testRunError(t, []Instruction{Push(10), Push(430), Minus(), Dump()})
	testRunError(t, []Instruction{Push(-1), Dump()})
}

func TestRunUnknownOpcode(t *testing.T) {
	t.Parallel()

	testRunError(t, []Instruction{{Op: Op(123)}})
}

func TestRunWriteError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("broken pipe")
	err := Run(&failingWriter{err: expectedErr}, []Instruction{Push(1), Dump()})
	if err != expectedErr {
		t.Fatalf("unexpected error %v. Expecting %v", err, expectedErr)
	}
}

func testRun(t *testing.T, prog []Instruction, expectedS string) {
	var w bytes.Buffer
	if err := Run(&w, prog); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if w.String() != expectedS {
		t.Fatalf("unexpected output %q. Expecting %q", w.String(), expectedS)
	}
}

func testRunError(t *testing.T, prog []Instruction) {
	var w bytes.Buffer
	if err := Run(&w, prog); err == nil {
		t.Fatalf("Expecting error when running %v. output=%q", prog, w.String())
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
