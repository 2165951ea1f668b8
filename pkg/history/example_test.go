package history_test

import (
	"fmt"

	"github.com/aretw0/rewind/pkg/history"
)

func Example() {
	h := history.New("A")
	h = h.Set("B")
	h = h.Set("C")
	h = h.Undo()
	h = h.Undo()
	h = h.Redo()
	fmt.Println(h.Past(), h.Present(), h.Future())

	h = h.Set("D")
	fmt.Println(h.Past(), h.Present(), h.Future())
	// Output:
	// [A] B [C]
	// [A B] D []
}

func ExampleHistory_Replace() {
	h := history.New("draft")
	h = h.Replace("draft, edited")
	fmt.Println(h.Present(), h.CanUndo())
	// Output: draft, edited false
}

func ExampleStep() {
	h := history.New(1)
	h, outcome := history.Step(h, history.UndoCommand[int]())
	fmt.Println(h.Present(), outcome)
	// Output: 1 guarded
}
