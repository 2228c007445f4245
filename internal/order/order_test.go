package order

import "testing"

func TestFixedIsFresh(t *testing.T) {
	a := Fixed()
	a[0].Qty = 99

	if got := Fixed()[0].Qty; got != 2 {
		t.Fatalf("qty=%d want=2", got)
	}
}
