package printers

import (
	"strings"
	"testing"
)

func TestLegendListsEveryIcon(t *testing.T) {
	out := Legend().String()
	for _, alias := range []string{"default", "event", "done", "square", "privacy", "trash"} {
		if !strings.Contains(out, alias) {
			t.Errorf("legend missing alias %q:\n%s", alias, out)
		}
	}
	if !strings.Contains(out, "ALIAS") {
		t.Errorf("legend missing header:\n%s", out)
	}
}
