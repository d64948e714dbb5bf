package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/inventory"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testCards() map[string]inventory.CardSet {
	return map[string]inventory.CardSet{
		"2025.12": {
			Total:         inventory.CardValue{Core: 25000, Outlet: 4000},
			Warehouse:     inventory.CardValue{Core: 8600, Outlet: 1200},
			RetailPlanned: inventory.CardValue{Core: 1400},
		},
		"2025.11": {
			Total: inventory.CardValue{Core: 24000, Outlet: 3900},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat("mlb", testCards())
	})

	if !strings.Contains(out, "--- Cards for brand mlb ---") {
		t.Errorf("PrettyFormat missing brand header:\n%s", out)
	}
	if !strings.Contains(out, "warehouse") {
		t.Errorf("PrettyFormat missing warehouse row:\n%s", out)
	}
	// Thousands grouping from the message printer.
	if !strings.Contains(out, "8,600") {
		t.Errorf("PrettyFormat missing grouped warehouse figure:\n%s", out)
	}
	// Months print in ascending order.
	if strings.Index(out, "2025.11") > strings.Index(out, "2025.12") {
		t.Errorf("PrettyFormat months out of order:\n%s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	out := captureStdout(t, func() {
		CsvFormat("mlb", testCards())
	})

	if !strings.Contains(out, `"brand","month","card","core","outlet"`) {
		t.Errorf("CsvFormat missing header row:\n%s", out)
	}
	if !strings.Contains(out, `"mlb","2025.12","retailPlanned","1400","0"`) {
		t.Errorf("CsvFormat missing retailPlanned row:\n%s", out)
	}
}

func TestPrintMonths(t *testing.T) {
	out := captureStdout(t, func() {
		PrintMonths([]string{"2025.12", "2026.01"})
	})

	if out != "2025.12\n2026.01\n" {
		t.Errorf("PrintMonths output = %q", out)
	}
}
