package timer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/testutil"
)

type statusGolden struct {
	name     string
	snapshot []byte
}

func (s statusGolden) Output() ([]byte, string) {
	return s.snapshot, s.name
}

func TestStatusRendering(t *testing.T) {
	oneMin := New(1, epoch)
	twenty := New(20, epoch)
	custom := NewCustom(90, epoch)

	statuses := []Status{
		{},
		{Record: &twenty, Remaining: 1200},
		{Record: &oneMin, Remaining: 45},
		{Record: &oneMin, Remaining: 0},
		{Record: &oneMin, Remaining: -65},
		{Record: &custom, Remaining: 2700},
	}

	var b strings.Builder

	for _, s := range statuses {
		fmt.Fprintf(&b, "%q %q %.2f\n", s.Title(), s.Tooltip(), s.Progress())
	}

	testutil.CompareGoldenFile(t, statusGolden{
		name:     "status",
		snapshot: []byte(b.String()),
	})
}

func TestAlertMessage(t *testing.T) {
	rec := models.TimerRecord{Name: "5 min Timer", SoundsPlayed: 1}

	if got := alertMessage(&rec, 0); got != "5 min Timer finished!" {
		t.Errorf("unexpected first alert message: %q", got)
	}

	rec.SoundsPlayed = 3
	if got := alertMessage(&rec, -130); got != "5 min Timer is overdue by 2m 10s" {
		t.Errorf("unexpected overdue alert message: %q", got)
	}
}
