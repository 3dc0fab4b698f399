package sheetq

import (
	"testing"
)

func row(cells ...string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func TestFilterPendingStatusAndThreshold(t *testing.T) {
	values := [][]interface{}{
		row("ID", "Audio URL", "Duration", "Status"), // header, filtered by content
		row("1", "https://a.example/1.mp3", "600", "Pending"),
		row("2", "https://a.example/2.mp3", "100", "Pending"),
		row("3", "https://a.example/3.mp3", "450", "Pending"),
		row("4", "https://a.example/4.mp3", "900", "Processed"),
	}
	got := filterPending(values)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].RowIndex != 2 || got[1].RowIndex != 4 {
		t.Fatalf("rows = [%d %d], want [2 4]", got[0].RowIndex, got[1].RowIndex)
	}
	if got[0].AudioURL != "https://a.example/1.mp3" {
		t.Fatalf("audio url = %q", got[0].AudioURL)
	}
}

func TestFilterPendingDurationEdges(t *testing.T) {
	values := [][]interface{}{
		row("1", "https://a.example/1.mp3", "250", "Pending"),  // at most threshold: excluded
		row("2", "https://a.example/2.mp3", "300", "Pending"),  // exactly threshold: excluded
		row("3", "https://a.example/3.mp3", "", "Pending"),     // blank -> default 600: included
		row("4", "https://a.example/4.mp3", "abc", "Pending"),  // unparsable: skipped
		row("5", "https://a.example/5.mp3", "300.5", "Pending"), // float parse: included
	}
	got := filterPending(values)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].RowIndex != 3 || got[0].DurationSeconds != 600 {
		t.Fatalf("blank duration row = %+v", got[0])
	}
	if got[1].RowIndex != 5 {
		t.Fatalf("float duration row = %d, want 5", got[1].RowIndex)
	}
}

func TestFilterPendingShortRows(t *testing.T) {
	values := [][]interface{}{
		row("1", "https://a.example/1.mp3"),
		row(),
		nil,
	}
	if got := filterPending(values); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestFilterPendingPreservesSheetOrder(t *testing.T) {
	values := [][]interface{}{
		row("1", "u1", "500", "Pending"),
		row("2", "u2", "900", "Pending"),
		row("3", "u3", "400", "Pending"),
	}
	got := filterPending(values)
	for i, want := range []int{1, 2, 3} {
		if got[i].RowIndex != want {
			t.Fatalf("got[%d].RowIndex = %d, want %d", i, got[i].RowIndex, want)
		}
	}
}

func TestParseTargetCount(t *testing.T) {
	cases := []struct {
		name   string
		values [][]interface{}
		want   int
	}{
		{"empty range", nil, 2},
		{"empty row", [][]interface{}{{}}, 2},
		{"valid", [][]interface{}{{"5"}}, 5},
		{"padded", [][]interface{}{{" 3 "}}, 3},
		{"garbage", [][]interface{}{{"many"}}, 2},
		{"zero", [][]interface{}{{"0"}}, 2},
		{"negative", [][]interface{}{{"-4"}}, 2},
	}
	for _, tc := range cases {
		if got := parseTargetCount(tc.values); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}
