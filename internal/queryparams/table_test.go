package queryparams

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTable(t *testing.T) {
	t.Run("Set ignores empty values", func(t *testing.T) {
		table := &Table{}
		table.Set(ActionName, "Home")
		table.Set(ActionName, "")
		value, found := table.Get(ActionName)
		if !found || value != "Home" {
			t.Fatal("unexpected value", value, found)
		}
		table.Set(Referrer, "")
		if _, found := table.Get(Referrer); found {
			t.Fatal("should not have stored an empty value")
		}
	})

	t.Run("Set replaces existing values", func(t *testing.T) {
		table := &Table{}
		table.Set(URL, "/home")
		table.Set(URL, "http://xq/home")
		value, _ := table.Get(URL)
		if value != "http://xq/home" {
			t.Fatal("unexpected value", value)
		}
		if table.Len() != 1 {
			t.Fatal("unexpected length", table.Len())
		}
	})

	t.Run("SetInt and SetFloat format numbers", func(t *testing.T) {
		table := &Table{}
		table.SetInt(SiteID, 4)
		table.SetInt(RandomNumber, 0)
		table.SetFloat(EventValue, 3)
		table.SetFloat(Revenue, 12.5)
		expect := map[string]string{
			SiteID:       "4",
			RandomNumber: "0",
			EventValue:   "3",
			Revenue:      "12.5",
		}
		for key, value := range expect {
			if got, _ := table.Get(key); got != value {
				t.Fatal("for", key, "expected", value, "got", got)
			}
		}
	})

	t.Run("Clear empties the table", func(t *testing.T) {
		table := &Table{}
		table.Set(ActionName, "Home")
		table.Clear()
		if table.Len() != 0 {
			t.Fatal("expected empty table")
		}
		if diff := cmp.Diff([]string{}, table.Keys()); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		table := &Table{}
		if table.Encode() != "" {
			t.Fatal("expected empty string")
		}
	})

	t.Run("keys are sorted and values percent-encoded", func(t *testing.T) {
		table := &Table{}
		table.Set(EventCategory, "Action")
		table.Set(EventAction, "Click")
		table.Set(ActionName, "首頁")
		table.Set(DatetimeOfRequest, "2024-01-02 03:04:05")
		table.Set(URL, "http://xq/a&b")
		expect := "?action_name=%E9%A6%96%E9%A0%81" +
			"&cdt=2024-01-02+03%3A04%3A05" +
			"&e_a=Click&e_c=Action" +
			"&url=http%3A%2F%2Fxq%2Fa%26b"
		if diff := cmp.Diff(expect, table.Encode()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("keys are percent-encoded too", func(t *testing.T) {
		table := &Table{}
		table.Set("dimension 1", "x")
		if diff := cmp.Diff("?dimension+1=x", table.Encode()); diff != "" {
			t.Fatal(diff)
		}
	})
}
