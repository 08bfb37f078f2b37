package utils

import "testing"

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Fatalf("ParseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "0", "-1", "1.5"} {
		if _, err := ParseID(bad); err == nil {
			t.Errorf("ParseID(%q) succeeded", bad)
		}
	}
}

func TestGetenvList(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " http://a ,, http://b ")
	got := GetenvList("TEST_ORIGINS", nil)
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Fatalf("GetenvList = %q", got)
	}

	t.Setenv("TEST_ORIGINS", " , ")
	if got := GetenvList("TEST_ORIGINS", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("fallback = %q", got)
	}
}
