package utils

import "testing"

func TestCapitalize(t *testing.T) {
	if got := Capitalize("HELLO world"); got != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", got)
	}
}

func TestPrettyHotspotName(t *testing.T) {
	if got := PrettyHotspotName("happy-tall-penguin"); got != "Happy Tall Penguin" {
		t.Errorf("Expected 'Happy Tall Penguin', got '%s'", got)
	}
}
