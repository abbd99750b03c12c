package collection

import (
	"testing"

	"github.com/stashq/stashq-go/apierror"
	"github.com/stashq/stashq-go/proptest"
)

func TestCollection_ValidNames(t *testing.T) {
	valid := []string{
		"posts",
		"user_profiles",
		"v2/posts",
		"0_9",
		"a",
		"_",
		"/",
		"logs/2024/access",
	}

	client := NewClient(nil)
	for _, name := range valid {
		if _, err := client.Collection(name); err != nil {
			t.Errorf("Collection(%q) failed: %v", name, err)
		}
	}
}

func TestCollection_InvalidNames(t *testing.T) {
	invalid := []string{
		"",
		"Posts",
		"user profiles",
		"posts!",
		"naïve",
		"posts-archive",
		"posts.archive",
		" posts",
	}

	client := NewClient(nil)
	for _, name := range invalid {
		_, err := client.Collection(name)
		if err == nil {
			t.Errorf("Collection(%q) should have failed", name)
			continue
		}
		if !apierror.IsInvalidName(err) {
			t.Errorf("Collection(%q) returned %v, want invalid-name error", name, err)
		}
	}
}

func TestCollection_NameProperty(t *testing.T) {
	client := NewClient(nil)

	proptest.QuickCheck(t, "names from the allowed charset always construct", 500, func(g *proptest.Generator) bool {
		name := g.StringOf("abcdefghijklmnopqrstuvwxyz0123456789_/", 1, 40)
		_, err := client.Collection(name)
		return err == nil
	})

	proptest.QuickCheck(t, "names with a character outside the charset never construct", 500, func(g *proptest.Generator) bool {
		name := g.StringOf("abcdefghijklmnopqrstuvwxyz0123456789_/", 0, 20) +
			g.StringOf("ABC -.!%", 1, 1) +
			g.StringOf("abcdefghijklmnopqrstuvwxyz0123456789_/", 0, 20)
		_, err := client.Collection(name)
		return apierror.IsInvalidName(err)
	})
}
