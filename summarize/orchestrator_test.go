package summarize

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/randalmurphal/sumkit/layer"
	"github.com/randalmurphal/sumkit/persona"
	"github.com/randalmurphal/sumkit/profile"
)

const longText = "The deployment pipeline failed during the canary stage. " +
	"Rollback completed within two minutes of the first alert. " +
	"The root cause was a schema migration applied out of order. " +
	"A guard now rejects migrations that skip a version. " +
	"Follow-up work tracks the missing integration test. " +
	"On-call coverage was adequate throughout the incident. " +
	"Customer impact was limited to a single region. " +
	"The postmortem review is scheduled for next week."

func TestMultiProfile_LaptopDefaults(t *testing.T) {
	res, err := MultiProfile(longText, Request{Profiles: []string{"laptop"}})
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}
	if len(res.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", res.Failures)
	}
	if len(res.Profiles) != 1 {
		t.Fatalf("got %d profile results, expected 1", len(res.Profiles))
	}

	pr := res.Profiles[0]
	if pr.Profile.Name != "laptop" {
		t.Errorf("profile = %q", pr.Profile.Name)
	}
	if pr.Budget.TargetChars != 4392 {
		t.Errorf("TargetChars = %d, expected 4392", pr.Budget.TargetChars)
	}

	wantLayers := []struct {
		name    string
		ceiling int
	}{
		{"headline", 439},
		{"one_screen", 3513},
		{"deep", 4392},
	}
	if len(pr.Layers) != len(wantLayers) {
		t.Fatalf("got %d layers, expected %d", len(pr.Layers), len(wantLayers))
	}
	for i, want := range wantLayers {
		lr := pr.Layers[i]
		if lr.Layer != want.name {
			t.Errorf("layer[%d] = %q, expected %q", i, lr.Layer, want.name)
		}
		if lr.Ceiling != want.ceiling {
			t.Errorf("layer %s ceiling = %d, expected %d", want.name, lr.Ceiling, want.ceiling)
		}
		if n := utf8.RuneCountInString(lr.Text); n > lr.Ceiling {
			t.Errorf("layer %s: %d runes exceeds ceiling %d", want.name, n, lr.Ceiling)
		}
	}
}

func TestMultiProfile_BudgetContainment(t *testing.T) {
	profiles := profile.BuiltinNames()
	personas := []string{"", "developer", "designer", "manager"}

	for _, per := range personas {
		res, err := MultiProfile(longText, Request{Profiles: profiles, Persona: per})
		if err != nil {
			t.Fatalf("persona %q: MultiProfile() error: %v", per, err)
		}
		if len(res.Failures) != 0 {
			t.Fatalf("persona %q: unexpected failures: %v", per, res.Failures)
		}
		for _, pr := range res.Profiles {
			for _, lr := range pr.Layers {
				if n := utf8.RuneCountInString(lr.Text); n > lr.Ceiling {
					t.Errorf("persona %q, %s/%s: %d runes exceeds ceiling %d",
						per, pr.Profile.Name, lr.Layer, n, lr.Ceiling)
				}
			}
		}
	}
}

func TestMultiProfile_OrderPreserved(t *testing.T) {
	res, err := MultiProfile(longText, Request{
		Profiles: []string{"tweet", "laptop", "phone"},
		Layers:   []string{"deep", "headline"},
	})
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}

	wantProfiles := []string{"tweet", "laptop", "phone"}
	for i, want := range wantProfiles {
		if res.Profiles[i].Profile.Name != want {
			t.Errorf("profile[%d] = %q, expected %q", i, res.Profiles[i].Profile.Name, want)
		}
	}
	wantLayers := []string{"deep", "headline"}
	for _, pr := range res.Profiles {
		for i, want := range wantLayers {
			if pr.Layers[i].Layer != want {
				t.Errorf("%s layer[%d] = %q, expected %q", pr.Profile.Name, i, pr.Layers[i].Layer, want)
			}
		}
	}
}

func TestMultiProfile_PartialFailure(t *testing.T) {
	res, err := MultiProfile(longText, Request{
		Profiles: []string{"laptop", "watch", "tweet"},
	})
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}

	if len(res.Profiles) != 2 {
		t.Fatalf("got %d profile results, expected 2", len(res.Profiles))
	}
	if res.Profiles[0].Profile.Name != "laptop" || res.Profiles[1].Profile.Name != "tweet" {
		t.Errorf("surviving profiles = %q, %q",
			res.Profiles[0].Profile.Name, res.Profiles[1].Profile.Name)
	}

	if len(res.Failures) != 1 {
		t.Fatalf("got %d failures, expected 1", len(res.Failures))
	}
	fail := res.Failures[0]
	if fail.Profile != "watch" {
		t.Errorf("failure profile = %q", fail.Profile)
	}
	if !errors.Is(fail, profile.ErrProfileNotFound) {
		t.Errorf("failure = %v, expected ErrProfileNotFound", fail.Err)
	}
}

func TestMultiProfile_RequestErrors(t *testing.T) {
	_, err := MultiProfile(longText, Request{
		Profiles: []string{"laptop"},
		Layers:   []string{"bogus"},
	})
	if !errors.Is(err, layer.ErrUnknownLayer) {
		t.Errorf("unknown layer: got %v", err)
	}

	_, err = MultiProfile(longText, Request{
		Profiles: []string{"laptop"},
		Persona:  "bogus",
	})
	if !errors.Is(err, persona.ErrUnknownPersona) {
		t.Errorf("unknown persona: got %v", err)
	}
}

func TestMultiProfile_DeepLayerFingerprint(t *testing.T) {
	// Short text fits the deep ceiling whole, leaving room for the
	// trailing fingerprint marker.
	text := "Alpha beta gamma. Delta epsilon."
	res, err := MultiProfile(text, Request{
		Profiles: []string{"laptop"},
		Layers:   []string{"headline", "deep"},
	})
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}

	deep, ok := res.Get("laptop", "deep")
	if !ok {
		t.Fatal("deep layer missing")
	}
	want := text + " [hash:" + Fingerprint(text) + "]"
	if deep != want {
		t.Errorf("deep = %q, expected %q", deep, want)
	}

	headline, ok := res.Get("laptop", "headline")
	if !ok {
		t.Fatal("headline layer missing")
	}
	if strings.Contains(headline, "[hash:") {
		t.Errorf("headline carries a fingerprint: %q", headline)
	}
}

func TestMultiProfile_PersonaFraming(t *testing.T) {
	res, err := MultiProfile(longText, Request{
		Profiles: []string{"laptop"},
		Persona:  "manager",
	})
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}

	// The manager persona's one_screen ceiling is far above its
	// overhead, so the framing survives.
	oneScreen, ok := res.Get("laptop", "one_screen")
	if !ok {
		t.Fatal("one_screen layer missing")
	}
	if !strings.Contains(oneScreen, "From a project management viewpoint:") {
		t.Errorf("one_screen missing persona framing: %q", oneScreen)
	}

	// Headlines stay terse: vocabulary only, no framing.
	headline, ok := res.Get("laptop", "headline")
	if !ok {
		t.Fatal("headline layer missing")
	}
	if strings.Contains(headline, "From a project management viewpoint:") {
		t.Errorf("headline carries persona framing: %q", headline)
	}
}

func TestMultiProfile_NilRegistryUsesBuiltins(t *testing.T) {
	res, err := MultiProfile(longText, Request{Profiles: []string{"phone"}})
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}
	if len(res.Profiles) != 1 || res.Profiles[0].Profile.Name != "phone" {
		t.Fatalf("builtin phone not resolved: %+v", res.Profiles)
	}
}

func TestMultiProfile_Deterministic(t *testing.T) {
	req := Request{Profiles: []string{"laptop", "tweet"}, Persona: "developer"}
	first, err := MultiProfile(longText, req)
	if err != nil {
		t.Fatalf("MultiProfile() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := MultiProfile(longText, req)
		if err != nil {
			t.Fatalf("MultiProfile() error: %v", err)
		}
		for i, pr := range again.Profiles {
			for j, lr := range pr.Layers {
				if lr != first.Profiles[i].Layers[j] {
					t.Fatalf("%s/%s differs between runs", pr.Profile.Name, lr.Layer)
				}
			}
		}
	}
}

func TestLayered(t *testing.T) {
	results, err := Layered(longText, 1000, nil, nil)
	if err != nil {
		t.Fatalf("Layered() error: %v", err)
	}

	wantCeilings := map[string]int{"headline": 100, "one_screen": 800, "deep": 1000}
	if len(results) != len(wantCeilings) {
		t.Fatalf("got %d layers, expected %d", len(results), len(wantCeilings))
	}
	for _, lr := range results {
		if lr.Ceiling != wantCeilings[lr.Layer] {
			t.Errorf("%s ceiling = %d, expected %d", lr.Layer, lr.Ceiling, wantCeilings[lr.Layer])
		}
		if n := utf8.RuneCountInString(lr.Text); n > lr.Ceiling {
			t.Errorf("%s: %d runes exceeds ceiling %d", lr.Layer, n, lr.Ceiling)
		}
	}
}

func TestLayered_UnknownLayer(t *testing.T) {
	_, err := Layered(longText, 1000, []string{"nope"}, nil)
	if !errors.Is(err, layer.ErrUnknownLayer) {
		t.Errorf("got %v, expected ErrUnknownLayer", err)
	}
}

func TestResultGet_Missing(t *testing.T) {
	res := &Result{}
	if _, ok := res.Get("laptop", "deep"); ok {
		t.Error("Get on empty result reported a hit")
	}
}
