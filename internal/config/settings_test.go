package config

import (
	"math"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestRotateStep(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if step := settings.GetRotateStep(); step != DefaultRotateStep {
		t.Errorf("Expected default rotate step %d, got %v", DefaultRotateStep, step)
	}

	settings.SetRotateStep(30)
	if step := settings.GetRotateStep(); step != 30 {
		t.Errorf("Expected rotate step 30, got %v", step)
	}

	// Test boundary values
	settings.SetRotateStep(0) // Should be clamped to 1
	if settings.GetRotateStep() != MinRotateStep {
		t.Error("Rotate step should be clamped to minimum 1")
	}

	settings.SetRotateStep(720) // Should be clamped to 180
	if settings.GetRotateStep() != MaxRotateStep {
		t.Error("Rotate step should be clamped to maximum 180")
	}

	settings.SetRotateStep(math.NaN()) // Should reset to the default
	if step := settings.GetRotateStep(); step != DefaultRotateStep {
		t.Errorf("NaN rotate step should reset to %d, got %v", DefaultRotateStep, step)
	}
}

func TestRefreshThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if v := settings.GetRefreshThreshold(); v != DefaultRefreshThreshold {
		t.Errorf("Expected default threshold %d, got %v", DefaultRefreshThreshold, v)
	}

	settings.SetRefreshThreshold(12)
	if v := settings.GetRefreshThreshold(); v != 12 {
		t.Errorf("Expected threshold 12, got %v", v)
	}

	settings.SetRefreshThreshold(-3)
	if v := settings.GetRefreshThreshold(); v != DefaultRefreshThreshold {
		t.Errorf("Negative threshold should reset to default, got %v", v)
	}

	settings.SetRefreshThreshold(math.Inf(1))
	if v := settings.GetRefreshThreshold(); v != DefaultRefreshThreshold {
		t.Errorf("Infinite threshold should reset to default, got %v", v)
	}
}

func TestApply(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetLanguage("pt")
	settings.SetRotateStep(45)
	settings.SetRefreshThreshold(8)
	settings.SetRefreshText("Wait")

	opts := settings.Apply(DefaultOptions())
	if opts.Language != "pt" {
		t.Errorf("Expected language pt, got %s", opts.Language)
	}
	if opts.RotateStep != 45 {
		t.Errorf("Expected rotate step 45, got %v", opts.RotateStep)
	}
	if opts.RefreshThreshold != 8 {
		t.Errorf("Expected threshold 8, got %v", opts.RefreshThreshold)
	}
	if opts.Text != "Wait" {
		t.Errorf("Expected text Wait, got %s", opts.Text)
	}
	if opts.BaseHeight != DefaultBaseHeight {
		t.Errorf("Apply should keep base height, got %v", opts.BaseHeight)
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt", "zh"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Language option %s should be present", lang)
		}
	}
}
