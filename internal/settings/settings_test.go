package settings

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoader_Load_AllEnvironments(t *testing.T) {
	loader := NewLoader()

	for _, env := range Environments() {
		doc, err := loader.Load(string(env))
		if err != nil {
			t.Fatalf("Load(%s): %v", env, err)
		}
		if doc.WebDriver.ExplicitWaitSeconds <= 0 {
			t.Errorf("%s: explicit_wait=%d, want positive", env, doc.WebDriver.ExplicitWaitSeconds)
		}
		if doc.Application.BaseURL == "" {
			t.Errorf("%s: base_url is empty", env)
		}
		if doc.Performance.ThresholdSeconds <= 0 {
			t.Errorf("%s: performance_threshold=%d, want positive", env, doc.Performance.ThresholdSeconds)
		}
	}
}

func TestLoader_Load_UnknownEnvironment(t *testing.T) {
	for _, name := range []string{"", "qa", "production", "DEV"} {
		_, err := NewLoader().Load(name)
		var unknown *UnknownEnvironmentError
		if !errors.As(err, &unknown) {
			t.Errorf("Load(%q) error=%v, want UnknownEnvironmentError", name, err)
		}
	}
}

func TestLoader_Load_CachesDocument(t *testing.T) {
	loader := NewLoader()

	first, err := loader.Load("dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := loader.Load("dev")
	if err != nil {
		t.Fatalf("Load (cached): %v", err)
	}
	if first != second {
		t.Errorf("Load returned different instances: %p vs %p", first, second)
	}
}

func TestLoader_Load_DevDocument(t *testing.T) {
	doc, err := NewLoader().Load("dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Document{
		WebDriver:   WebDriverSettings{ExplicitWaitSeconds: 20},
		Application: ApplicationSettings{BaseURL: "https://opensource-demo.orangehrmlive.com/web/index.php"},
		Performance: PerformanceSettings{ThresholdSeconds: 5},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("dev document mismatch (-want +got):\n%s", diff)
	}

	if doc.WebDriver.ExplicitWait() != 20*time.Second {
		t.Errorf("ExplicitWait=%v, want 20s", doc.WebDriver.ExplicitWait())
	}
	if doc.Performance.Threshold() != 5*time.Second {
		t.Errorf("Threshold=%v, want 5s", doc.Performance.Threshold())
	}
}

func TestLoader_Load_MissingDocument(t *testing.T) {
	loader := newLoaderFS(fstest.MapFS{})

	_, err := loader.Load("dev")
	var notFound *SettingsNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error=%v, want SettingsNotFoundError", err)
	}
	if notFound.Env != Dev {
		t.Errorf("Env=%q, want dev", notFound.Env)
	}
}

func TestLoader_Load_MalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{{`},
		{"missing webdriver section", `{"application":{"base_url":"http://x"},"performance":{"performance_threshold":5}}`},
		{"missing explicit_wait", `{"webdriver":{},"application":{"base_url":"http://x"},"performance":{"performance_threshold":5}}`},
		{"missing base_url", `{"webdriver":{"explicit_wait":20},"application":{},"performance":{"performance_threshold":5}}`},
		{"missing threshold", `{"webdriver":{"explicit_wait":20},"application":{"base_url":"http://x"},"performance":{}}`},
		{"wrong wait type", `{"webdriver":{"explicit_wait":"20"},"application":{"base_url":"http://x"},"performance":{"performance_threshold":5}}`},
		{"zero wait", `{"webdriver":{"explicit_wait":0},"application":{"base_url":"http://x"},"performance":{"performance_threshold":5}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader := newLoaderFS(fstest.MapFS{
				"environments/dev.json": &fstest.MapFile{Data: []byte(tc.body)},
			})
			_, err := loader.Load("dev")
			var malformed *SettingsMalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("error=%v, want SettingsMalformedError", err)
			}
		})
	}
}
