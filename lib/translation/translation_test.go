package translation

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"":            "en",
		"C.UTF-8":     "en",
		"en":          "en",
		"vi_VN.UTF-8": "vi",
		"VI":          "vi",
		"pt-BR":       "pt",
	}
	for in, want := range cases {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranslateFallsBackToMsgID(t *testing.T) {
	if got := Translate("New items in: %s", "1h 5m"); got != "New items in: 1h 5m" {
		t.Errorf("Translate = %q", got)
	}
}

func TestGetLanguage(t *testing.T) {
	t.Cleanup(func() { Configure("../../locales", "en") })

	Configure("../../locales", "vi_VN.UTF-8")
	if got := GetLanguage(); got != "vi" {
		t.Errorf("GetLanguage = %q, want vi", got)
	}
}
