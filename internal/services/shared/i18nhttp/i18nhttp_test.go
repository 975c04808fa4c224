package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestSupportedLeadsWithDefault(t *testing.T) {
	t.Parallel()

	tags := Supported()
	if len(tags) == 0 {
		t.Fatal("expected supported tags")
	}
	if tags[0] != Default() {
		t.Fatalf("tags[0] = %v, want %v", tags[0], Default())
	}
}

func TestResolveTagQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
	tag, persist := ResolveTag(req)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want %v", tag, language.BrazilianPortuguese)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestResolveTagCookieBeatsAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "es"})
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	tag, persist := ResolveTag(req)
	if tag != language.Spanish {
		t.Fatalf("tag = %v, want %v", tag, language.Spanish)
	}
	if persist {
		t.Fatal("persist = true, want false")
	}
}

func TestResolveTagAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,es;q=0.5")
	tag, _ := ResolveTag(req)
	if tag != language.Spanish {
		t.Fatalf("tag = %v, want %v", tag, language.Spanish)
	}
}

func TestResolveTagInvalidQueryFallsThrough(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=zz-bogus", nil)
	tag, persist := ResolveTag(req)
	if tag != Default() {
		t.Fatalf("tag = %v, want default", tag)
	}
	if persist {
		t.Fatal("persist = true, want false")
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(nil)
	if tag != Default() || persist {
		t.Fatalf("ResolveTag(nil) = %v, %v", tag, persist)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetLanguageCookie(rr, language.Spanish)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "es" {
		t.Fatalf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}
}

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	if got := NormalizeTag("pt"); got != language.BrazilianPortuguese {
		t.Fatalf("NormalizeTag(pt) = %v", got)
	}
	if got := NormalizeTag("tlh"); got != Default() {
		t.Fatalf("NormalizeTag(tlh) = %v, want default", got)
	}
}
