package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/config"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/contact"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/observability"
	domtest "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/testutil"
)

const testCSRFToken = "00112233445566778899aabbccddeeff"

type recordingSink struct {
	got []contact.Submission
	err error
}

func (s *recordingSink) Emit(_ context.Context, sub contact.Submission) error {
	s.got = append(s.got, sub)
	return s.err
}

func testConfig(t *testing.T, env map[string]string) config.Config {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	cfg, err := config.Load(config.WithEnvMap(env), config.WithoutSystemEnv(), config.WithEnvFile(""))
	require.NoError(t, err)
	return cfg
}

// newTestApp builds the app the way runServe does, with a recording sink.
func newTestApp(t *testing.T, cfg config.Config, opts ...appOption) (*app, http.Handler) {
	t.Helper()
	metrics, err := observability.NewMetrics()
	require.NoError(t, err)
	a, err := newApp(cfg, zaptest.NewLogger(t), metrics, opts...)
	require.NoError(t, err)
	return a, a.routes()
}

func get(t *testing.T, h http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	rec := get(t, srv, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeRendersEveryCategoryAndCourse(t *testing.T) {
	a, srv := newTestApp(t, testConfig(t, nil))
	rec := get(t, srv, "/", map[string]string{"Accept-Language": "en"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "Learn with expert anytime anywhere", strings.TrimSpace(doc.Find(".hero__title").Text()))
	require.Contains(t, doc.Find(".hero__body").Text(), "Our mission is to help people")

	tiles := doc.Find(".category-grid a.category-tile")
	n := len(a.catalog.Categories)
	require.Equal(t, n, tiles.Length())
	require.Equal(t, n-min(n, 4), domtest.CountWithClass(tiles, "is-hidden-sm"))
	require.Equal(t, n-min(n, 6), domtest.CountWithClass(tiles, "is-hidden-md"))
	require.Equal(t, n-min(n, 12), domtest.CountWithClass(tiles, "is-hidden-lg"))

	first := tiles.First()
	href, _ := domtest.Attr(first, "href")
	require.Equal(t, a.catalog.Categories[0].Path, href)
	require.Contains(t, first.Text(), a.catalog.Categories[0].Name)
	require.Contains(t, first.Text(), "Courses")

	browse := doc.Find(`a[href="/categories"]`)
	require.Equal(t, 1, browse.Length())
	require.Equal(t, 1, browse.Find(`svg[data-icon="ArrowRight"]`).Length())

	cards := doc.Find(".course-grid .course-card")
	require.Equal(t, len(a.catalog.Courses), cards.Length())
	cards.Each(func(i int, card *goquery.Selection) {
		id, _ := domtest.Attr(card, "data-course-id")
		require.Equal(t, a.catalog.Courses[i].ID, id)
	})

	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Equal(t, "Home", strings.TrimSpace(doc.Find(".site-nav a.is-active").Text()))
}

func TestHomeLocalized_JA(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	rec := get(t, srv, "/?hl=ja", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	lang, _ := domtest.Attr(doc.Find("html"), "lang")
	require.Equal(t, "ja", lang)
	require.Equal(t, "いつでもどこでも専門家から学ぼう", strings.TrimSpace(doc.Find(".hero__title").Text()))
	require.Equal(t, "ja", rec.Header().Get("Content-Language"))
}

func TestUnknownIconRendersBlankGlyph(t *testing.T) {
	a, srv := newTestApp(t, testConfig(t, nil))
	a.catalog.Categories[0].IconID = "NoSuchIcon"

	doc := domtest.ParseHTML(t, get(t, srv, "/", nil).Body.Bytes())
	icon := doc.Find(".category-tile").First().Find("svg")
	require.Equal(t, 1, icon.Length())
	id, _ := domtest.Attr(icon, "data-icon")
	require.Equal(t, "blank", id)
}

func TestEmptyCatalogRendersEmptyGrids(t *testing.T) {
	a, srv := newTestApp(t, testConfig(t, nil))
	a.catalog.Categories = nil
	a.catalog.Courses = nil
	a.catalog.Branches = nil

	doc := domtest.ParseHTML(t, get(t, srv, "/", nil).Body.Bytes())
	require.Equal(t, 1, doc.Find(".category-grid").Length())
	require.Zero(t, doc.Find(".category-tile").Length())
	require.Zero(t, doc.Find(".course-card").Length())

	rec := get(t, srv, "/contact", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc = domtest.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find(".branch-grid").Length())
	require.Zero(t, doc.Find(".branch-card").Length())
}

func TestAssetsServedWithCacheHeaders(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	rec := get(t, srv, "/assets/css/app.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("ETag"))
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age")
	body := rec.Body.String()
	require.Contains(t, body, ".is-hidden-sm")
	require.Contains(t, body, ".is-hidden-md")
	require.Contains(t, body, ".is-hidden-lg")

	require.Equal(t, http.StatusOK, get(t, srv, "/assets/img/courses/go-web.svg", nil).Code)
	require.Equal(t, http.StatusNotFound, get(t, srv, "/assets/nope.css", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a, srv := newTestApp(t, testConfig(t, nil))
	require.Equal(t, http.StatusOK, get(t, srv, "/", nil).Code)

	rec := get(t, srv, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "lms_web_http_requests_total")

	count, err := testutil.GatherAndCount(a.metrics.Registry(), "lms_web_http_requests_total")
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, 1)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig(t, map[string]string{"LMS_WEB_METRICS_ENABLED": "false"})
	a, err := newApp(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	rec := get(t, a.routes(), "/metrics", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDevModeReadsTemplatesFromDisk(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"LMS_WEB_DEV":           "true",
		"LMS_WEB_TEMPLATES_DIR": "../../public/templates",
	})
	_, srv := newTestApp(t, cfg)
	rec := get(t, srv, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "no-cache", get(t, srv, "/assets/css/app.css", nil).Header().Get("Cache-Control"))
}

func TestTemplateExecErrorIs500(t *testing.T) {
	broken := fstest.MapFS{
		"layouts/base.tmpl": {Data: []byte(`{{define "base"}}<html>{{template "content" .}}</html>{{end}}`)},
		"pages/home.tmpl":   {Data: []byte(`{{define "content"}}{{.NoSuchField}}{{end}}`)},
	}
	a, srv := newTestApp(t, testConfig(t, nil), withTemplates(broken))
	rec := get(t, srv, "/", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "<html>")

	count, err := testutil.GatherAndCount(a.metrics.Registry(), "lms_web_template_errors_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.Equal(t, http.StatusInternalServerError, get(t, srv, "/contact", nil).Code)
}

func TestNewAppRejectsMissingTemplates(t *testing.T) {
	_, err := newApp(testConfig(t, nil), nil, nil, withTemplates(fstest.MapFS{}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse templates")
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, version+"\n", out.String())
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	t.Setenv("LMS_WEB_ADDR", ":7000")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--addr", ":9999", "--dev", "--templates", "tmpl", "--env-file", "does-not-exist.env"}))

	flags := serveFlags{}
	flags.addr, _ = cmd.Flags().GetString("addr")
	flags.dev, _ = cmd.Flags().GetBool("dev")
	flags.templatesDir, _ = cmd.Flags().GetString("templates")
	flags.envFile, _ = cmd.Flags().GetString("env-file")

	cfg, err := loadConfig(cmd, flags)
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Server.Addr)
	require.True(t, cfg.Server.DevMode)
	require.Equal(t, "tmpl", cfg.Server.TemplatesDir)

	cmd = newRootCmd()
	cfg, err = loadConfig(cmd, serveFlags{})
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Server.Addr)
}
