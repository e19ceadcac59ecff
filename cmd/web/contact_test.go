package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/contact"
	domtest "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/testutil"
)

func validForm() url.Values {
	return url.Values{
		"firstName": {"Ali"},
		"lastName":  {"Khan"},
		"email":     {"a@b.com"},
		"subject":   {"Hello"},
		"message":   {strings.Repeat("m", 20)},
	}
}

// post sends a form with a matching CSRF cookie and field unless withToken is false.
func post(t *testing.T, h http.Handler, target string, form url.Values, withToken, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	body := url.Values{}
	for k, v := range form {
		body[k] = v
	}
	if withToken {
		body.Set("csrf_token", testCSRFToken)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if withToken {
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: testCSRFToken})
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestContactPageRenders(t *testing.T) {
	a, srv := newTestApp(t, testConfig(t, nil))
	rec := get(t, srv, "/contact", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "Contact", strings.TrimSpace(doc.Find(".breadcrumb__title").Text()))
	crumbs := doc.Find(".breadcrumb li")
	require.Equal(t, 2, crumbs.Length())
	require.Equal(t, "Home", strings.TrimSpace(crumbs.Eq(0).Text()))
	require.Equal(t, "Contact", strings.TrimSpace(crumbs.Eq(1).Text()))

	require.Equal(t, "Connect with us", strings.TrimSpace(doc.Find(".contact-hero__title").Text()))
	copyBtn := doc.Find(".contact-hero button")
	dataCopy, _ := domtest.Attr(copyBtn, "data-copy")
	require.Equal(t, contactEmail, dataCopy)
	require.Equal(t, 1, copyBtn.Find(`svg[data-icon="EnvelopeSimple"]`).Length())

	require.Equal(t, len(a.catalog.Branches), doc.Find(".branch-card").Length())
	require.Equal(t, 1, doc.Find(".branch-card__type").Length())

	for _, f := range contact.Fields() {
		require.Equal(t, 1, doc.Find(`#contact-form [name="`+f+`"]`).Length(), f)
	}
	require.Zero(t, doc.Find(".field__message").Length())
	require.Zero(t, doc.Find(".notice--success").Length())
	require.Equal(t, 1, doc.Find(`#contact-form button[type="submit"] svg[data-icon="PaperPlaneRight"]`).Length())

	src, _ := domtest.Attr(doc.Find(".map iframe"), "src")
	require.Contains(t, src, "Gorakhpur")

	var cookieToken string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "csrf_token" {
			cookieToken = c.Value
		}
	}
	require.NotEmpty(t, cookieToken)
	field, _ := domtest.Attr(doc.Find(`input[name="csrf_token"]`), "value")
	require.Equal(t, cookieToken, field)
}

func TestContactSentNotice(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	doc := domtest.ParseHTML(t, get(t, srv, "/contact?sent=1", nil).Body.Bytes())
	require.Equal(t, 1, doc.Find(".notice--success").Length())
}

func TestContactPostWithoutCSRFIsForbidden(t *testing.T) {
	sink := &recordingSink{}
	_, srv := newTestApp(t, testConfig(t, nil), withSink(sink))
	rec := post(t, srv, "/contact", validForm(), false, false)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Empty(t, sink.got)
}

func TestContactPostInvalid(t *testing.T) {
	sink := &recordingSink{}
	a, srv := newTestApp(t, testConfig(t, nil), withSink(sink))

	form := validForm()
	form.Set("firstName", "Al")
	form.Set("email", "not-an-email")
	form.Set("message", strings.Repeat("x", 19))
	rec := post(t, srv, "/contact", form, true, false)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Empty(t, sink.got)

	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	msg := func(field string) string {
		return strings.TrimSpace(doc.Find("#field-" + field + " .field__message").Text())
	}
	require.Equal(t, "Please enter a valid first name", msg("firstName"))
	require.Equal(t, "Please enter a valid email", msg("email"))
	require.Equal(t, "Please enter a valid message", msg("message"))
	require.Empty(t, msg("lastName"))
	require.Empty(t, msg("subject"))

	value, _ := domtest.Attr(doc.Find(`input[name="firstName"]`), "value")
	require.Equal(t, "Al", value)
	invalid, _ := domtest.Attr(doc.Find(`input[name="email"]`), "aria-invalid")
	require.Equal(t, "true", invalid)

	require.Equal(t, float64(1), contactCount(t, a, "invalid"))
}

func TestContactPostInvalidHTMXReturnsFragment(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	form := validForm()
	form.Set("lastName", "Li")
	rec := post(t, srv, "/contact", form, true, true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := rec.Body.String()
	require.NotContains(t, body, "<html")
	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find("#contact-form").Length())
	require.Equal(t, "Please enter a valid last name", strings.TrimSpace(doc.Find("#field-lastName .field__message").Text()))
	require.Equal(t, 1, doc.Find(".field__message").Length())
}

func TestContactPostValidRedirects(t *testing.T) {
	sink := &recordingSink{}
	a, srv := newTestApp(t, testConfig(t, nil), withSink(sink))

	rec := post(t, srv, "/contact", validForm(), true, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/contact?sent=1", rec.Header().Get("Location"))

	require.Len(t, sink.got, 1)
	require.Equal(t, contact.Input{
		FirstName: "Ali",
		LastName:  "Khan",
		Email:     "a@b.com",
		Subject:   "Hello",
		Message:   strings.Repeat("m", 20),
	}, sink.got[0].Input)
	require.NotEmpty(t, sink.got[0].ID)
	require.Equal(t, float64(1), contactCount(t, a, "accepted"))
}

func TestContactPostValidHTMXResetsForm(t *testing.T) {
	sink := &recordingSink{}
	_, srv := newTestApp(t, testConfig(t, nil), withSink(sink))

	rec := post(t, srv, "/contact", validForm(), true, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sink.got, 1)

	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find(".notice--success").Length())
	for _, f := range []string{"firstName", "lastName", "email", "subject"} {
		v, _ := domtest.Attr(doc.Find(`input[name="`+f+`"]`), "value")
		require.Empty(t, v, f)
	}
	require.Empty(t, strings.TrimSpace(doc.Find(`textarea[name="message"]`).Text()))
}

func TestContactSinkFailureIs500(t *testing.T) {
	sink := &recordingSink{err: errors.New("mailbox unavailable")}
	a, srv := newTestApp(t, testConfig(t, nil), withSink(sink))

	rec := post(t, srv, "/contact", validForm(), true, false)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "mailbox unavailable")
	require.Equal(t, float64(1), contactCount(t, a, "failed"))
}

func TestContactValidateField(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))

	rec := post(t, srv, "/contact/validate?field=firstName", url.Values{"firstName": {"Al"}}, true, true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find("#field-firstName").Length())
	require.Equal(t, "Please enter a valid first name", strings.TrimSpace(doc.Find(".field__message").Text()))

	// Other fields are empty but only the requested one is reported.
	require.Equal(t, 1, doc.Find(".field__message").Length())

	rec = post(t, srv, "/contact/validate?field=firstName", url.Values{"firstName": {"Ali"}}, true, true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc = domtest.ParseHTML(t, rec.Body.Bytes())
	require.Zero(t, doc.Find(".field__message").Length())
	value, _ := domtest.Attr(doc.Find(`input[name="firstName"]`), "value")
	require.Equal(t, "Ali", value)
}

func TestContactValidateFieldLocalized(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	rec := post(t, srv, "/contact/validate?field=email&hl=ja", url.Values{"email": {"nope"}}, true, true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := domtest.ParseHTML(t, rec.Body.Bytes())
	msg := strings.TrimSpace(doc.Find(".field__message").Text())
	require.NotEmpty(t, msg)
	require.NotEqual(t, "Please enter a valid email", msg)
}

func TestContactValidateUnknownField(t *testing.T) {
	_, srv := newTestApp(t, testConfig(t, nil))
	rec := post(t, srv, "/contact/validate?field=phone", url.Values{"phone": {"1"}}, true, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"unknown field"}`, rec.Body.String())
}

func contactCount(t *testing.T, a *app, outcome string) float64 {
	t.Helper()
	families, err := a.metrics.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "lms_web_contact_submissions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "outcome" && l.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
