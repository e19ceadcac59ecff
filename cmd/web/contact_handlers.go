package main

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/catalog"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/contact"
	handlersPkg "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/handlers"
	mw "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/middleware"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/observability"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/seo"
)

const (
	contactFormID   = "contact-form"
	contactPath     = "/contact"
	contactSentPath = "/contact?sent=1"
	contactEmail    = "test@gmail.com"
	contactPhone    = "(219) 555-0114"
	contactAddress  = "1702 Olympic Boulevard Santa Monica, CA 90404"
	contactMapURL   = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d113996.470884993!2d83.3215085045414!3d26.763844606559932!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3991446a0c332489%3A0x1ff3f97fdcc6bfa2!2sGorakhpur%2C%20Uttar%20Pradesh!5e0!3m2!1sen!2sin!4v1697737057968!5m2!1sen!2sin"
)

// contactHandler renders the contact page with an empty form.
func (a *app) contactHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	sent := r.URL.Query().Get("sent") == "1"
	form := a.buildContactFormView(lang, mw.CSRFToken(r.Context()), contact.Input{}, nil, sent)
	a.renderContactPage(w, r, lang, http.StatusOK, form)
}

// contactSubmitHandler validates the posted form. Invalid input re-renders the form with 422;
// a valid submission is emitted to the sink and answered with a redirect, or a fresh form for htmx.
func (a *app) contactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	logger := observability.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	token := mw.CSRFToken(r.Context())

	form := contact.NewForm(a.sink, contact.WithClock(a.now))
	ok, err := form.Submit(r.Context(), contact.InputFromForm(r.PostForm))
	if err != nil {
		a.metrics.ObserveContact(observability.ContactFailed)
		logger.Error("contact submission failed", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "could not send message")
		return
	}
	if !ok {
		a.metrics.ObserveContact(observability.ContactInvalid)
		fields := make([]string, 0, len(form.Errors()))
		for f := range form.Errors() {
			fields = append(fields, f)
		}
		logger.Debug("contact form invalid", zap.Strings("fields", fields))

		view := a.buildContactFormView(lang, token, form.Values(), form.Errors(), false)
		if mw.IsHTMX(r.Context()) {
			a.renderTemplate(w, r, "contact", "contact_form", http.StatusUnprocessableEntity, view)
			return
		}
		a.renderContactPage(w, r, lang, http.StatusUnprocessableEntity, view)
		return
	}

	a.metrics.ObserveContact(observability.ContactAccepted)
	if mw.IsHTMX(r.Context()) {
		form.Reset()
		view := a.buildContactFormView(lang, token, form.Values(), nil, true)
		a.renderTemplate(w, r, "contact", "contact_form", http.StatusOK, view)
		return
	}
	http.Redirect(w, r, contactSentPath, http.StatusSeeOther)
}

// contactValidateHandler re-renders a single field with only its own message.
func (a *app) contactValidateHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	field := r.URL.Query().Get("field")
	if _, known := contact.RuleFor(field); !known {
		mw.WriteError(w, r, http.StatusBadRequest, "unknown field")
		return
	}
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	in := contact.InputFromForm(r.PostForm)
	msg := ""
	if rule, ok := contact.ValidateField(field, in); !ok {
		msg = a.i18nOrDefault(lang, rule.MessageKey, rule.Message)
	}
	view := a.buildFieldView(lang, field, in.Value(field), msg)
	a.renderTemplate(w, r, "contact", "field", http.StatusOK, view)
}

func (a *app) renderContactPage(w http.ResponseWriter, r *http.Request, lang string, status int, form handlersPkg.FormView) {
	content := a.pageCopy(r, "contact", lang)
	title := a.i18nOrDefault(lang, "contact.title", "Contact")
	seoTitle := content.SEO.Title
	if seoTitle == "" {
		seoTitle = title
	}
	vm := a.pageData(r, lang, seoTitle, content.SEO.Description)
	vm.Title = title
	vm.SEO.Robots = ""
	if status != http.StatusOK {
		vm.SEO.Robots = "noindex"
	}

	view := handlersPkg.ContactView{
		Hero: handlersPkg.HeroView{
			Title:    content.Title,
			Body:     content.Body,
			ImageSrc: "/assets/img/contact-main.svg",
			ImageAlt: a.i18nOrDefault(lang, "contact.hero.imageAlt", "main image"),
			Action: handlersPkg.ButtonView{
				Label: a.i18nOrDefault(lang, "contact.hero.copyEmail", "Copy Email"),
				Type:  "button",
				Icon:  "EnvelopeSimple",
				Attrs: template.HTMLAttr(`data-copy="` + contactEmail + `"`),
			},
		},
		BranchesTitle: a.i18nOrDefault(lang, "contact.branches.title", "Our branches all over the world."),
		BranchesCopy:  a.i18nOrDefault(lang, "contact.branches.copy", ""),
		Branches:      catalog.BuildBranchCards(a.catalog.Branches),
		SectionTitle:  a.i18nOrDefault(lang, "contact.section.title", "Contact Us"),
		DetailsCopy:   a.i18nOrDefault(lang, "contact.details.copy", ""),
		Details: []handlersPkg.DetailRow{
			{Label: a.i18nOrDefault(lang, "contact.details.address", "address"), Value: contactAddress},
			{Label: a.i18nOrDefault(lang, "contact.details.phone", "phone number"), Value: contactPhone},
			{Label: a.i18nOrDefault(lang, "contact.details.email", "email address"), Value: contactEmail},
		},
		Form:     form,
		MapTitle: a.i18nOrDefault(lang, "contact.map.title", "Google map"),
		MapURL:   contactMapURL,
	}
	vm.Contact = &view

	brand := a.i18nOrDefault(lang, "brand.name", "LMS Genie")
	vm.SEO.JSONLD = []string{
		seo.JSON(seo.ContactPage(brand, a.absoluteURL(r), seo.ContactPoint{
			Email:     contactEmail,
			Telephone: contactPhone,
			Address:   contactAddress,
		})),
		a.breadcrumbJSONLD(r, lang, vm.Breadcrumbs),
	}

	a.renderPage(w, r, "contact", status, vm)
}

type fieldSpec struct {
	name         string
	inputType    string
	autocomplete string
	multiline    bool
	half         bool
}

var contactFieldSpecs = []fieldSpec{
	{name: contact.FieldFirstName, autocomplete: "given-name", half: true},
	{name: contact.FieldLastName, autocomplete: "family-name", half: true},
	{name: contact.FieldEmail, inputType: "email", autocomplete: "email"},
	{name: contact.FieldSubject},
	{name: contact.FieldMessage, multiline: true},
}

func (a *app) buildContactFormView(lang, token string, values contact.Input, errs contact.FieldErrors, sent bool) handlersPkg.FormView {
	fields := make([]handlersPkg.FieldView, 0, len(contactFieldSpecs))
	for _, spec := range contactFieldSpecs {
		msg := ""
		if rule, failed := errs[spec.name]; failed {
			msg = a.i18nOrDefault(lang, rule.MessageKey, rule.Message)
		}
		fields = append(fields, a.buildFieldView(lang, spec.name, values.Value(spec.name), msg))
	}
	return handlersPkg.FormView{
		ID:        contactFormID,
		Action:    contactPath,
		Title:     a.i18nOrDefault(lang, "contact.form.title", "Get in touch"),
		Copy:      a.i18nOrDefault(lang, "contact.form.copy", ""),
		CSRFToken: token,
		Fields:    fields,
		Submit: handlersPkg.ButtonView{
			Label:     a.i18nOrDefault(lang, "contact.form.submit", "Send message"),
			Type:      "submit",
			Icon:      "PaperPlaneRight",
			IconAfter: true,
		},
		Sent:      sent,
		SentLabel: a.i18nOrDefault(lang, "contact.form.sent", "Thanks! Your message has been sent."),
	}
}

func (a *app) buildFieldView(lang, name, value, msg string) handlersPkg.FieldView {
	fv := handlersPkg.FieldView{
		Name:        name,
		Label:       a.i18nOrDefault(lang, "contact.form."+name, name),
		Placeholder: a.i18nOrDefault(lang, "contact.form."+name+".placeholder", ""),
		Value:       value,
		Error:       msg,
		ValidateURL: "/contact/validate?field=" + name,
	}
	for _, spec := range contactFieldSpecs {
		if spec.name == name {
			fv.InputType = spec.inputType
			fv.Autocomplete = spec.autocomplete
			fv.Multiline = spec.multiline
			fv.Half = spec.half
			break
		}
	}
	return fv
}
